package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names.
const (
	EnvPrefix = "PASSNET_"
	EnvConfig = "PASSNET_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PASSNET_CONFIG is set
//  3. env (prefix PASSNET_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(EnvConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// PASSNET_MIN_TRANSPARENCY -> min_transparency. Team colours use a dot:
	// PASSNET_TEAM_COLOURS.Spain=darkred -> team_colours.Spain.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.TrimPrefix(s, EnvPrefix)
		if head, tail, ok := strings.Cut(key, "."); ok {
			return strings.ToLower(head) + "." + tail
		}
		return strings.ToLower(key)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}
	k.Delete("config")

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DataURL == "" && c.DataDir == "":
		return fmt.Errorf("%w: one of data_url or data_dir must be set", ErrInvalidConfig)
	case c.CompetitionID <= 0 || c.SeasonID <= 0:
		return fmt.Errorf("%w: competition_id and season_id must be positive", ErrInvalidConfig)
	case c.MinTransparency < 0 || c.MinTransparency >= 1:
		return fmt.Errorf("%w: min_transparency must be in [0, 1)", ErrInvalidConfig)
	case c.RenderScale <= 0:
		return fmt.Errorf("%w: render_scale must be positive", ErrInvalidConfig)
	case c.FetchTimeoutMS <= 0:
		return fmt.Errorf("%w: fetch_timeout_ms must be positive", ErrInvalidConfig)
	case c.WorkerCount <= 0 || c.QueueSize <= 0:
		return fmt.Errorf("%w: worker_count and queue_size must be positive", ErrInvalidConfig)
	}
	return nil
}

// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file and PASSNET_ env vars.
// - External errors are wrapped with this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataURL is the base URL of the StatsBomb open-data layout.
	DataURL string `koanf:"data_url"`

	// DataDir, when set, reads the open-data layout from a local directory
	// instead of DataURL.
	DataDir string `koanf:"data_dir"`

	// CompetitionID and SeasonID select the fixed list of matches.
	CompetitionID int `koanf:"competition_id"`
	SeasonID      int `koanf:"season_id"`

	// FetchTimeoutMS bounds a single event source fetch.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// WorkerCount is the number of concurrent renders.
	WorkerCount int `koanf:"worker_count"`

	// QueueSize is how many renders may wait for a worker before requests
	// are refused with 503.
	QueueSize int `koanf:"queue_size"`

	// MinTransparency is the alpha of the least frequent pass-link.
	MinTransparency float64 `koanf:"min_transparency"`

	// PitchColor and LineColor style the pitch drawing.
	PitchColor string `koanf:"pitch_color"`
	LineColor  string `koanf:"line_color"`

	// RenderScale is the number of SVG pixels per pitch unit.
	RenderScale int `koanf:"render_scale"`

	// DefaultTeamColour is used for teams missing from the colour table.
	DefaultTeamColour string `koanf:"default_team_colour"`

	// TeamColours overrides or extends the built-in team colour table.
	TeamColours map[string]string `koanf:"team_colours"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Addr:              ":9080",
		DataURL:           "https://raw.githubusercontent.com/statsbomb/open-data/master/data",
		CompetitionID:     55,
		SeasonID:          282,
		FetchTimeoutMS:    30_000,
		WorkerCount:       4,
		QueueSize:         64,
		MinTransparency:   0.05,
		PitchColor:        "#0E1117",
		LineColor:         "white",
		RenderScale:       8,
		DefaultTeamColour: "white",
		TeamColours:       map[string]string{},
	}
}

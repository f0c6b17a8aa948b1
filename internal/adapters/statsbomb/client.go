// Package statsbomb reads match lists, event logs and lineups from the
// StatsBomb open-data layout, over HTTP or from a local checkout.
package statsbomb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/okian/passnet/internal/domain/model"
	"github.com/okian/passnet/pkg/logger"
	"github.com/okian/passnet/pkg/metrics"
)

// Defaults.
const (
	DefaultBaseURL = "https://raw.githubusercontent.com/statsbomb/open-data/master/data"
	defaultTimeout = 30 * time.Second
)

// Resource names used in paths and metric labels.
const (
	resourceMatches = "matches"
	resourceEvents  = "events"
	resourceLineups = "lineups"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client loads open-data documents and flattens them into domain models.
type Client struct {
	open       opener
	dir        string
	httpClient *http.Client
	timeout    time.Duration
	logger     logger.Logger
}

// New creates a Client. Without options it reads from DefaultBaseURL.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		timeout:    defaultTimeout,
	}
	c.open = &httpOpener{base: DefaultBaseURL, client: c.httpClient}

	for _, opt := range opts {
		opt(c)
	}

	if c.dir != "" {
		c.open = &dirOpener{root: c.dir}
	}
	if c.logger == nil {
		c.logger = logger.Get().Named("statsbomb")
	}
	return c
}

// Matches lists the matches of a competition season in source order.
func (c *Client) Matches(ctx context.Context, competitionID, seasonID int) ([]model.Match, error) {
	var raw []rawMatch
	path := fmt.Sprintf("%s/%d/%d.json", resourceMatches, competitionID, seasonID)
	if err := c.fetch(ctx, resourceMatches, path, &raw); err != nil {
		return nil, err
	}

	out := make([]model.Match, 0, len(raw))
	for _, m := range raw {
		out = append(out, m.toModel())
	}
	return out, nil
}

// Events returns the event log of a match ordered by index.
func (c *Client) Events(ctx context.Context, matchID int) ([]model.Event, error) {
	var raw []rawEvent
	path := fmt.Sprintf("%s/%d.json", resourceEvents, matchID)
	if err := c.fetch(ctx, resourceEvents, path, &raw); err != nil {
		return nil, err
	}

	out := make([]model.Event, 0, len(raw))
	for _, e := range raw {
		out = append(out, e.toModel())
	}
	model.SortByIndex(out)
	metrics.RecordEventsProcessed(len(out))
	return out, nil
}

// Lineups returns the squads of both teams of a match.
func (c *Client) Lineups(ctx context.Context, matchID int) (model.Lineup, error) {
	var raw []rawLineupTeam
	path := fmt.Sprintf("%s/%d.json", resourceLineups, matchID)
	if err := c.fetch(ctx, resourceLineups, path, &raw); err != nil {
		return nil, err
	}

	var out model.Lineup
	for _, team := range raw {
		for _, p := range team.Lineup {
			out = append(out, model.LineupPlayer{
				TeamName:     team.TeamName,
				PlayerName:   p.PlayerName,
				JerseyNumber: p.JerseyNumber,
			})
		}
	}
	return out, nil
}

// fetch opens path and decodes its JSON body into v.
func (c *Client) fetch(ctx context.Context, resource, path string, v any) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	rc, err := c.open.Open(ctx, path)
	if err != nil {
		c.fail(ctx, resource, path, err, start)
		return err
	}
	defer func() { _ = rc.Close() }()

	body := &countingReader{r: rc}
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %s: %w", ErrUpstream, path, ctxErr)
		} else {
			err = fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
		}
		c.fail(ctx, resource, path, err, start)
		return err
	}

	elapsed := time.Since(start)
	metrics.RecordSourceFetch(resource, float64(elapsed.Milliseconds()), body.n)
	c.logger.Debug(ctx, "fetched open-data document",
		logger.String("path", path),
		logger.Int("bytes", int(body.n)),
		logger.Int("ms", int(elapsed.Milliseconds())),
	)
	return nil
}

func (c *Client) fail(ctx context.Context, resource, path string, err error, start time.Time) {
	kind := errorKind(err)
	metrics.RecordSourceError(resource, kind)
	metrics.RecordErrorByComponent("statsbomb", kind)
	metrics.RecordErrorLatency("statsbomb", kind, float64(time.Since(start).Milliseconds()))
	c.logger.Warn(ctx, "open-data fetch failed",
		logger.String("path", path),
		logger.String("kind", kind),
		logger.Error(err),
	)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "upstream"
	}
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// String describes the configured backend.
func (c *Client) String() string {
	switch o := c.open.(type) {
	case *dirOpener:
		return "dir:" + o.root
	case *httpOpener:
		return "url:" + strings.TrimRight(o.base, "/")
	default:
		return "unknown"
	}
}

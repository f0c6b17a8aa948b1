// Package service coordinates the passing network pipeline: match selection,
// event loading, aggregation, encoding and rendering.
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/passnet/internal/adapters/mq/queue"
	workerpool "github.com/okian/passnet/internal/adapters/mq/worker"
	"github.com/okian/passnet/internal/domain/colours"
	"github.com/okian/passnet/internal/domain/model"
	"github.com/okian/passnet/internal/domain/network"
	"github.com/okian/passnet/internal/domain/types"
	"github.com/okian/passnet/pkg/logger"
	"github.com/okian/passnet/pkg/metrics"
)

// Default selection: UEFA Euro 2024.
const (
	DefaultCompetitionID = 55
	DefaultSeasonID      = 282
	defaultWorkerCount   = 4
	defaultQueueSize     = 64
)

// Source loads match data.
type Source interface {
	Matches(ctx context.Context, competitionID, seasonID int) ([]model.Match, error)
	Events(ctx context.Context, matchID int) ([]model.Event, error)
	Lineups(ctx context.Context, matchID int) (model.Lineup, error)
}

// Renderer draws one team network.
type Renderer interface {
	Render(w io.Writer, net network.Network, colour string, side types.Side) error
}

// TeamNetwork is the encoded network of one side of a match. Err is set,
// typically to network.ErrNoPasses, when the team has nothing to draw.
type TeamNetwork struct {
	Side    types.Side
	Team    string
	Colour  string
	Network network.Network
	Err     error
}

// Service implements the API dependencies for the passing network viewer.
type Service struct {
	mu sync.RWMutex

	// Core components
	source   Source
	renderer Renderer
	palette  *colours.Palette
	encoder  *network.Encoder
	queue    *queue.InMemoryQueue
	pool     *workerpool.Pool

	// Configuration
	competitionID int
	seasonID      int
	workerCount   int
	queueSize     int

	// State
	started bool
	matches []model.Match
	byID    map[int]int

	renders      atomic.Int64
	lastRenderMs atomic.Int64

	logger logger.Logger
}

// New constructs a new Service with default configuration. A Source and a
// Renderer must be supplied before Start.
func New(opts ...Option) *Service {
	s := &Service{
		palette:       colours.NewPalette(),
		encoder:       network.NewEncoder(),
		competitionID: DefaultCompetitionID,
		seasonID:      DefaultSeasonID,
		workerCount:   defaultWorkerCount,
		queueSize:     defaultQueueSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the match list and starts the render workers.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	if s.source == nil || s.renderer == nil {
		return errors.New("start: source and renderer are required")
	}

	s.logger.Info(ctx, "starting passing network service...",
		logger.Int("competition_id", s.competitionID),
		logger.Int("season_id", s.seasonID),
	)

	matches, err := s.source.Matches(ctx, s.competitionID, s.seasonID)
	if err != nil {
		return fmt.Errorf("load matches: %w", err)
	}
	s.matches = matches
	s.byID = make(map[int]int, len(matches))
	for i, m := range matches {
		s.byID[m.ID] = i
	}
	metrics.UpdateMatchesLoaded(len(matches))

	s.queue = queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	s.pool = workerpool.NewPool(s.workerCount, s.queue)
	s.pool.Start(context.WithoutCancel(ctx))

	s.started = true
	s.logger.Info(ctx, "passing network service started",
		logger.Int("matches", len(matches)),
		logger.Int("workers", s.pool.Size()),
		logger.Int("queueSize", s.queueSize),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping passing network service...")
	if err := s.pool.Shutdown(ctx); err != nil {
		s.logger.Warn(ctx, "worker pool did not stop cleanly", logger.Error(err))
	}

	s.started = false
	s.logger.Info(ctx, "passing network service stopped")
}

// Matches returns the selectable matches in source order.
func (s *Service) Matches(_ context.Context) ([]types.MatchSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}

	out := make([]types.MatchSummary, len(s.matches))
	for i, m := range s.matches {
		out[i] = m.Summary()
	}
	return out, nil
}

// Match resolves a match id.
func (s *Service) Match(_ context.Context, id int) (model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return model.Match{}, ErrNotStarted
	}
	i, ok := s.byID[id]
	if !ok {
		return model.Match{}, fmt.Errorf("%w: %d", ErrMatchNotFound, id)
	}
	return s.matches[i], nil
}

// Networks loads the match once and returns the networks of both teams,
// home first. The away network is mirrored. A team without qualifying
// passes carries network.ErrNoPasses in its own result.
func (s *Service) Networks(ctx context.Context, id int) (model.Match, [2]TeamNetwork, error) {
	var teams [2]TeamNetwork

	m, err := s.Match(ctx, id)
	if err != nil {
		return m, teams, err
	}

	err = s.submit(ctx, "networks-"+strconv.Itoa(id), func(ctx context.Context) error {
		events, lineup, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		for _, side := range []types.Side{types.Home, types.Away} {
			teams[side] = s.build(ctx, m, side, events, lineup)
		}
		return nil
	})
	if err != nil {
		return m, [2]TeamNetwork{}, err
	}
	return m, teams, nil
}

// RenderTeam writes the SVG panel of one side of a match to w. It returns
// network.ErrNoPasses without writing when the team has nothing to draw.
func (s *Service) RenderTeam(ctx context.Context, id int, side types.Side, w io.Writer) error {
	m, err := s.Match(ctx, id)
	if err != nil {
		return err
	}

	start := time.Now()
	var buf bytes.Buffer
	err = s.submit(ctx, "render-"+strconv.Itoa(id)+"-"+side.String(), func(ctx context.Context) error {
		events, lineup, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		team := s.build(ctx, m, side, events, lineup)
		if team.Err != nil {
			return team.Err
		}
		return s.renderer.Render(&buf, team.Network, team.Colour, side)
	})
	if err != nil {
		return err
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}

	elapsed := time.Since(start).Milliseconds()
	s.renders.Add(1)
	s.lastRenderMs.Store(elapsed)
	metrics.RecordRender(side.String())
	metrics.RecordRenderLatency(float64(elapsed))
	return nil
}

// submit runs fn on the worker pool and waits for its result.
func (s *Service) submit(ctx context.Context, id string, fn func(ctx context.Context) error) error {
	s.mu.RLock()
	q := s.queue
	started := s.started
	s.mu.RUnlock()
	if !started {
		return ErrNotStarted
	}

	job := queue.NewJob(ctx, id, fn)
	if err := q.Enqueue(ctx, job); err != nil {
		if errors.Is(err, queue.ErrFull) || errors.Is(err, queue.ErrClosed) {
			return fmt.Errorf("%w: %w", ErrBusy, err)
		}
		return err
	}
	return job.Wait(ctx)
}

// load reads the event log and lineup of a match. Nothing is cached so
// every render starts from the source.
func (s *Service) load(ctx context.Context, id int) ([]model.Event, model.Lineup, error) {
	events, err := s.source.Events(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("load events: %w", err)
	}
	lineup, err := s.source.Lineups(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("load lineups: %w", err)
	}
	return events, lineup, nil
}

// build aggregates and encodes one team of m.
func (s *Service) build(ctx context.Context, m model.Match, side types.Side, events []model.Event, lineup model.Lineup) TeamNetwork {
	team := m.Teams()[side]
	colour, known := s.palette.Colour(team)
	if !known {
		s.logger.Warn(ctx, "no colour configured for team, using default",
			logger.String("team", team),
			logger.String("colour", colour),
		)
	}

	agg := network.Build(events, team)
	net, err := s.encoder.Encode(agg, lineup, side.Mirrored())
	if err != nil {
		if errors.Is(err, network.ErrNoPasses) {
			metrics.RecordNoPasses()
			s.logger.Warn(ctx, "team has no qualifying passes",
				logger.Int("match_id", m.ID),
				logger.String("team", team),
			)
		}
		return TeamNetwork{Side: side, Team: team, Colour: colour, Network: network.Network{Team: team, Mirrored: side.Mirrored()}, Err: err}
	}

	metrics.RecordNetworkSize(len(net.Links), len(net.Players))
	s.logger.Debug(ctx, "built team network",
		logger.Int("match_id", m.ID),
		logger.String("team", team),
		logger.Int("passes", net.Passes),
		logger.Int("links", len(net.Links)),
		logger.Int("players", len(net.Players)),
	)
	return TeamNetwork{Side: side, Team: team, Colour: colour, Network: net}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"competitionId":   s.competitionID,
		"seasonId":        s.seasonID,
		"matches":         len(s.matches),
		"rendersServed":   s.renders.Load(),
		"lastRenderMs":    s.lastRenderMs.Load(),
		"workerCount":     s.workerCount,
		"queueSize":       s.queueSize,
		"minTransparency": s.encoder.MinTransparency(),
	}
	if s.started {
		stats["queueLength"] = s.queue.Len(context.Background())
	}
	return stats
}

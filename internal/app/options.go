package service

import (
	"github.com/okian/passnet/internal/domain/colours"
	"github.com/okian/passnet/internal/domain/network"
	"github.com/okian/passnet/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the event data source.
func WithSource(src Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithRenderer sets the SVG renderer.
func WithRenderer(r Renderer) Option {
	return func(s *Service) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithPalette sets the team colour palette.
func WithPalette(p *colours.Palette) Option {
	return func(s *Service) {
		if p != nil {
			s.palette = p
		}
	}
}

// WithEncoder sets the visual encoder.
func WithEncoder(e *network.Encoder) Option {
	return func(s *Service) {
		if e != nil {
			s.encoder = e
		}
	}
}

// WithSeason selects the competition season whose matches are offered.
func WithSeason(competitionID, seasonID int) Option {
	return func(s *Service) {
		if competitionID > 0 && seasonID > 0 {
			s.competitionID = competitionID
			s.seasonID = seasonID
		}
	}
}

// WithWorkerCount sets the number of render workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets how many render jobs may wait for a worker.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

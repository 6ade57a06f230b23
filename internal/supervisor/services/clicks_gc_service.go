// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultDiscardRatio is the share of stale data a value log file needs
// before it is rewritten.
const DefaultDiscardRatio = 0.5

// GarbageCollector reclaims space in a store. *clicks.Store implements it.
type GarbageCollector interface {
	RunGC(ctx context.Context, discardRatio float64) (int, error)
}

// ClicksGCService runs click store garbage collection on a fixed interval.
// Failed runs are logged and retried on the next tick.
type ClicksGCService struct {
	store    GarbageCollector
	interval time.Duration
	logger   zerolog.Logger
}

// NewClicksGCService creates the collector loop.
func NewClicksGCService(store GarbageCollector, interval time.Duration, logger zerolog.Logger) *ClicksGCService {
	return &ClicksGCService{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("service", "clicks-gc").Logger(),
	}
}

// Serve implements suture.Service.
func (s *ClicksGCService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("Click store GC started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Click store GC stopped")
			return ctx.Err()
		case <-ticker.C:
			s.collect(ctx)
		}
	}
}

func (s *ClicksGCService) collect(ctx context.Context) {
	start := time.Now()
	n, err := s.store.RunGC(ctx, DefaultDiscardRatio)
	if err != nil {
		s.logger.Warn().Err(err).Int("rewritten", n).Msg("Click store GC failed")
		return
	}
	if n > 0 {
		s.logger.Info().Int("rewritten", n).Dur("duration", time.Since(start)).Msg("Click store GC reclaimed space")
		return
	}
	s.logger.Debug().Msg("Click store GC found nothing to rewrite")
}

func (s *ClicksGCService) String() string {
	return "clicks-gc"
}

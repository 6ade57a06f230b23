// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/hostduel/internal/logging"
	"github.com/tomtom215/hostduel/internal/seo"
)

// URLSubmitter submits URLs to a search engine. *seo.IndexNowClient
// implements it.
type URLSubmitter interface {
	Submit(ctx context.Context, urls []string) (seo.SubmitResult, error)
}

// IndexNowService submits the sitemap URLs once after startup. A failed
// submission is logged and not retried; the site keeps serving.
type IndexNowService struct {
	submitter URLSubmitter
	urls      func() []string
	logger    zerolog.Logger
}

// NewIndexNowService creates the one-shot submission job. urls is called
// when the job runs.
func NewIndexNowService(submitter URLSubmitter, urls func() []string, logger zerolog.Logger) *IndexNowService {
	return &IndexNowService{
		submitter: submitter,
		urls:      urls,
		logger:    logger.With().Str("service", "indexnow-submit").Logger(),
	}
}

// Serve implements suture.Service. It always returns suture.ErrDoNotRestart
// unless the context was canceled first.
func (s *IndexNowService) Serve(ctx context.Context) error {
	id := logging.GenerateCorrelationID()
	ctx = logging.ContextWithCorrelationID(ctx, id)
	log := s.logger.With().Str("correlation_id", id).Logger()

	urls := s.urls()
	log.Info().Int("urls", len(urls)).Msg("Submitting URLs to IndexNow")

	res, err := s.submitter.Submit(ctx, urls)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		ev := log.Warn().Err(err)
		if errors.Is(err, seo.ErrIndexNowKeyMissing) {
			ev = log.Error().Err(err)
		}
		ev.Int("batches", res.Batches).Int("submitted", res.Submitted).Msg("IndexNow submission incomplete")
		return suture.ErrDoNotRestart
	}

	log.Info().Int("batches", res.Batches).Int("submitted", res.Submitted).Msg("IndexNow submission complete")
	return suture.ErrDoNotRestart
}

func (s *IndexNowService) String() string {
	return "indexnow-submit"
}

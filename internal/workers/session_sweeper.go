// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/logger"
)

// SessionSweepWorker periodically deletes sessions whose expiry has passed.
// Expiry is still enforced at resolve time; the sweeper only keeps the
// sessions table from growing.
type SessionSweepWorker struct {
	sweeper  SessionSweeper
	interval time.Duration

	logger *logger.Logger
}

func NewSessionSweepWorker(sweeper SessionSweeper, interval time.Duration, logger *logger.Logger) *SessionSweepWorker {
	return &SessionSweepWorker{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (w *SessionSweepWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("session sweeper started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *SessionSweepWorker) sweep(ctx context.Context) {
	deleted, err := w.sweeper.SweepExpiredSessions(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*SessionSweepWorker.sweep").Msg("failed to sweep expired sessions")
		return
	}
	if deleted > 0 {
		w.logger.Info().Int64("deleted", deleted).Msg("expired sessions swept")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

const defaultCleanupInterval = time.Hour

type sessionCleanupWorker struct {
	purger   SessionPurger
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionCleanupWorker returns a Worker that purges expired sessions
// right away and then every interval.
func NewSessionCleanupWorker(purger SessionPurger, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}

	return &sessionCleanupWorker{
		purger:   purger,
		interval: interval,
		logger:   log,
	}
}

func (w *sessionCleanupWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("session cleanup worker started")
	defer w.logger.Info().Msg("session cleanup worker stopped")

	w.purge(ctx)

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.purge(ctx)
		}
	}
}

func (w *sessionCleanupWorker) purge(ctx context.Context) {
	deleted, err := w.purger.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Str("func", "*sessionCleanupWorker.purge").Msg("expired sessions purge failed")
		}
		return
	}

	if deleted > 0 {
		w.logger.Info().Int64("deleted", deleted).Msg("expired sessions purged")
	}
}

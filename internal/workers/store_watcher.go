// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/dia-companion/internal/logger"
)

// StoreWatcher checks the document store on a fixed interval and reports the
// result. The store opens lazily, so a check that succeeds after an outage
// also re-establishes the connection for request handlers.
type StoreWatcher struct {
	store    AvailabilityChecker
	status   StatusReporter
	interval time.Duration

	logger *logger.Logger
}

func NewStoreWatcher(store AvailabilityChecker, status StatusReporter, interval time.Duration, logger *logger.Logger) *StoreWatcher {
	return &StoreWatcher{
		store:    store,
		status:   status,
		interval: interval,
		logger:   logger,
	}
}

// Run checks once immediately and then on every tick.
func (p *StoreWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	available := p.check(ctx, false, true)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("store watcher stopped")
			return
		case <-ticker.C:
			available = p.check(ctx, available, false)
		}
	}
}

// check logs only transitions, so a long outage produces one entry.
func (p *StoreWatcher) check(ctx context.Context, was, first bool) bool {
	available := p.store.Available(ctx)
	p.status.SetServing(available)

	switch {
	case available && (first || !was):
		p.logger.Info().Str("func", "*StoreWatcher.check").Msg("document store is available")
	case !available && (first || was):
		p.logger.Warn().Str("func", "*StoreWatcher.check").Msg("document store is unavailable")
	}

	return available
}

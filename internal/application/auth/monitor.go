// Package auth wires the session lifecycle usecases together and runs the
// background session monitor.
package auth

import (
	"context"
	"time"

	"sdc/internal/domain/session"
	"sdc/internal/shared/biztime"
	"sdc/internal/shared/logger"
)

// DefaultMonitorInterval matches the one-minute cadence the admin UI polls
// session status at.
const DefaultMonitorInterval = time.Minute

// Monitor sweeps the session mirror once a minute and prunes expired
// records. Cookie copies expire in the browser on their own; the mirror has
// no TTL and relies on this sweep plus read-time pruning.
type Monitor struct {
	mirror   session.Mirror
	logger   logger.Interface
	interval time.Duration
	stopChan chan struct{}
}

func NewMonitor(mirror session.Mirror, logger logger.Interface) *Monitor {
	return &Monitor{
		mirror:   mirror,
		logger:   logger,
		interval: DefaultMonitorInterval,
		stopChan: make(chan struct{}),
	}
}

// Start starts the sweep loop in a goroutine.
func (m *Monitor) Start(ctx context.Context) {
	m.logger.Infow("starting session monitor", "interval", m.interval)
	go m.run(ctx)
}

// Stop stops the sweep loop.
func (m *Monitor) Stop() {
	close(m.stopChan)
}

func (m *Monitor) run(ctx context.Context) {
	// Run immediately on start
	m.Sweep(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Sweep(ctx)
		case <-m.stopChan:
			m.logger.Infow("session monitor stopped")
			return
		case <-ctx.Done():
			m.logger.Infow("session monitor stopped", "reason", ctx.Err())
			return
		}
	}
}

// Sweep removes expired records from the mirror. A failed listing skips the
// cycle; the next tick retries.
func (m *Monitor) Sweep(ctx context.Context) {
	records, err := m.mirror.List(ctx)
	if err != nil {
		m.logger.Warnw("session sweep skipped, failed to list mirror", "error", err)
		return
	}

	now := biztime.NowUTC()
	expired := 0
	expiringSoon := 0

	for _, rec := range records {
		if rec.IsExpired(now) {
			if err := m.mirror.Delete(ctx, rec.Token); err != nil {
				m.logger.Warnw("failed to prune expired session", "error", err)
				continue
			}
			expired++
		} else if rec.IsExpiringSoon(now) {
			expiringSoon++
		}
	}

	if expired > 0 || expiringSoon > 0 {
		m.logger.Infow("session sweep completed",
			"total", len(records),
			"pruned", expired,
			"expiring_soon", expiringSoon)
	}
}

package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolSampleInterval = 5 * time.Second
	poolSlowWait       = 50 * time.Millisecond
)

// poolMonitor samples sql.DBStats and logs when requests had to wait for a connection.
type poolMonitor struct {
	logger    *slog.Logger
	stats     func() sql.DBStats
	interval  time.Duration
	slowWait  time.Duration
	lastStats sql.DBStats
}

func newPoolMonitor(logger *slog.Logger, sqlDB *sql.DB) *poolMonitor {
	return &poolMonitor{
		logger:   logger,
		stats:    sqlDB.Stats,
		interval: poolSampleInterval,
		slowWait: poolSlowWait,
	}
}

func (m *poolMonitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.lastStats = m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sample(ctx)
		}
	}
}

func (m *poolMonitor) sample(ctx context.Context) {
	cur := m.stats()
	prev := m.lastStats
	m.lastStats = cur

	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= m.slowWait {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}

package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Sample(t *testing.T) {
	var buf bytes.Buffer
	current := sql.DBStats{WaitCount: 1, WaitDuration: 10 * time.Millisecond}
	monitor := &poolMonitor{
		logger:    slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
		stats:     func() sql.DBStats { return current },
		slowWait:  poolSlowWait,
		lastStats: current,
	}

	monitor.sample(context.Background())
	assert.Empty(t, buf.String())

	current = sql.DBStats{WaitCount: 2, WaitDuration: 20 * time.Millisecond}
	monitor.sample(context.Background())
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=1")

	buf.Reset()
	current = sql.DBStats{WaitCount: 4, WaitDuration: 220 * time.Millisecond}
	monitor.sample(context.Background())
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=2")
	assert.Contains(t, buf.String(), "avg_wait=100ms")
}

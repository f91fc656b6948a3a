package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdc/internal/domain/session"
	"sdc/internal/infrastructure/sessionstore"
	"sdc/internal/shared/biztime"
	"sdc/internal/shared/logger"
)

func TestMonitorSweepPrunesExpiredRecords(t *testing.T) {
	mirror := sessionstore.NewMemoryMirror()
	now := biztime.NowUTC()

	fresh := session.NewRecord(map[string]string{"id": "adm_1"}, "tok-fresh", now.Add(-10*time.Minute))
	closeToExpiry := session.NewRecord(map[string]string{"id": "adm_2"}, "tok-soon", now.Add(-57*time.Minute))
	expired := session.NewRecord(map[string]string{"id": "adm_3"}, "tok-old", now.Add(-2*time.Hour))

	require.NoError(t, mirror.Save(context.Background(), fresh))
	require.NoError(t, mirror.Save(context.Background(), closeToExpiry))
	require.NoError(t, mirror.Save(context.Background(), expired))

	monitor := NewMonitor(mirror, logger.NewLogger())
	monitor.Sweep(context.Background())

	records, err := mirror.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)

	gone, err := mirror.Get(context.Background(), "tok-old")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestMonitorStop(t *testing.T) {
	monitor := NewMonitor(sessionstore.NewMemoryMirror(), logger.NewLogger())
	monitor.Start(context.Background())

	done := make(chan struct{})
	go func() {
		monitor.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop in time")
	}
}

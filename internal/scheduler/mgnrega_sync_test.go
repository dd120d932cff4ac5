package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/config"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/domain"
)

// stubSyncer records invocations and optionally blocks until released so
// tests can hold a run open.
type stubSyncer struct {
	mu      sync.Mutex
	runs    int
	block   chan struct{}
	started chan struct{}
	result  domain.SyncResult
}

func newStubSyncer(result domain.SyncResult) *stubSyncer {
	return &stubSyncer{
		result:  result,
		started: make(chan struct{}, 8),
	}
}

func (s *stubSyncer) Run(ctx context.Context) domain.SyncResult {
	s.mu.Lock()
	s.runs++
	s.mu.Unlock()

	s.started <- struct{}{}
	if s.block != nil {
		<-s.block
	}
	return s.result
}

func (s *stubSyncer) runCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

func newSchedulerConfig(enabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.MGNREGASync.Enabled = enabled
	cfg.MGNREGASync.CronSchedule = "0 2 * * *"
	return cfg
}

func TestStart_DisabledDoesNothing(t *testing.T) {
	syncer := newStubSyncer(domain.SyncResult{})
	service := NewMGNREGASyncService(syncer, newSchedulerConfig(false))

	err := service.Start(context.Background())
	require.NoError(t, err)
	assert.Zero(t, syncer.runCount())
}

func TestStart_InvalidCronSchedule(t *testing.T) {
	cfg := newSchedulerConfig(true)
	cfg.MGNREGASync.CronSchedule = "not a cron expression"

	service := NewMGNREGASyncService(newStubSyncer(domain.SyncResult{}), cfg)

	err := service.Start(context.Background())
	assert.Error(t, err)
}

func TestTriggerManualSync_RunsOnce(t *testing.T) {
	syncer := newStubSyncer(domain.SyncResult{
		Status:    domain.SyncStatusSuccess,
		Processed: 40,
	})
	service := NewMGNREGASyncService(syncer, newSchedulerConfig(true))

	ok := service.TriggerManualSync()
	require.True(t, ok)

	select {
	case <-syncer.started:
	case <-time.After(2 * time.Second):
		t.Fatal("sync never started")
	}

	// wait for the run to record its result
	assert.Eventually(t, func() bool {
		status := service.GetStatus()
		running, _ := status["sync_running"].(bool)
		return !running
	}, 2*time.Second, 10*time.Millisecond)

	status := service.GetStatus()
	assert.Equal(t, domain.SyncStatusSuccess, status["last_sync_status"])
	assert.Equal(t, 40, status["last_sync_processed"])
	assert.Equal(t, 0, status["last_sync_failed"])
	assert.Equal(t, 1, syncer.runCount())
}

func TestTriggerManualSync_RejectedWhileRunning(t *testing.T) {
	syncer := newStubSyncer(domain.SyncResult{Status: domain.SyncStatusSuccess})
	syncer.block = make(chan struct{})
	service := NewMGNREGASyncService(syncer, newSchedulerConfig(true))

	require.True(t, service.TriggerManualSync())

	select {
	case <-syncer.started:
	case <-time.After(2 * time.Second):
		t.Fatal("sync never started")
	}

	assert.False(t, service.TriggerManualSync())

	status := service.GetStatus()
	assert.True(t, status["sync_running"].(bool))

	close(syncer.block)

	assert.Eventually(t, func() bool {
		return !service.GetStatus()["sync_running"].(bool)
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, 1, syncer.runCount())
}

func TestGetStatus_BeforeAnyRun(t *testing.T) {
	service := NewMGNREGASyncService(newStubSyncer(domain.SyncResult{}), newSchedulerConfig(true))

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
	assert.NotContains(t, status, "last_sync_status")
}

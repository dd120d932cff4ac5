package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/config"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/domain"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/usecases/syncing"
)

// MGNREGASyncService schedules the periodic feed sync and serializes runs:
// at most one sync executes at a time, whether triggered by cron or by hand.
type MGNREGASyncService struct {
	scheduler           *gocron.Scheduler
	cfg                 config.MGNREGASync
	syncer              syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.SyncResult
}

func NewMGNREGASyncService(syncer syncing.Syncer, appConfig *config.Config) *MGNREGASyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.MGNREGASync.CronSchedule,
		"sync_enabled":  appConfig.MGNREGASync.Enabled,
	}).Info("MGNREGA sync scheduler configured")

	return &MGNREGASyncService{
		scheduler: scheduler,
		cfg:       appConfig.MGNREGASync,
		syncer:    syncer,
	}
}

// Start registers the cron job and runs the scheduler until ctx is done.
func (s *MGNREGASyncService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("MGNREGA sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.cfg.CronSchedule).Info("Starting MGNREGA sync scheduler")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.runSync(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule MGNREGA sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping MGNREGA sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *MGNREGASyncService) runSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("MGNREGA sync already in progress, skipping")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Starting MGNREGA data sync")

	result := s.syncer.Run(ctx)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"status":    result.Status,
		"processed": result.Processed,
		"failed":    result.Failed,
	}).Info("MGNREGA data sync finished")

	s.syncMutex.Lock()
	s.lastResult = &result
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync starts a sync in the background. Returns false when a
// run is already in progress.
func (s *MGNREGASyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("MGNREGA sync already in progress, ignoring manual trigger")
		return false
	}

	logrus.Info("Starting manual MGNREGA sync")
	go s.runSync(context.Background())
	return true
}

// GetStatus reports the scheduler state and the outcome of the last run.
func (s *MGNREGASyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.cfg.Enabled,
		"sync_cron":              s.cfg.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastResult != nil {
		status["last_sync_status"] = s.lastResult.Status
		status["last_sync_processed"] = s.lastResult.Processed
		status["last_sync_failed"] = s.lastResult.Failed
	}

	return status
}

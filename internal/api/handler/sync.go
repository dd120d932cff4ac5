package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/repository"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/scheduler"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/pkg/apiErrors"
)

type SyncStatusResponse struct {
	Source           string  `json:"source"`
	Status           string  `json:"status"`
	Message          string  `json:"message"`
	RecordsProcessed int     `json:"records_processed"`
	RecordsFailed    int     `json:"records_failed"`
	SuccessRate      float64 `json:"success_rate"`
	LastFetched      *string `json:"last_fetched"`
	StartedAt        string  `json:"started_at"`
}

// GetSyncStatus returns the latest sync audit row for the feed source.
func GetSyncStatus(statusRepo repository.APIStatusRepository, source string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		latest, err := statusRepo.LatestBySource(r.Context(), source)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to read sync status", nil)
			return
		}

		if latest == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoDataAvailable, "No sync has run yet", nil)
			return
		}

		resp := SyncStatusResponse{
			Source:           latest.Source,
			Status:           latest.Status,
			Message:          latest.Message,
			RecordsProcessed: latest.RecordsProcessed,
			RecordsFailed:    latest.RecordsFailed,
			SuccessRate:      latest.SuccessRate(),
			StartedAt:        latest.CreatedAt.Format(time.RFC3339),
		}

		if latest.LastFetched != nil {
			fetched := latest.LastFetched.Format(time.RFC3339)
			resp.LastFetched = &fetched
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logrus.Error(err)
		}
	}
}

// RunSync triggers a manual sync. Answers 409 when a run is in progress.
func RunSync(syncService *scheduler.MGNREGASyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !syncService.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "A sync is already in progress", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"message": "Sync started",
		}); err != nil {
			logrus.Error(err)
		}
	}
}

func GetCronStatus(syncService *scheduler.MGNREGASyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"mgnrega_sync": syncService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error(err)
		}
	}
}

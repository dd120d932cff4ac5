package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/cache"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/repository"
)

// DatabasePinger is the slice of the database connection the health check
// needs.
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status   string         `json:"status"`
	Database string         `json:"database"`
	Cache    string         `json:"cache"`
	LastSync *LastSyncBrief `json:"last_sync,omitempty"`
}

type LastSyncBrief struct {
	Status           string  `json:"status"`
	RecordsProcessed int     `json:"records_processed"`
	RecordsFailed    int     `json:"records_failed"`
	SuccessRate      float64 `json:"success_rate"`
	LastFetched      *string `json:"last_fetched"`
	FinishedAt       string  `json:"finished_at"`
}

// HealthHandler reports dependency health plus the outcome of the latest
// sync run. Degraded dependencies turn the overall status but still answer
// with 200 so load balancers keep routing reads.
func HealthHandler(conn DatabasePinger, c cache.Cache, statusRepo repository.APIStatusRepository, source string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		resp := HealthResponse{
			Status:   "healthy",
			Database: "up",
			Cache:    "up",
		}

		if err := conn.Ping(ctx); err != nil {
			logrus.WithError(err).Error("health: database ping failed")
			resp.Database = "down"
			resp.Status = "degraded"
		}

		if err := c.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("health: cache ping failed")
			resp.Cache = "down"
			resp.Status = "degraded"
		}

		latest, err := statusRepo.LatestBySource(ctx, source)
		if err != nil {
			logrus.WithError(err).Warn("health: failed to read latest sync status")
		} else if latest != nil {
			resp.LastSync = &LastSyncBrief{
				Status:           latest.Status,
				RecordsProcessed: latest.RecordsProcessed,
				RecordsFailed:    latest.RecordsFailed,
				SuccessRate:      latest.SuccessRate(),
				FinishedAt:       latest.UpdatedAt.Format(time.RFC3339),
			}
			if latest.LastFetched != nil {
				fetched := latest.LastFetched.Format(time.RFC3339)
				resp.LastSync.LastFetched = &fetched
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logrus.WithError(err).Warn("error responding to health")
		}
	})
}

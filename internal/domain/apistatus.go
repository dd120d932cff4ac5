package domain

import (
	"math"
	"time"
)

// Sync run statuses. A run starts in progress and is finalized exactly once
// to one of the terminal states; rows are never touched again afterwards.
const (
	SyncStatusInProgress = "in_progress"
	SyncStatusSuccess    = "success"
	SyncStatusPartial    = "partial"
	SyncStatusFailure    = "failure"
)

// APIStatus is one row per sync run, the durable audit trail of what each
// run did. It references a source tag, not specific districts.
type APIStatus struct {
	ID               int        `json:"id"`
	Source           string     `json:"source"`
	Status           string     `json:"status"`
	LastFetched      *time.Time `json:"last_fetched"`
	Message          string     `json:"message"`
	RecordsProcessed int        `json:"records_processed"`
	RecordsFailed    int        `json:"records_failed"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// SuccessRate is processed/(processed+failed) as a percentage rounded to two
// decimals, 0 when the run touched no records.
func (s *APIStatus) SuccessRate() float64 {
	total := s.RecordsProcessed + s.RecordsFailed
	if total == 0 {
		return 0
	}
	return math.Round(float64(s.RecordsProcessed)/float64(total)*100*100) / 100
}

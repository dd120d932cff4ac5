package syncing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/integrator/datagov/datagovclient"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/repository"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/config"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/domain"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/pkg/utils"
)

const (
	// maxResultErrors caps the record-level error sample kept in the run
	// result; only the first failures are retained for review.
	maxResultErrors = 10

	// maxMessageErrors caps the error sets embedded in the audit message.
	maxMessageErrors = 5
)

// Syncer runs one fetch-validate-upsert cycle against the external feed.
type Syncer interface {
	Run(ctx context.Context) domain.SyncResult
}

// Service orchestrates one sync run: it opens an audit row, fetches the
// feed, validates and upserts each record independently, and finalizes the
// audit row exactly once. Nothing escapes Run; every terminal outcome is
// persisted to the audit trail before being reported to the caller.
type Service struct {
	cfg             *config.Config
	client          datagovclient.Client
	validator       *Validator
	districtRepo    repository.DistrictRepository
	performanceRepo repository.PerformanceRepository
	statusRepo      repository.APIStatusRepository
}

func NewService(
	cfg *config.Config,
	client datagovclient.Client,
	districtRepo repository.DistrictRepository,
	performanceRepo repository.PerformanceRepository,
	statusRepo repository.APIStatusRepository,
) *Service {
	return &Service{
		cfg:             cfg,
		client:          client,
		validator:       NewValidator(districtRepo),
		districtRepo:    districtRepo,
		performanceRepo: performanceRepo,
		statusRepo:      statusRepo,
	}
}

func (s *Service) Run(ctx context.Context) domain.SyncResult {
	runID, _ := utils.GenerateID()
	logger := logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"source": s.cfg.DataGov.Source,
	})

	logger.Info("sync: starting MGNREGA data fetch")

	audit, err := s.statusRepo.Create(ctx, s.cfg.DataGov.Source, "Starting data fetch...")
	if err != nil {
		logger.WithError(err).Error("sync: failed to create audit row")
		return domain.SyncResult{
			Status:  domain.SyncStatusFailure,
			Errors:  []domain.RecordError{},
			Message: err.Error(),
		}
	}

	result := s.runGuarded(ctx, logger, audit.ID)

	logger.WithFields(logrus.Fields{
		"processed": result.Processed,
		"failed":    result.Failed,
		"status":    result.Status,
	}).Info("sync: run finished")

	return result
}

// runGuarded is the orchestrator's outer boundary: any panic escaping
// record processing finalizes the audit row to failure and is swallowed.
func (s *Service) runGuarded(ctx context.Context, logger *logrus.Entry, auditID int) (result domain.SyncResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("sync: fatal error during run")
			result = s.fail(ctx, logger, auditID, fmt.Sprintf("Fatal error during data fetch: %v", r))
		}
	}()

	records, err := s.client.FetchRecords(ctx)
	if err != nil {
		logger.WithError(err).Error("sync: feed fetch failed")
		return s.fail(ctx, logger, auditID, err.Error())
	}

	if len(records) == 0 {
		return s.fail(ctx, logger, auditID, "No data received from API")
	}

	result = s.processRecords(ctx, logger, records)

	now := time.Now()
	status := domain.SyncStatusSuccess
	if result.Failed > 0 {
		status = domain.SyncStatusPartial
	}
	result.Status = status
	result.Message = s.buildMessage(result)

	if err := s.statusRepo.Finalize(ctx, auditID, status, result.Message, &now, result.Processed, result.Failed); err != nil {
		logger.WithError(err).Error("sync: failed to finalize audit row")
	}

	return result
}

// processRecords validates and upserts every record independently. A
// failure on one record never aborts the run.
func (s *Service) processRecords(ctx context.Context, logger *logrus.Entry, records []domain.RawRecord) domain.SyncResult {
	result := domain.SyncResult{
		Errors: []domain.RecordError{},
	}

	for _, record := range records {
		if err := s.processRecord(ctx, logger, record); err != nil {
			result.Failed++
			appendSample(&result, record, err.errors)
			continue
		}
		result.Processed++
	}

	return result
}

// recordFailure carries the error set for a single rejected record.
type recordFailure struct {
	errors []string
}

func (e *recordFailure) Error() string {
	return strings.Join(e.errors, "; ")
}

func (s *Service) processRecord(ctx context.Context, logger *logrus.Entry, record domain.RawRecord) *recordFailure {
	ok, validationErrors, err := s.validator.Validate(ctx, record)
	if err != nil {
		logger.WithError(err).Error("sync: error validating record")
		return &recordFailure{errors: []string{err.Error()}}
	}
	if !ok {
		logger.WithField("errors", validationErrors).Debug("sync: invalid record")
		return &recordFailure{errors: validationErrors}
	}

	code := toString(record["district_code"])
	district, err := s.districtRepo.GetByCode(ctx, code)
	if err != nil {
		logger.WithError(err).Error("sync: error loading district for record")
		return &recordFailure{errors: []string{err.Error()}}
	}
	if district == nil {
		// The district disappeared between validation and upsert.
		return &recordFailure{errors: []string{fmt.Sprintf("District code %s not found in database", code)}}
	}

	year, _ := toInt(record["year"])
	month, _ := toInt(record["month"])

	created, err := s.performanceRepo.Upsert(ctx, district.ID, year, month, metricsFromRecord(record))
	if err != nil {
		logger.WithError(err).Error("sync: error upserting performance record")
		return &recordFailure{errors: []string{err.Error()}}
	}

	action := "updated"
	if created {
		action = "created"
	}
	logger.WithFields(logrus.Fields{
		"district": district.Name,
		"period":   fmt.Sprintf("%d-%02d", year, month),
		"action":   action,
	}).Debug("sync: performance record saved")

	return nil
}

func appendSample(result *domain.SyncResult, record domain.RawRecord, errs []string) {
	if len(result.Errors) >= maxResultErrors {
		return
	}
	result.Errors = append(result.Errors, domain.RecordError{
		Record: record,
		Errors: errs,
	})
}

func (s *Service) buildMessage(result domain.SyncResult) string {
	if result.Failed == 0 {
		return fmt.Sprintf("Successfully processed %d records", result.Processed)
	}

	sample := result.Errors
	if len(sample) > maxMessageErrors {
		sample = sample[:maxMessageErrors]
	}

	lines := make([]string, 0, len(sample))
	for _, recordError := range sample {
		lines = append(lines, fmt.Sprintf("Record errors: %v", recordError.Errors))
	}

	return fmt.Sprintf(
		"Partially completed. %d records failed validation.\n\nSample errors:\n%s",
		result.Failed,
		strings.Join(lines, "\n"),
	)
}

// fail finalizes the audit row to failure and builds the failure result.
// No records are counted: a failed fetch aborts before any processing.
func (s *Service) fail(ctx context.Context, logger *logrus.Entry, auditID int, message string) domain.SyncResult {
	if err := s.statusRepo.Finalize(ctx, auditID, domain.SyncStatusFailure, message, nil, 0, 0); err != nil {
		logger.WithError(err).Error("sync: failed to finalize audit row after failure")
	}

	return domain.SyncResult{
		Processed: 0,
		Failed:    0,
		Errors:    []domain.RecordError{},
		Status:    domain.SyncStatusFailure,
		Message:   message,
	}
}

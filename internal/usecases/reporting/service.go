package reporting

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/cache"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/repository"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/domain"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// summaryCacheTTL is longer than the default TTL because summaries only
// change when a sync run lands new data.
const summaryCacheTTL = time.Hour

// Thresholds for bucketing a district metric against its state average,
// expressed as a percentage of the average.
const (
	goodThreshold    = 80.0
	averageThreshold = 50.0
)

type Service interface {
	ListDistricts(ctx context.Context, filters domain.DistrictFilters) ([]*domain.District, error)
	GetDistrict(ctx context.Context, id int) (*domain.District, error)
	DistrictSummary(ctx context.Context, districtID, year, month int) (*domain.DistrictSummary, error)
	DistrictHistory(ctx context.Context, districtID int, from, to string) (*domain.DistrictHistory, error)
	Compare(ctx context.Context, districtIDs []int, metric string, year, month int) (*domain.Comparison, error)
}

type service struct {
	districtRepo    repository.DistrictRepository
	performanceRepo repository.PerformanceRepository
	cache           cache.Cache
}

func NewService(
	districtRepo repository.DistrictRepository,
	performanceRepo repository.PerformanceRepository,
	c cache.Cache,
) Service {
	return &service{
		districtRepo:    districtRepo,
		performanceRepo: performanceRepo,
		cache:           c,
	}
}

func (s *service) ListDistricts(ctx context.Context, filters domain.DistrictFilters) ([]*domain.District, error) {
	return s.districtRepo.List(ctx, filters)
}

func (s *service) GetDistrict(ctx context.Context, id int) (*domain.District, error) {
	district, err := s.districtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if district == nil {
		return nil, ErrDistrictNotFound
	}

	return district, nil
}

// DistrictSummary builds one district-month view with status buckets against
// the state average and percentage deltas against the previous month. When
// year or month is zero the latest available snapshot is used.
func (s *service) DistrictSummary(ctx context.Context, districtID, year, month int) (*domain.DistrictSummary, error) {
	district, err := s.GetDistrict(ctx, districtID)
	if err != nil {
		return nil, err
	}

	perf, err := s.resolveSnapshot(ctx, districtID, year, month)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("district:%d:summary:%d-%02d", districtID, perf.Year, perf.Month)
	if cached, ok := s.cachedSummary(ctx, cacheKey); ok {
		return cached, nil
	}

	averages, err := s.performanceRepo.StateAverages(ctx, district.State, perf.Year, perf.Month)
	if err != nil {
		return nil, err
	}

	summary := &domain.DistrictSummary{
		District: domain.DistrictRef{
			ID:    district.ID,
			Name:  district.Name,
			State: district.State,
			Code:  district.Code,
		},
		Period: domain.Period{
			Year:    perf.Year,
			Month:   perf.Month,
			Display: perf.PeriodDisplay(),
		},
		Metrics: domain.PerformanceMetrics{
			PersonDays:          perf.PersonDays,
			HouseholdsWorked:    perf.HouseholdsWorked,
			TotalWages:          perf.TotalWages,
			MaterialExpenditure: perf.MaterialExpenditure,
		},
		Status: domain.MetricStatuses{
			PersonDaysStatus: metricStatus(float64(perf.PersonDays), averages.PersonDays),
			HouseholdsStatus: metricStatus(float64(perf.HouseholdsWorked), averages.HouseholdsWorked),
			WagesStatus:      metricStatus(perf.TotalWages, averages.TotalWages),
		},
	}

	previousYear, previousMonth := previousPeriod(perf.Year, perf.Month)

	previous, err := s.performanceRepo.GetByDistrictPeriod(ctx, districtID, previousYear, previousMonth)
	if err != nil {
		return nil, err
	}

	if previous != nil {
		summary.ComparisonToPreviousMonth = &domain.MonthComparison{
			PersonDaysChange: percentChange(float64(perf.PersonDays), float64(previous.PersonDays)),
			HouseholdsChange: percentChange(float64(perf.HouseholdsWorked), float64(previous.HouseholdsWorked)),
			WagesChange:      percentChange(perf.TotalWages, previous.TotalWages),
		}
	}

	s.storeSummary(ctx, cacheKey, summary)

	return summary, nil
}

// DistrictHistory returns a district's snapshots between two YYYY-MM periods
// inclusive, oldest first.
func (s *service) DistrictHistory(ctx context.Context, districtID int, from, to string) (*domain.DistrictHistory, error) {
	district, err := s.GetDistrict(ctx, districtID)
	if err != nil {
		return nil, err
	}

	if from == "" || to == "" {
		return nil, ErrInvalidDateRange
	}

	fromYear, fromMonth, err := utils.ParseYearMonth(from)
	if err != nil {
		return nil, ErrInvalidPeriod
	}

	toYear, toMonth, err := utils.ParseYearMonth(to)
	if err != nil {
		return nil, ErrInvalidPeriod
	}

	if fromYear > toYear || (fromYear == toYear && fromMonth > toMonth) {
		return nil, ErrInvalidDateRange
	}

	snapshots, err := s.performanceRepo.GetHistory(ctx, districtID, fromYear, fromMonth, toYear, toMonth)
	if err != nil {
		return nil, err
	}

	points := make([]domain.HistoryPoint, 0, len(snapshots))
	for _, snapshot := range snapshots {
		points = append(points, domain.HistoryPoint{
			Year:                snapshot.Year,
			Month:               snapshot.Month,
			Period:              snapshot.PeriodDisplay(),
			PersonDays:          snapshot.PersonDays,
			HouseholdsWorked:    snapshot.HouseholdsWorked,
			TotalWages:          snapshot.TotalWages,
			MaterialExpenditure: snapshot.MaterialExpenditure,
		})
	}

	return &domain.DistrictHistory{
		District: domain.DistrictRef{
			ID:    district.ID,
			Name:  district.Name,
			State: district.State,
			Code:  district.Code,
		},
		Period: domain.HistoryRange{From: from, To: to},
		Data:   points,
	}, nil
}

// Compare ranks districts by one metric for a single period, highest first.
// Districts without data for the period are omitted.
func (s *service) Compare(ctx context.Context, districtIDs []int, metric string, year, month int) (*domain.Comparison, error) {
	if len(districtIDs) == 0 {
		return nil, ErrNoDistrictsToMatch
	}

	column, ok := domain.ComparisonMetrics[metric]
	if !ok {
		return nil, ErrInvalidMetric
	}

	if year <= 0 {
		return nil, ErrInvalidPeriod
	}

	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	entries, err := s.performanceRepo.CompareByMetric(ctx, districtIDs, column, year, month)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return &domain.Comparison{
		Metric: metric,
		Period: domain.Period{
			Year:    year,
			Month:   month,
			Display: fmt.Sprintf("%d-%02d", year, month),
		},
		Districts: entries,
	}, nil
}

// resolveSnapshot picks the snapshot for the requested period, or the most
// recent one when no period was given.
func (s *service) resolveSnapshot(ctx context.Context, districtID, year, month int) (*domain.Performance, error) {
	if year == 0 || month == 0 {
		perf, err := s.performanceRepo.LatestByDistrict(ctx, districtID)
		if err != nil {
			return nil, err
		}

		if perf == nil {
			return nil, ErrNoDataAvailable
		}

		return perf, nil
	}

	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	perf, err := s.performanceRepo.GetByDistrictPeriod(ctx, districtID, year, month)
	if err != nil {
		return nil, err
	}

	if perf == nil {
		return nil, ErrNoDataAvailable
	}

	return perf, nil
}

// Cache failures are never surfaced; the summary is just recomputed.
func (s *service) cachedSummary(ctx context.Context, key string) (*domain.DistrictSummary, bool) {
	raw, found, err := s.cache.Get(ctx, key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("summary cache read failed")
		return nil, false
	}

	if !found {
		return nil, false
	}

	summary := &domain.DistrictSummary{}
	if err := json.UnmarshalFromString(raw, summary); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("summary cache entry corrupted")
		return nil, false
	}

	return summary, true
}

func (s *service) storeSummary(ctx context.Context, key string, summary *domain.DistrictSummary) {
	raw, err := json.MarshalToString(summary)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("summary cache encode failed")
		return
	}

	if err := s.cache.Set(ctx, key, raw, summaryCacheTTL); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("summary cache write failed")
	}
}

func metricStatus(value float64, average *float64) string {
	if average == nil || *average == 0 {
		return domain.MetricStatusNeutral
	}

	percent := value / *average * 100

	switch {
	case percent >= goodThreshold:
		return domain.MetricStatusGood
	case percent >= averageThreshold:
		return domain.MetricStatusAverage
	default:
		return domain.MetricStatusPoor
	}
}

// percentChange returns the relative delta between two values as a
// percentage, rounded to two decimals. Zero when there is no baseline.
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}

func previousPeriod(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}

	return year, month - 1
}

package reporting

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	cachemocks "github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/cache/mocks"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/repository/mocks"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/domain"
)

type reportingFixture struct {
	districtRepo    *mocks.MockDistrictRepository
	performanceRepo *mocks.MockPerformanceRepository
	cache           *cachemocks.MockCache
	service         Service
}

func newReportingFixture(t *testing.T) *reportingFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &reportingFixture{
		districtRepo:    mocks.NewMockDistrictRepository(ctrl),
		performanceRepo: mocks.NewMockPerformanceRepository(ctrl),
		cache:           cachemocks.NewMockCache(ctrl),
	}

	f.service = NewService(f.districtRepo, f.performanceRepo, f.cache)
	return f
}

func floatPtr(v float64) *float64 { return &v }

func sampleDistrict() *domain.District {
	return &domain.District{
		ID:    7,
		Name:  "Lucknow",
		Code:  "UP-LKO-001",
		State: "Uttar Pradesh",
	}
}

func samplePerformance() *domain.Performance {
	return &domain.Performance{
		ID:                  101,
		DistrictID:          7,
		Year:                2024,
		Month:               6,
		PersonDays:          90000,
		HouseholdsWorked:    6000,
		TotalWages:          18000000,
		MaterialExpenditure: 9000000,
	}
}

func TestService_GetDistrict_NotFound(t *testing.T) {
	f := newReportingFixture(t)
	ctx := context.Background()

	f.districtRepo.EXPECT().GetByID(ctx, 99).Return(nil, nil)

	district, err := f.service.GetDistrict(ctx, 99)
	assert.Nil(t, district)
	assert.ErrorIs(t, err, ErrDistrictNotFound)
}

func TestService_DistrictSummary_StatusBuckets(t *testing.T) {
	f := newReportingFixture(t)
	ctx := context.Background()

	perf := samplePerformance()

	f.districtRepo.EXPECT().GetByID(ctx, 7).Return(sampleDistrict(), nil)
	f.performanceRepo.EXPECT().GetByDistrictPeriod(ctx, 7, 2024, 6).Return(perf, nil)
	f.cache.EXPECT().Get(ctx, "district:7:summary:2024-06").Return("", false, nil)

	// 90000/100000 = 90% good, 6000/10000 = 60% average, 18M/40M = 45% poor
	f.performanceRepo.EXPECT().
		StateAverages(ctx, "Uttar Pradesh", 2024, 6).
		Return(&domain.StateAverages{
			PersonDays:       floatPtr(100000),
			HouseholdsWorked: floatPtr(10000),
			TotalWages:       floatPtr(40000000),
		}, nil)

	f.performanceRepo.EXPECT().GetByDistrictPeriod(ctx, 7, 2024, 5).Return(nil, nil)
	f.cache.EXPECT().Set(ctx, "district:7:summary:2024-06", gomock.Any(), summaryCacheTTL).Return(nil)

	summary, err := f.service.DistrictSummary(ctx, 7, 2024, 6)
	require.NoError(t, err)

	assert.Equal(t, domain.MetricStatusGood, summary.Status.PersonDaysStatus)
	assert.Equal(t, domain.MetricStatusAverage, summary.Status.HouseholdsStatus)
	assert.Equal(t, domain.MetricStatusPoor, summary.Status.WagesStatus)
	assert.Equal(t, "2024-06", summary.Period.Display)
	assert.Nil(t, summary.ComparisonToPreviousMonth)
}

func TestService_DistrictSummary_NeutralWhenNoAverage(t *testing.T) {
	f := newReportingFixture(t)
	ctx := context.Background()

	f.districtRepo.EXPECT().GetByID(ctx, 7).Return(sampleDistrict(), nil)
	f.performanceRepo.EXPECT().GetByDistrictPeriod(ctx, 7, 2024, 6).Return(samplePerformance(), nil)
	f.cache.EXPECT().Get(ctx, gomock.Any()).Return("", false, nil)
	f.performanceRepo.EXPECT().
		StateAverages(ctx, "Uttar Pradesh", 2024, 6).
		Return(&domain.StateAverages{PersonDays: floatPtr(0)}, nil)
	f.performanceRepo.EXPECT().GetByDistrictPeriod(ctx, 7, 2024, 5).Return(nil, nil)
	f.cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	summary, err := f.service.DistrictSummary(ctx, 7, 2024, 6)
	require.NoError(t, err)

	assert.Equal(t, domain.MetricStatusNeutral, summary.Status.PersonDaysStatus)
	assert.Equal(t, domain.MetricStatusNeutral, summary.Status.HouseholdsStatus)
	assert.Equal(t, domain.MetricStatusNeutral, summary.Status.WagesStatus)
}

func TestService_DistrictSummary_PreviousMonthDeltas(t *testing.T) {
	f := newReportingFixture(t)
	ctx := context.Background()

	perf := samplePerformance()
	perf.Year = 2024
	perf.Month = 1

	previous := samplePerformance()
	previous.Year = 2023
	previous.Month = 12
	previous.PersonDays = 80000
	previous.HouseholdsWorked = 0
	previous.TotalWages = 16000000

	f.districtRepo.EXPECT().GetByID(ctx, 7).Return(sampleDistrict(), nil)
	f.performanceRepo.EXPECT().GetByDistrictPeriod(ctx, 7, 2024, 1).Return(perf, nil)
	f.cache.EXPECT().Get(ctx, "district:7:summary:2024-01").Return("", false, nil)
	f.performanceRepo.EXPECT().
		StateAverages(ctx, "Uttar Pradesh", 2024, 1).
		Return(&domain.StateAverages{}, nil)

	// January rolls back to December of the prior year
	f.performanceRepo.EXPECT().GetByDistrictPeriod(ctx, 7, 2023, 12).Return(previous, nil)
	f.cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	summary, err := f.service.DistrictSummary(ctx, 7, 2024, 1)
	require.NoError(t, err)

	require.NotNil(t, summary.ComparisonToPreviousMonth)
	assert.Equal(t, 12.5, summary.ComparisonToPreviousMonth.PersonDaysChange)
	assert.Equal(t, float64(0), summary.ComparisonToPreviousMonth.HouseholdsChange)
	assert.Equal(t, 12.5, summary.ComparisonToPreviousMonth.WagesChange)
}

func TestService_DistrictSummary_CacheHitSkipsComputation(t *testing.T) {
	f := newReportingFixture(t)
	ctx := context.Background()

	cached := `{"district":{"id":7,"name":"Lucknow","state":"Uttar Pradesh","code":"UP-LKO-001"},"period":{"year":2024,"month":6,"display":"2024-06"}}`

	f.districtRepo.EXPECT().GetByID(ctx, 7).Return(sampleDistrict(), nil)
	f.performanceRepo.EXPECT().GetByDistrictPeriod(ctx, 7, 2024, 6).Return(samplePerformance(), nil)
	f.cache.EXPECT().Get(ctx, "district:7:summary:2024-06").Return(cached, true, nil)

	summary, err := f.service.DistrictSummary(ctx, 7, 2024, 6)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.District.ID)
	assert.Equal(t, "2024-06", summary.Period.Display)
}

func TestService_DistrictSummary_CacheFailureFallsThrough(t *testing.T) {
	f := newReportingFixture(t)
	ctx := context.Background()

	f.districtRepo.EXPECT().GetByID(ctx, 7).Return(sampleDistrict(), nil)
	f.performanceRepo.EXPECT().GetByDistrictPeriod(ctx, 7, 2024, 6).Return(samplePerformance(), nil)
	f.cache.EXPECT().Get(ctx, gomock.Any()).Return("", false, errors.New("redis: connection refused"))
	f.performanceRepo.EXPECT().
		StateAverages(ctx, "Uttar Pradesh", 2024, 6).
		Return(&domain.StateAverages{}, nil)
	f.performanceRepo.EXPECT().GetByDistrictPeriod(ctx, 7, 2024, 5).Return(nil, nil)
	f.cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: connection refused"))

	summary, err := f.service.DistrictSummary(ctx, 7, 2024, 6)
	require.NoError(t, err)
	assert.Equal(t, 7, summary.District.ID)
}

func TestService_DistrictSummary_LatestSnapshotWhenPeriodOmitted(t *testing.T) {
	f := newReportingFixture(t)
	ctx := context.Background()

	f.districtRepo.EXPECT().GetByID(ctx, 7).Return(sampleDistrict(), nil)
	f.performanceRepo.EXPECT().LatestByDistrict(ctx, 7).Return(samplePerformance(), nil)
	f.cache.EXPECT().Get(ctx, "district:7:summary:2024-06").Return("", false, nil)
	f.performanceRepo.EXPECT().
		StateAverages(ctx, "Uttar Pradesh", 2024, 6).
		Return(&domain.StateAverages{}, nil)
	f.performanceRepo.EXPECT().GetByDistrictPeriod(ctx, 7, 2024, 5).Return(nil, nil)
	f.cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	summary, err := f.service.DistrictSummary(ctx, 7, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2024, summary.Period.Year)
	assert.Equal(t, 6, summary.Period.Month)
}

func TestService_DistrictSummary_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *reportingFixture, ctx context.Context)
		year    int
		month   int
		wantErr error
	}{
		{
			name: "district missing",
			setup: func(f *reportingFixture, ctx context.Context) {
				f.districtRepo.EXPECT().GetByID(ctx, 7).Return(nil, nil)
			},
			year:    2024,
			month:   6,
			wantErr: ErrDistrictNotFound,
		},
		{
			name: "month out of range",
			setup: func(f *reportingFixture, ctx context.Context) {
				f.districtRepo.EXPECT().GetByID(ctx, 7).Return(sampleDistrict(), nil)
			},
			year:    2024,
			month:   13,
			wantErr: ErrInvalidMonth,
		},
		{
			name: "no snapshot for period",
			setup: func(f *reportingFixture, ctx context.Context) {
				f.districtRepo.EXPECT().GetByID(ctx, 7).Return(sampleDistrict(), nil)
				f.performanceRepo.EXPECT().GetByDistrictPeriod(ctx, 7, 2024, 6).Return(nil, nil)
			},
			year:    2024,
			month:   6,
			wantErr: ErrNoDataAvailable,
		},
		{
			name: "no snapshots at all",
			setup: func(f *reportingFixture, ctx context.Context) {
				f.districtRepo.EXPECT().GetByID(ctx, 7).Return(sampleDistrict(), nil)
				f.performanceRepo.EXPECT().LatestByDistrict(ctx, 7).Return(nil, nil)
			},
			year:    0,
			month:   0,
			wantErr: ErrNoDataAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReportingFixture(t)
			ctx := context.Background()
			tt.setup(f, ctx)

			summary, err := f.service.DistrictSummary(ctx, 7, tt.year, tt.month)
			assert.Nil(t, summary)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_DistrictHistory(t *testing.T) {
	f := newReportingFixture(t)
	ctx := context.Background()

	f.districtRepo.EXPECT().GetByID(ctx, 7).Return(sampleDistrict(), nil)
	f.performanceRepo.EXPECT().
		GetHistory(ctx, 7, 2024, 1, 2024, 3).
		Return([]*domain.Performance{
			{Year: 2024, Month: 1, PersonDays: 80000},
			{Year: 2024, Month: 2, PersonDays: 85000},
			{Year: 2024, Month: 3, PersonDays: 90000},
		}, nil)

	history, err := f.service.DistrictHistory(ctx, 7, "2024-01", "2024-03")
	require.NoError(t, err)

	assert.Equal(t, "Lucknow", history.District.Name)
	assert.Equal(t, domain.HistoryRange{From: "2024-01", To: "2024-03"}, history.Period)
	require.Len(t, history.Data, 3)
	assert.Equal(t, "2024-01", history.Data[0].Period)
	assert.Equal(t, int64(90000), history.Data[2].PersonDays)
}

func TestService_DistrictHistory_Validation(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{name: "missing from", from: "", to: "2024-03", wantErr: ErrInvalidDateRange},
		{name: "missing to", from: "2024-01", to: "", wantErr: ErrInvalidDateRange},
		{name: "malformed from", from: "Jan-2024", to: "2024-03", wantErr: ErrInvalidPeriod},
		{name: "malformed to", from: "2024-01", to: "2024-3", wantErr: ErrInvalidPeriod},
		{name: "reversed range", from: "2024-06", to: "2024-01", wantErr: ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReportingFixture(t)
			ctx := context.Background()

			f.districtRepo.EXPECT().GetByID(ctx, 7).Return(sampleDistrict(), nil)

			history, err := f.service.DistrictHistory(ctx, 7, tt.from, tt.to)
			assert.Nil(t, history)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Compare(t *testing.T) {
	f := newReportingFixture(t)
	ctx := context.Background()

	f.performanceRepo.EXPECT().
		CompareByMetric(ctx, []int{7, 8, 9}, domain.ComparisonMetrics["person_days"], 2024, 6).
		Return([]domain.ComparisonEntry{
			{ID: 8, Name: "Varanasi", Value: 120000},
			{ID: 7, Name: "Lucknow", Value: 90000},
		}, nil)

	comparison, err := f.service.Compare(ctx, []int{7, 8, 9}, "person_days", 2024, 6)
	require.NoError(t, err)

	assert.Equal(t, "person_days", comparison.Metric)
	assert.Equal(t, "2024-06", comparison.Period.Display)
	require.Len(t, comparison.Districts, 2)
	assert.Equal(t, 1, comparison.Districts[0].Rank)
	assert.Equal(t, "Varanasi", comparison.Districts[0].Name)
	assert.Equal(t, 2, comparison.Districts[1].Rank)
}

func TestService_Compare_Validation(t *testing.T) {
	tests := []struct {
		name        string
		districtIDs []int
		metric      string
		year        int
		month       int
		wantErr     error
	}{
		{name: "no districts", districtIDs: nil, metric: "person_days", year: 2024, month: 6, wantErr: ErrNoDistrictsToMatch},
		{name: "unknown metric", districtIDs: []int{1}, metric: "happiness", year: 2024, month: 6, wantErr: ErrInvalidMetric},
		{name: "missing year", districtIDs: []int{1}, metric: "person_days", year: 0, month: 6, wantErr: ErrInvalidPeriod},
		{name: "bad month", districtIDs: []int{1}, metric: "person_days", year: 2024, month: 0, wantErr: ErrInvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReportingFixture(t)

			comparison, err := f.service.Compare(context.Background(), tt.districtIDs, tt.metric, tt.year, tt.month)
			assert.Nil(t, comparison)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMetricStatus(t *testing.T) {
	assert.Equal(t, domain.MetricStatusGood, metricStatus(80, floatPtr(100)))
	assert.Equal(t, domain.MetricStatusAverage, metricStatus(79.9, floatPtr(100)))
	assert.Equal(t, domain.MetricStatusAverage, metricStatus(50, floatPtr(100)))
	assert.Equal(t, domain.MetricStatusPoor, metricStatus(49.9, floatPtr(100)))
	assert.Equal(t, domain.MetricStatusNeutral, metricStatus(100, nil))
	assert.Equal(t, domain.MetricStatusNeutral, metricStatus(100, floatPtr(0)))
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 12.5, percentChange(90000, 80000))
	assert.Equal(t, -25.0, percentChange(75, 100))
	assert.Equal(t, float64(0), percentChange(100, 0))
	assert.Equal(t, 33.33, percentChange(4, 3))
}

func TestPreviousPeriod(t *testing.T) {
	year, month := previousPeriod(2024, 6)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 5, month)

	year, month = previousPeriod(2024, 1)
	assert.Equal(t, 2023, year)
	assert.Equal(t, 12, month)
}

package syncing

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/repository/mocks"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/domain"
)

func validRecord() domain.RawRecord {
	return domain.RawRecord{
		"district_code":        "UP-LKO-001",
		"year":                 2024,
		"month":                6,
		"person_days":          125000,
		"households_worked":    9800,
		"total_wages":          25000000.50,
		"material_expenditure": 12000000.25,
	}
}

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name       string
		record     func() domain.RawRecord
		codeExists bool
		skipLookup bool
		wantOK     bool
		wantErrors []string
	}{
		{
			name:       "valid record",
			record:     validRecord,
			codeExists: true,
			wantOK:     true,
			wantErrors: []string{},
		},
		{
			name: "valid record with string numbers",
			record: func() domain.RawRecord {
				r := validRecord()
				r["year"] = "2024"
				r["month"] = "6"
				r["person_days"] = "125000"
				return r
			},
			codeExists: true,
			wantOK:     true,
			wantErrors: []string{},
		},
		{
			name: "missing fields short-circuit before other checks",
			record: func() domain.RawRecord {
				r := validRecord()
				delete(r, "year")
				delete(r, "total_wages")
				return r
			},
			skipLookup: true,
			wantOK:     false,
			wantErrors: []string{
				"Missing required field: year",
				"Missing required field: total_wages",
			},
		},
		{
			name: "nil value counts as missing",
			record: func() domain.RawRecord {
				r := validRecord()
				r["person_days"] = nil
				return r
			},
			skipLookup: true,
			wantOK:     false,
			wantErrors: []string{"Missing required field: person_days"},
		},
		{
			name: "year before program inception",
			record: func() domain.RawRecord {
				r := validRecord()
				r["year"] = 2005
				return r
			},
			codeExists: true,
			wantOK:     false,
			wantErrors: []string{"Invalid year 2005 (must be >= 2006)"},
		},
		{
			name: "unparseable year",
			record: func() domain.RawRecord {
				r := validRecord()
				r["year"] = "not-a-year"
				return r
			},
			codeExists: true,
			wantOK:     false,
			wantErrors: []string{"Invalid year format: not-a-year"},
		},
		{
			name: "month out of range",
			record: func() domain.RawRecord {
				r := validRecord()
				r["month"] = 13
				return r
			},
			codeExists: true,
			wantOK:     false,
			wantErrors: []string{"Invalid month 13 (must be 1-12)"},
		},
		{
			name: "negative metric",
			record: func() domain.RawRecord {
				r := validRecord()
				r["total_wages"] = -500.0
				return r
			},
			codeExists: true,
			wantOK:     false,
			wantErrors: []string{"total_wages cannot be negative: -500"},
		},
		{
			name: "non-numeric metric",
			record: func() domain.RawRecord {
				r := validRecord()
				r["households_worked"] = "lots"
				return r
			},
			codeExists: true,
			wantOK:     false,
			wantErrors: []string{"Invalid households_worked format: lots"},
		},
		{
			name: "unknown district code",
			record: func() domain.RawRecord {
				r := validRecord()
				r["district_code"] = "XX-UNK-999"
				return r
			},
			codeExists: false,
			wantOK:     false,
			wantErrors: []string{"District code XX-UNK-999 not found in database"},
		},
		{
			name: "multiple problems accumulate",
			record: func() domain.RawRecord {
				r := validRecord()
				r["year"] = 1999
				r["month"] = 0
				r["person_days"] = -1
				return r
			},
			codeExists: true,
			wantOK:     false,
			wantErrors: []string{
				"Invalid year 1999 (must be >= 2006)",
				"Invalid month 0 (must be 1-12)",
				"person_days cannot be negative: -1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			districtRepo := mocks.NewMockDistrictRepository(ctrl)
			if !tt.skipLookup {
				districtRepo.EXPECT().
					CodeExists(gomock.Any(), gomock.Any()).
					Return(tt.codeExists, nil)
			}

			validator := NewValidator(districtRepo)

			ok, errs, err := validator.Validate(context.Background(), tt.record())
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantErrors, errs)
		})
	}
}

func TestValidator_Validate_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	districtRepo := mocks.NewMockDistrictRepository(ctrl)
	districtRepo.EXPECT().
		CodeExists(gomock.Any(), "UP-LKO-001").
		Return(false, errors.New("connection refused"))

	validator := NewValidator(districtRepo)

	ok, errs, err := validator.Validate(context.Background(), validRecord())
	assert.False(t, ok)
	assert.Nil(t, errs)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UP-LKO-001")
}

func TestMetricsFromRecord(t *testing.T) {
	metrics := metricsFromRecord(validRecord())

	assert.Equal(t, int64(125000), metrics.PersonDays)
	assert.Equal(t, int64(9800), metrics.HouseholdsWorked)
	assert.Equal(t, 25000000.50, metrics.TotalWages)
	assert.Equal(t, 12000000.25, metrics.MaterialExpenditure)
}

func TestMetricsFromRecord_MissingMaterialDefaultsToZero(t *testing.T) {
	record := validRecord()
	delete(record, "material_expenditure")

	metrics := metricsFromRecord(record)
	assert.Zero(t, metrics.MaterialExpenditure)
}

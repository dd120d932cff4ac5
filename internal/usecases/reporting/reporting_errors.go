package reporting

import "errors"

var (
	ErrDistrictNotFound   = errors.New("district not found")
	ErrNoDataAvailable    = errors.New("no performance data for the requested period")
	ErrInvalidMonth       = errors.New("month must be between 1 and 12")
	ErrInvalidMetric      = errors.New("unknown comparison metric")
	ErrInvalidPeriod      = errors.New("period must be in YYYY-MM format")
	ErrInvalidDateRange   = errors.New("both from and to are required in YYYY-MM format")
	ErrNoDistrictsToMatch = errors.New("at least one district is required")
)

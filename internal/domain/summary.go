package domain

// Metric status buckets relative to the state average for the same period.
const (
	MetricStatusGood    = "good"    // >= 80% of state average
	MetricStatusAverage = "average" // 50-79%
	MetricStatusPoor    = "poor"    // < 50%
	MetricStatusNeutral = "neutral" // no average to compare against
)

type DistrictRef struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
	Code  string `json:"code,omitempty"`
}

type Period struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Display string `json:"display"`
}

// MetricStatuses holds the per-metric status buckets against state averages.
type MetricStatuses struct {
	PersonDaysStatus string `json:"personDaysStatus"`
	HouseholdsStatus string `json:"householdsStatus"`
	WagesStatus      string `json:"wagesStatus"`
}

// MonthComparison holds percentage deltas against the previous month.
type MonthComparison struct {
	PersonDaysChange float64 `json:"personDaysChange"`
	HouseholdsChange float64 `json:"householdsChange"`
	WagesChange      float64 `json:"wagesChange"`
}

// DistrictSummary is one district-month with derived status indicators.
type DistrictSummary struct {
	District                  DistrictRef        `json:"district"`
	Period                    Period             `json:"period"`
	Metrics                   PerformanceMetrics `json:"metrics"`
	Status                    MetricStatuses     `json:"status"`
	ComparisonToPreviousMonth *MonthComparison   `json:"comparisonToPreviousMonth"`
}

// StateAverages are the per-metric means across all districts of one state
// for one period. Nil fields mean no rows existed to average.
type StateAverages struct {
	PersonDays       *float64
	HouseholdsWorked *float64
	TotalWages       *float64
}

type HistoryPoint struct {
	Year                int     `json:"year"`
	Month               int     `json:"month"`
	Period              string  `json:"period"`
	PersonDays          int64   `json:"personDays"`
	HouseholdsWorked    int64   `json:"householdsWorked"`
	TotalWages          float64 `json:"totalWages"`
	MaterialExpenditure float64 `json:"materialExpenditure"`
}

type HistoryRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type DistrictHistory struct {
	District DistrictRef    `json:"district"`
	Period   HistoryRange   `json:"period"`
	Data     []HistoryPoint `json:"data"`
}

type ComparisonEntry struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	State string  `json:"state"`
	Value float64 `json:"value"`
	Rank  int     `json:"rank"`
}

type Comparison struct {
	Metric    string            `json:"metric"`
	Period    Period            `json:"period"`
	Districts []ComparisonEntry `json:"districts"`
}

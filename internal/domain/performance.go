package domain

import (
	"fmt"
	"time"
)

// Performance is one district's monthly metrics snapshot. The triple
// (DistrictID, Year, Month) is unique and is the idempotence key for the
// sync pipeline's upsert.
type Performance struct {
	ID                  int       `json:"id"`
	DistrictID          int       `json:"district_id"`
	Year                int       `json:"year"`
	Month               int       `json:"month"`
	PersonDays          int64     `json:"person_days"`
	HouseholdsWorked    int64     `json:"households_worked"`
	TotalWages          float64   `json:"total_wages"`
	MaterialExpenditure float64   `json:"material_expenditure"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// PerformanceMetrics carries just the four metric fields written by an upsert.
type PerformanceMetrics struct {
	PersonDays          int64   `json:"person_days"`
	HouseholdsWorked    int64   `json:"households_worked"`
	TotalWages          float64 `json:"total_wages"`
	MaterialExpenditure float64 `json:"material_expenditure"`
}

// PeriodDisplay formats the snapshot period as YYYY-MM.
func (p *Performance) PeriodDisplay() string {
	return fmt.Sprintf("%d-%02d", p.Year, p.Month)
}

// ComparisonMetrics maps the metric names accepted by the compare endpoint
// to their database columns.
var ComparisonMetrics = map[string]string{
	"person_days":          "person_days",
	"households_worked":    "households_worked",
	"total_wages":          "total_wages",
	"material_expenditure": "material_expenditure",
}

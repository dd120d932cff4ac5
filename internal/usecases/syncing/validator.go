package syncing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/repository"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/domain"
)

// minYear is the MGNREGA program inception year.
const minYear = 2006

var requiredFields = []string{
	"district_code",
	"year",
	"month",
	"person_days",
	"households_worked",
	"total_wages",
}

// numericFields must parse as non-negative numbers. material_expenditure is
// optional and defaults to 0 when absent.
var numericFields = []string{
	"person_days",
	"households_worked",
	"total_wages",
	"material_expenditure",
}

// Validator checks raw feed records against schema, range and referential
// rules. It has no side effects: the only lookup is whether a district code
// resolves locally.
type Validator struct {
	districtRepo repository.DistrictRepository
}

func NewValidator(districtRepo repository.DistrictRepository) *Validator {
	return &Validator{
		districtRepo: districtRepo,
	}
}

// Validate returns ok=true iff the record passed every check. Missing
// required fields short-circuit: one error per missing field and nothing
// else runs. All remaining checks accumulate so the caller sees the full
// set of problems in one pass. The returned error is an infrastructure
// failure (district lookup), not a validation verdict.
func (v *Validator) Validate(ctx context.Context, record domain.RawRecord) (bool, []string, error) {
	errs := []string{}

	for _, field := range requiredFields {
		if value, ok := record[field]; !ok || value == nil {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", field))
		}
	}

	if len(errs) > 0 {
		return false, errs, nil
	}

	if year, err := toInt(record["year"]); err != nil {
		errs = append(errs, fmt.Sprintf("Invalid year format: %v", record["year"]))
	} else if year < minYear {
		errs = append(errs, fmt.Sprintf("Invalid year %d (must be >= %d)", year, minYear))
	}

	if month, err := toInt(record["month"]); err != nil {
		errs = append(errs, fmt.Sprintf("Invalid month format: %v", record["month"]))
	} else if month < 1 || month > 12 {
		errs = append(errs, fmt.Sprintf("Invalid month %d (must be 1-12)", month))
	}

	for _, field := range numericFields {
		value, ok := record[field]
		if !ok || value == nil {
			continue // optional fields default to zero
		}

		number, err := toFloat(value)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Invalid %s format: %v", field, value))
			continue
		}
		if number < 0 {
			errs = append(errs, fmt.Sprintf("%s cannot be negative: %v", field, value))
		}
	}

	code := toString(record["district_code"])
	exists, err := v.districtRepo.CodeExists(ctx, code)
	if err != nil {
		return false, nil, fmt.Errorf("error resolving district code %s: %w", code, err)
	}
	if !exists {
		errs = append(errs, fmt.Sprintf("District code %s not found in database", code))
	}

	return len(errs) == 0, errs, nil
}

// toInt coerces the loosely-typed feed values that stand for integers:
// JSON numbers decode as float64, but sources also ship them as strings.
func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, err
		}
		return n, nil
	default:
		return 0, fmt.Errorf("not an integer: %v", value)
	}
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, err
		}
		return n, nil
	default:
		return 0, fmt.Errorf("not a number: %v", value)
	}
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// metricsFromRecord converts an already-validated record into the typed
// metric set written by the upsert.
func metricsFromRecord(record domain.RawRecord) domain.PerformanceMetrics {
	personDays, _ := toFloat(record["person_days"])
	households, _ := toFloat(record["households_worked"])
	wages, _ := toFloat(record["total_wages"])

	var material float64
	if value, ok := record["material_expenditure"]; ok && value != nil {
		material, _ = toFloat(value)
	}

	return domain.PerformanceMetrics{
		PersonDays:          int64(personDays),
		HouseholdsWorked:    int64(households),
		TotalWages:          wages,
		MaterialExpenditure: material,
	}
}

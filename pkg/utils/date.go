package utils

import (
	"fmt"
	"time"
)

// ParseYearMonth parses a period in YYYY-MM form.
func ParseYearMonth(period string) (int, int, error) {
	parsed, err := time.Parse("2006-01", period)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid period %q: %w", period, err)
	}

	return parsed.Year(), int(parsed.Month()), nil
}

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/usecases/reporting"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/pkg/apiErrors"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/pkg/utils"
)

// CompareDistricts ranks the requested districts by one metric for a single
// period. districts is a comma separated list of IDs.
func CompareDistricts(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		districtIDs, ok := parseDistrictIDs(w, r.URL.Query().Get("districts"))
		if !ok {
			return
		}

		metric := r.URL.Query().Get("metric")

		year, month, ok := comparePeriod(w, r)
		if !ok {
			return
		}

		comparison, err := service.Compare(r.Context(), districtIDs, metric, year, month)
		if err != nil {
			writeReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(comparison); err != nil {
			logrus.Error(err)
		}
	}
}

// comparePeriod reads the period as YYYY-MM, falling back to separate year
// and month parameters.
func comparePeriod(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	if period := r.URL.Query().Get("period"); period != "" {
		year, month, err := utils.ParseYearMonth(period)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "period must be YYYY-MM", nil)
			return 0, 0, false
		}
		return year, month, true
	}

	year, ok := optionalIntParam(w, r, "year")
	if !ok {
		return 0, 0, false
	}

	month, ok := optionalIntParam(w, r, "month")
	if !ok {
		return 0, 0, false
	}

	return year, month, true
}

func parseDistrictIDs(w http.ResponseWriter, raw string) ([]int, bool) {
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "districts parameter is required", nil)
		return nil, false
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid district ID in districts parameter", nil)
			return nil, false
		}
		ids = append(ids, id)
	}

	return ids, true
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/domain"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/usecases/reporting"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/pkg/apiErrors"
)

func ListDistricts(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := domain.DistrictFilters{
			Name:  r.URL.Query().Get("name"),
			State: r.URL.Query().Get("state"),
			Code:  r.URL.Query().Get("code"),
		}

		districts, err := service.ListDistricts(r.Context(), filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list districts", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(districts); err != nil {
			logrus.Error(err)
		}
	}
}

func GetDistrict(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		districtID, ok := districtIDFromRequest(w, r)
		if !ok {
			return
		}

		district, err := service.GetDistrict(r.Context(), districtID)
		if err != nil {
			writeReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(district); err != nil {
			logrus.Error(err)
		}
	}
}

func GetDistrictSummary(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		districtID, ok := districtIDFromRequest(w, r)
		if !ok {
			return
		}

		year, ok := optionalIntParam(w, r, "year")
		if !ok {
			return
		}

		month, ok := optionalIntParam(w, r, "month")
		if !ok {
			return
		}

		summary, err := service.DistrictSummary(r.Context(), districtID, year, month)
		if err != nil {
			writeReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
		}
	}
}

func GetDistrictHistory(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		districtID, ok := districtIDFromRequest(w, r)
		if !ok {
			return
		}

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")

		history, err := service.DistrictHistory(r.Context(), districtID, from, to)
		if err != nil {
			writeReportingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(history); err != nil {
			logrus.Error(err)
		}
	}
}

func districtIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

	districtID, err := strconv.Atoi(idStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid district ID", nil)
		return 0, false
	}

	return districtID, true
}

// optionalIntParam parses a query parameter as int, returning zero when the
// parameter is absent. Writes a 400 and returns false on malformed input.
func optionalIntParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid "+name+" parameter", nil)
		return 0, false
	}

	return value, true
}

// writeReportingError maps reporting errors to API error codes.
func writeReportingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporting.ErrDistrictNotFound):
		apiErrors.WriteError(w, apiErrors.ErrDistrictNotFound, "District not found", nil)

	case errors.Is(err, reporting.ErrNoDataAvailable):
		apiErrors.WriteError(w, apiErrors.ErrNoDataAvailable, "No performance data for the requested period", nil)

	case errors.Is(err, reporting.ErrInvalidMonth),
		errors.Is(err, reporting.ErrInvalidPeriod),
		errors.Is(err, reporting.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)

	case errors.Is(err, reporting.ErrInvalidMetric):
		apiErrors.WriteError(w, apiErrors.ErrInvalidMetric, err.Error(), nil)

	case errors.Is(err, reporting.ErrNoDistrictsToMatch):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
	}
}

package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/cache"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/repository"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/api/handler/router"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/scheduler"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/usecases/authenticating"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/usecases/reporting"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Health(conn DatabasePinger, c cache.Cache, statusRepo repository.APIStatusRepository, source string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/health",
			Method:  http.MethodGet,
			Handler: HealthHandler(conn, c, statusRepo, source),
		},
	}
}

func Districts(service reporting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/districts",
			Method:  http.MethodGet,
			Handler: ListDistricts(service),
		},
		{
			Path:    "/v1/districts/:id",
			Method:  http.MethodGet,
			Handler: GetDistrict(service),
		},
		{
			Path:    "/v1/districts/:id/summary",
			Method:  http.MethodGet,
			Handler: GetDistrictSummary(service),
		},
		{
			Path:    "/v1/districts/:id/history",
			Method:  http.MethodGet,
			Handler: GetDistrictHistory(service),
		},
	}
}

func Compare(service reporting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/compare",
			Method:  http.MethodGet,
			Handler: CompareDistricts(service),
		},
	}
}

func Sync(syncService *scheduler.MGNREGASyncService, statusRepo repository.APIStatusRepository, source string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(statusRepo, source),
		},
		{
			Path:        "/v1/sync/run",
			Method:      http.MethodPost,
			Handler:     RunSync(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

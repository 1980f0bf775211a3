package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(deps DashboardDeps) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(deps),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoStore()},
		},
		{
			Path:    "/v1/dashboard/range",
			Method:  http.MethodPost,
			Handler: ApplyDashboardRange(deps),
		},
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDashboard(deps),
		},
	}
}

func Charts(charts ChartReader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/charts/:slot",
			Method:      http.MethodGet,
			Handler:     GetChartFrame(charts),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoStore()},
		},
		{
			Path:        "/v1/charts/:slot/tooltips",
			Method:      http.MethodGet,
			Handler:     GetChartTooltips(charts),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoStore()},
		},
	}
}

func AutoRefresh(refresher AutoRefresher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/refresh/run",
			Method:  http.MethodPost,
			Handler: RunAutoRefresh(refresher),
		},
		{
			Path:    "/v1/refresh/status",
			Method:  http.MethodGet,
			Handler: GetAutoRefreshStatus(refresher),
		},
	}
}

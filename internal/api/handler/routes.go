package handler

import (
	"net/http"

	"github.com/Wall-AR/sales-pulse-api/internal/api/handler/router"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/authenticating"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/billing"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/kpis"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/ranking"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/reporting"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/sellers"
	"github.com/Wall-AR/sales-pulse-api/internal/usecases/selling"
	"github.com/Wall-AR/sales-pulse-api/pkg/middleware"
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

// Authentication não usa Group: login e registro são rotas públicas.
func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []router.Middleware{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []router.Middleware{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return router.Group([]router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
		{
			Path:    "/v1/users/:id",
			Method:  http.MethodGet,
			Handler: GetUser(service),
		},
		{
			Path:    "/v1/users/:id",
			Method:  http.MethodPut,
			Handler: UpdateUser(service),
		},
	}, middleware.AllRoles())
}

func Sellers(service sellers.SellerManager) []router.Route {
	return router.Group([]router.Route{
		{
			Path:    "/v1/sellers",
			Method:  http.MethodGet,
			Handler: ListSellers(service),
		},
		{
			Path:        "/v1/sellers",
			Method:      http.MethodPost,
			Handler:     CreateSeller(service),
			Middlewares: []router.Middleware{middleware.AdminOrSupervisor()},
		},
		{
			Path:    "/v1/sellers/:id",
			Method:  http.MethodGet,
			Handler: GetSeller(service),
		},
		{
			Path:        "/v1/sellers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSeller(service),
			Middlewares: []router.Middleware{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sellers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSeller(service),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
	}, middleware.AllRoles())
}

func Sales(service selling.SaleManager) []router.Route {
	return router.Group([]router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodGet,
			Handler: GetSale(service),
		},
		{
			Path:    "/v1/sales/:id",
			Method:  http.MethodPut,
			Handler: UpdateSale(service),
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSale(service),
			Middlewares: []router.Middleware{middleware.AdminOrSupervisor()},
		},
	}, middleware.AllRoles())
}

func Dashboard(reporter reporting.Reporter, ranker ranking.Ranker) []router.Route {
	return router.Group([]router.Route{
		{
			Path:    "/v1/dashboard/kpis",
			Method:  http.MethodGet,
			Handler: GetKpiSnapshot(reporter),
		},
		{
			Path:    "/v1/dashboard/daily-series",
			Method:  http.MethodGet,
			Handler: GetDailySeries(reporter),
		},
		{
			Path:    "/v1/dashboard/ranking",
			Method:  http.MethodGet,
			Handler: GetSellerRanking(ranker),
		},
		{
			Path:    "/v1/dashboard/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(reporter),
		},
	}, middleware.AllRoles())
}

func Billing(service billing.BillingManager) []router.Route {
	return router.Group([]router.Route{
		{
			Path:    "/v1/billing",
			Method:  http.MethodGet,
			Handler: ListBillingStatements(service),
		},
		{
			Path:    "/v1/billing",
			Method:  http.MethodPost,
			Handler: UpsertBillingStatement(service),
		},
		{
			Path:    "/v1/billing/:period",
			Method:  http.MethodGet,
			Handler: GetBillingStatement(service),
		},
		{
			Path:        "/v1/billing/:period",
			Method:      http.MethodDelete,
			Handler:     DeleteBillingStatement(service),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
	}, middleware.AdminOrSupervisor())
}

func Kpis(service kpis.KpiManager) []router.Route {
	return router.Group([]router.Route{
		{
			Path:    "/v1/kpis",
			Method:  http.MethodPut,
			Handler: UpsertKpiSnapshot(service),
		},
	}, middleware.AdminOrSupervisor())
}

func CronJobs(services CronJobServices) []router.Route {
	return router.Group([]router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}, middleware.AdminOrSupervisor())
}

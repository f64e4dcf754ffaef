package handler

import (
	"net/http"

	"github.com/vfg2006/consultant-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/profiling"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/consultant-dashboard-api/pkg/middleware"
)

func allRoles() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{middleware.AllRoles()}
}

func Healthcheck(deps map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(deps),
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: allRoles(),
		},
	}
}

func Records(service recording.Recorder) []router.Route {
	return []router.Route{
		{Path: "/v1/clients", Method: http.MethodGet, Handler: ListClients(service), Middlewares: allRoles()},
		{Path: "/v1/clients", Method: http.MethodPost, Handler: CreateClient(service), Middlewares: allRoles()},
		{Path: "/v1/clients/:id", Method: http.MethodGet, Handler: GetClient(service), Middlewares: allRoles()},
		{Path: "/v1/clients/:id", Method: http.MethodPut, Handler: UpdateClient(service), Middlewares: allRoles()},
		{Path: "/v1/clients/:id", Method: http.MethodDelete, Handler: DeleteClient(service), Middlewares: allRoles()},

		{Path: "/v1/projects", Method: http.MethodGet, Handler: ListProjects(service), Middlewares: allRoles()},
		{Path: "/v1/projects", Method: http.MethodPost, Handler: CreateProject(service), Middlewares: allRoles()},
		{Path: "/v1/projects/:id", Method: http.MethodPut, Handler: UpdateProject(service), Middlewares: allRoles()},
		{Path: "/v1/projects/:id", Method: http.MethodDelete, Handler: DeleteProject(service), Middlewares: allRoles()},

		{Path: "/v1/time-entries", Method: http.MethodGet, Handler: ListTimeEntries(service), Middlewares: allRoles()},
		{Path: "/v1/time-entries", Method: http.MethodPost, Handler: CreateTimeEntry(service), Middlewares: allRoles()},
		{Path: "/v1/time-entries/:id", Method: http.MethodDelete, Handler: DeleteTimeEntry(service), Middlewares: allRoles()},

		{Path: "/v1/invoice-items", Method: http.MethodGet, Handler: ListInvoiceItems(service), Middlewares: allRoles()},
		{Path: "/v1/invoice-items", Method: http.MethodPost, Handler: CreateInvoiceItem(service), Middlewares: allRoles()},
		{Path: "/v1/invoice-items/:id", Method: http.MethodPut, Handler: UpdateInvoiceItem(service), Middlewares: allRoles()},
		{Path: "/v1/invoice-items/:id", Method: http.MethodDelete, Handler: DeleteInvoiceItem(service), Middlewares: allRoles()},

		{Path: "/v1/expenses", Method: http.MethodGet, Handler: ListExpenses(service), Middlewares: allRoles()},
		{Path: "/v1/expenses", Method: http.MethodPost, Handler: CreateExpense(service), Middlewares: allRoles()},
		{Path: "/v1/expenses/:id", Method: http.MethodDelete, Handler: DeleteExpense(service), Middlewares: allRoles()},
	}
}

func Reports(reporter reporting.Reporter, exporter exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/revenue",
			Method:      http.MethodGet,
			Handler:     GetRevenueReport(reporter),
			Middlewares: allRoles(),
		},
		{
			Path:        "/v1/reports/revenue/export",
			Method:      http.MethodGet,
			Handler:     ExportRevenueReport(exporter),
			Middlewares: allRoles(),
		},
		{
			Path:        "/v1/reports/clients",
			Method:      http.MethodGet,
			Handler:     GetClientHealthReport(reporter),
			Middlewares: allRoles(),
		},
		{
			Path:        "/v1/reports/cashflow",
			Method:      http.MethodGet,
			Handler:     GetCashFlowReport(reporter),
			Middlewares: allRoles(),
		},
		{
			Path:        "/v1/reports/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyReports(reporter),
			Middlewares: allRoles(),
		},
	}
}

func Integrations(exporter exporting.Exporter) []router.Route {
	return []router.Route{
		{Path: "/v1/integrations/fortnox", Method: http.MethodGet, Handler: GetFortnoxStatus(exporter), Middlewares: allRoles()},
		{Path: "/v1/integrations/fortnox", Method: http.MethodPut, Handler: SaveFortnoxConfig(exporter), Middlewares: allRoles()},
		{Path: "/v1/integrations/fortnox", Method: http.MethodDelete, Handler: ClearFortnoxConfig(exporter), Middlewares: allRoles()},
		{Path: "/v1/integrations/fortnox/test", Method: http.MethodPost, Handler: TestFortnoxConnection(exporter), Middlewares: allRoles()},
		{Path: "/v1/integrations/fortnox/customers", Method: http.MethodGet, Handler: ListFortnoxCustomers(exporter), Middlewares: allRoles()},
		{Path: "/v1/integrations/fortnox/export", Method: http.MethodPost, Handler: ExportToFortnox(exporter), Middlewares: allRoles()},
		{Path: "/v1/invoice-items/export/text", Method: http.MethodPost, Handler: ExportTextInvoice(exporter), Middlewares: allRoles()},
	}
}

func CV(service profiling.Profiler) []router.Route {
	return []router.Route{
		{Path: "/v1/cv", Method: http.MethodGet, Handler: GetCV(service), Middlewares: allRoles()},
		{Path: "/v1/cv", Method: http.MethodPut, Handler: SaveCV(service), Middlewares: allRoles()},
		{Path: "/v1/cv", Method: http.MethodDelete, Handler: DeleteCV(service), Middlewares: allRoles()},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

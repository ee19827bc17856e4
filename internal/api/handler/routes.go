package handler

import (
	"net/http"

	"github.com/vfg2006/econoapp-api/infrastructure/repository"
	"github.com/vfg2006/econoapp-api/internal/api/handler/router"
	"github.com/vfg2006/econoapp-api/internal/usecases/insighting"
	"github.com/vfg2006/econoapp-api/internal/usecases/month"
	"github.com/vfg2006/econoapp-api/internal/usecases/recording"
	"github.com/vfg2006/econoapp-api/internal/usecases/summarizing"
	"github.com/vfg2006/econoapp-api/pkg/middleware"
)

// APIPrefix é o prefixo de todas as rotas
const APIPrefix = "/api"

// Tamanho máximo do corpo das requisições de escrita
const maxBodyBytes = 1 << 20

var (
	monthRoute = []func(http.Handler) http.Handler{
		middleware.LogRouteParams("month", "id"),
	}
	writeRoute = []func(http.Handler) http.Handler{
		middleware.LogRouteParams("month", "id"),
		middleware.LimitBody(maxBodyBytes),
	}
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    APIPrefix + "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Months(resolver month.Resolver, summarizer summarizing.Summarizer, insighter insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    APIPrefix + "/months",
			Method:  http.MethodGet,
			Handler: ListMonths(resolver),
		},
		{
			Path:    APIPrefix + "/months/:month",
			Method:  http.MethodPost,
			Handler: EnsureCurrentMonth(resolver),
		},
		{
			Path:        APIPrefix + "/months/:month/summary",
			Method:      http.MethodGet,
			Handler:     GetMonthSummary(summarizer),
			Middlewares: monthRoute,
		},
		{
			Path:        APIPrefix + "/months/:month/comparison",
			Method:      http.MethodGet,
			Handler:     GetMonthComparison(summarizer),
			Middlewares: monthRoute,
		},
		{
			Path:        APIPrefix + "/months/:month/insights",
			Method:      http.MethodGet,
			Handler:     GetMonthInsights(insighter),
			Middlewares: monthRoute,
		},
	}
}

func Transactions(recorder recording.Recorder) []router.Route {
	return []router.Route{
		{
			Path:        APIPrefix + "/months/:month/transactions",
			Method:      http.MethodGet,
			Handler:     ListTransactions(recorder),
			Middlewares: monthRoute,
		},
		{
			Path:        APIPrefix + "/months/:month/transactions",
			Method:      http.MethodPost,
			Handler:     CreateTransaction(recorder),
			Middlewares: writeRoute,
		},
		{
			Path:        APIPrefix + "/months/:month/transactions/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTransaction(recorder),
			Middlewares: writeRoute,
		},
		{
			Path:        APIPrefix + "/months/:month/transactions/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTransaction(recorder),
			Middlewares: monthRoute,
		},
	}
}

func Investments(recorder recording.Recorder) []router.Route {
	return []router.Route{
		{
			Path:        APIPrefix + "/months/:month/investments",
			Method:      http.MethodGet,
			Handler:     ListInvestments(recorder),
			Middlewares: monthRoute,
		},
		{
			Path:        APIPrefix + "/months/:month/investments",
			Method:      http.MethodPost,
			Handler:     CreateInvestment(recorder),
			Middlewares: writeRoute,
		},
		{
			Path:        APIPrefix + "/months/:month/investments/:id",
			Method:      http.MethodPut,
			Handler:     UpdateInvestment(recorder),
			Middlewares: writeRoute,
		},
		{
			Path:        APIPrefix + "/months/:month/investments/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteInvestment(recorder),
			Middlewares: monthRoute,
		},
	}
}

func Settings(recorder recording.Recorder) []router.Route {
	return []router.Route{
		{
			Path:        APIPrefix + "/months/:month/settings",
			Method:      http.MethodGet,
			Handler:     GetSettings(recorder),
			Middlewares: monthRoute,
		},
		{
			Path:        APIPrefix + "/months/:month/settings",
			Method:      http.MethodPut,
			Handler:     UpdateSettings(recorder),
			Middlewares: writeRoute,
		},
		{
			Path:        APIPrefix + "/months/:month/categories",
			Method:      http.MethodGet,
			Handler:     ListCategories(recorder),
			Middlewares: monthRoute,
		},
	}
}

func History(snapshotRepo repository.SummarySnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:    APIPrefix + "/history",
			Method:  http.MethodGet,
			Handler: GetSummaryHistory(snapshotRepo),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    APIPrefix + "/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    APIPrefix + "/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

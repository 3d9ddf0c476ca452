package handler

import (
	"net/http"

	"github.com/ndixit/domain-clicks-report/infrastructure/repository"
	"github.com/ndixit/domain-clicks-report/internal/api/handler/router"
	"github.com/ndixit/domain-clicks-report/internal/scheduler"
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

// Reports retorna as rotas de operação do relatório diário
func Reports(service *scheduler.DailyReportService, statsRepo repository.ViewStatsRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/report/run",
			Method:  http.MethodPost,
			Handler: RunReport(service),
		},
		{
			Path:    "/v1/report/status",
			Method:  http.MethodGet,
			Handler: GetReportStatus(service),
		},
		{
			Path:    "/v1/report/stats",
			Method:  http.MethodGet,
			Handler: GetReportStats(statsRepo),
		},
	}
}

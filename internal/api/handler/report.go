package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/ndixit/domain-clicks-report/infrastructure/repository"
	"github.com/ndixit/domain-clicks-report/internal/scheduler"
	"github.com/ndixit/domain-clicks-report/internal/usecases/reporting"
	"github.com/ndixit/domain-clicks-report/pkg/apiErrors"
	"github.com/ndixit/domain-clicks-report/pkg/middleware"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunReport dispara manualmente o relatório de uma data
func RunReport(service *scheduler.DailyReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunReport")

		// Apenas administradores podem disparar o relatório
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok || !claims.IsAdmin() {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem disparar o relatório", nil)
			return
		}

		date := r.URL.Query().Get("date")
		if _, err := reporting.NewDateWindow(date); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, esperado YYYY-MM-DD", err.Error())
			return
		}

		// A execução continua depois da resposta; não usar o contexto da
		// requisição
		if err := service.TriggerManualSync(context.Background(), date); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Relatório já em andamento", nil)
			return
		}

		response := map[string]any{
			"message": "Relatório iniciado com sucesso",
			"date":    date,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetReportStatus retorna o status do agendador do relatório
func GetReportStatus(service *scheduler.DailyReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetReportStatus")

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok || !claims.IsAdmin() {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar o status do relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.GetStatus())
	}
}

// GetReportStats retorna as estatísticas persistidas de uma data, para auditoria
func GetReportStats(statsRepo repository.ViewStatsRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetReportStats")

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok || !claims.IsAdmin() {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem consultar as estatísticas", nil)
			return
		}

		date := r.URL.Query().Get("date")
		if _, err := reporting.NewDateWindow(date); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, esperado YYYY-MM-DD", err.Error())
			return
		}

		records, err := statsRepo.GetByDate(date)
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar estatísticas persistidas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar estatísticas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"date":    date,
			"count":   len(records),
			"records": records,
		})
	}
}

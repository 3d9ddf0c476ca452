// Package scheduler contém o agendamento da geração diária do relatório
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/ndixit/domain-clicks-report/internal/config"
	"github.com/ndixit/domain-clicks-report/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

// DailyReportConfig representa a configuração do agendador do relatório diário
type DailyReportConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DailyReportService gerencia o agendamento e a execução do relatório diário
// de cliques por domínio
type DailyReportService struct {
	scheduler          *gocron.Scheduler
	config             DailyReportConfig
	runner             reporting.Runner
	syncRunning        bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastReportDate     string
	lastRunError       string
}

func NewDailyReportService(runner reporting.Runner, cfg *config.Config) *DailyReportService {
	reportConfig := DailyReportConfig{
		CronSchedule: cfg.ReportSync.CronSchedule,
		SyncEnabled:  cfg.ReportSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"sync_enabled":  reportConfig.SyncEnabled,
	}).Info("Configuração do agendador do relatório diário carregada")

	return &DailyReportService{
		scheduler: scheduler,
		config:    reportConfig,
		runner:    runner,
	}
}

// Start inicia o agendador
func (s *DailyReportService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Agendamento do relatório diário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório diário de cliques")

	// Agendar o relatório do dia anterior
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		date := time.Now().UTC().AddDate(0, 0, -1).Format(time.DateOnly)
		s.runReport(ctx, date)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o relatório diário: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório diário")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara manualmente o relatório de uma data.
// Retorna erro quando já existe uma execução em andamento.
func (s *DailyReportService) TriggerManualSync(ctx context.Context, date string) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Relatório diário já em andamento, ignorando solicitação manual")
		return fmt.Errorf("relatório já em andamento")
	}
	s.syncMutex.Unlock()

	logrus.WithField("date", date).Info("Iniciando execução manual do relatório diário")
	go s.runReport(ctx, date)

	return nil
}

func (s *DailyReportService) runReport(ctx context.Context, date string) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Relatório diário já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastRunStartedAt = time.Now()
	s.lastReportDate = date

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	_, err := s.runner.RunForDate(ctx, date)
	if err != nil {
		s.lastRunError = err.Error()
		logrus.WithError(err).WithField("date", date).Error("Erro na execução do relatório diário")
	} else {
		s.lastRunError = ""
	}

	s.lastRunCompletedAt = time.Now()
}

// GetStatus retorna o status atual do agendador
func (s *DailyReportService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":          s.config.SyncEnabled,
		"sync_cron":             s.config.CronSchedule,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_report_date":      s.lastReportDate,
		"last_run_error":        s.lastRunError,
	}
}

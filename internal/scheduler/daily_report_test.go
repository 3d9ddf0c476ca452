package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/ndixit/domain-clicks-report/internal/config"
	"github.com/ndixit/domain-clicks-report/internal/domain"
	"github.com/ndixit/domain-clicks-report/internal/usecases/reporting/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		ReportSync: config.ReportSync{
			CronSchedule: "0 7 * * *",
			Enabled:      enabled,
		},
	}
}

func waitForSignal(t *testing.T, ch <-chan struct{}, msg string) {
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal(msg)
	}
}

func TestDailyReportServiceTriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	service := NewDailyReportService(runner, newTestConfig(false))

	done := make(chan struct{})
	runner.EXPECT().
		RunForDate(gomock.Any(), "2024-03-15").
		DoAndReturn(func(context.Context, string) (*domain.ClickReport, error) {
			defer close(done)
			return &domain.ClickReport{Date: "2024-03-15"}, nil
		})

	err := service.TriggerManualSync(context.Background(), "2024-03-15")
	require.NoError(t, err)

	waitForSignal(t, done, "relatório não executou dentro do prazo")
}

func TestDailyReportServiceRejectsConcurrentRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	service := NewDailyReportService(runner, newTestConfig(false))

	started := make(chan struct{})
	release := make(chan struct{})

	runner.EXPECT().
		RunForDate(gomock.Any(), "2024-03-15").
		DoAndReturn(func(context.Context, string) (*domain.ClickReport, error) {
			close(started)
			<-release
			return &domain.ClickReport{Date: "2024-03-15"}, nil
		})

	err := service.TriggerManualSync(context.Background(), "2024-03-15")
	require.NoError(t, err)

	waitForSignal(t, started, "primeira execução não começou dentro do prazo")

	// Segunda solicitação enquanto a primeira ainda roda
	err = service.TriggerManualSync(context.Background(), "2024-03-16")
	assert.Error(t, err)

	close(release)
}

func TestDailyReportServiceRecordsRunError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	service := NewDailyReportService(runner, newTestConfig(false))

	done := make(chan struct{})
	runner.EXPECT().
		RunForDate(gomock.Any(), "2024-03-15").
		DoAndReturn(func(context.Context, string) (*domain.ClickReport, error) {
			defer close(done)
			return nil, assert.AnError
		})

	require.NoError(t, service.TriggerManualSync(context.Background(), "2024-03-15"))
	waitForSignal(t, done, "relatório não executou dentro do prazo")

	// Aguardar o bookkeeping da goroutine terminar
	assert.Eventually(t, func() bool {
		status := service.GetStatus()
		return status["last_run_error"] == assert.AnError.Error()
	}, 2*time.Second, 10*time.Millisecond)

	status := service.GetStatus()
	assert.Equal(t, "2024-03-15", status["last_report_date"])
}

func TestDailyReportServiceStartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	service := NewDailyReportService(runner, newTestConfig(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Desabilitado: não agenda nada e não dispara o runner
	assert.NoError(t, service.Start(ctx))
}

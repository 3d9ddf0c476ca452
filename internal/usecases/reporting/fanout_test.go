package reporting_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ndixit/domain-clicks-report/internal/domain"
	"github.com/ndixit/domain-clicks-report/internal/usecases/reporting"
	"github.com/ndixit/domain-clicks-report/internal/usecases/reporting/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newFakeDB(t *testing.T) *sql.DB {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	return db
}

func TestFanOutExecutorRun(t *testing.T) {
	ctx := context.Background()

	window, err := reporting.NewDateWindow("2024-03-15")
	require.NoError(t, err)

	acme := domain.DomainConfig{Name: "https://jobs.acme.com", Database: "acme_analytics", Type: "programmatic"}
	cobalt := domain.DomainConfig{Name: "https://talent.cobalt.net", Database: "cobalt_analytics", Type: "organic"}

	acmeRecords := []domain.ViewRecord{
		{Date: window.Date, Domain: acme.Name, DomainType: acme.Type, Company: "Acme", EndURLDomain: "jobs.acme.com", ViewCount: 10, UniqueIPCount: 4},
	}
	cobaltRecords := []domain.ViewRecord{
		{Date: window.Date, Domain: cobalt.Name, DomainType: cobalt.Type, Company: "Cobalt", EndURLDomain: "talent.cobalt.net", ViewCount: 2, UniqueIPCount: 1},
	}

	tests := []struct {
		name     string
		configs  []domain.DomainConfig
		setup    func(connector *mocks.MockStoreConnector, fetcher *mocks.MockViewFetcher)
		validate func(t *testing.T, records []domain.ViewRecord)
	}{
		{
			name:    "Todos os domínios respondem e os registros são concatenados",
			configs: []domain.DomainConfig{acme, cobalt},
			setup: func(connector *mocks.MockStoreConnector, fetcher *mocks.MockViewFetcher) {
				connector.EXPECT().Connect(gomock.Any(), "acme_analytics").Return(newFakeDB(t), nil)
				connector.EXPECT().Connect(gomock.Any(), "cobalt_analytics").Return(newFakeDB(t), nil)
				fetcher.EXPECT().FetchViews(gomock.Any(), gomock.Any(), acme, window).Return(acmeRecords, nil)
				fetcher.EXPECT().FetchViews(gomock.Any(), gomock.Any(), cobalt, window).Return(cobaltRecords, nil)
			},
			validate: func(t *testing.T, records []domain.ViewRecord) {
				assert.ElementsMatch(t, append(append([]domain.ViewRecord{}, acmeRecords...), cobaltRecords...), records)
			},
		},
		{
			name:    "Falha de conexão de um domínio não afeta os demais",
			configs: []domain.DomainConfig{acme, cobalt},
			setup: func(connector *mocks.MockStoreConnector, fetcher *mocks.MockViewFetcher) {
				connector.EXPECT().Connect(gomock.Any(), "acme_analytics").Return(newFakeDB(t), nil)
				connector.EXPECT().Connect(gomock.Any(), "cobalt_analytics").
					Return(nil, &reporting.StoreUnavailableError{Store: "cobalt_analytics"})
				fetcher.EXPECT().FetchViews(gomock.Any(), gomock.Any(), acme, window).Return(acmeRecords, nil)
			},
			validate: func(t *testing.T, records []domain.ViewRecord) {
				assert.ElementsMatch(t, acmeRecords, records)
			},
		},
		{
			name:    "Falha da consulta contribui com zero registros",
			configs: []domain.DomainConfig{acme},
			setup: func(connector *mocks.MockStoreConnector, fetcher *mocks.MockViewFetcher) {
				connector.EXPECT().Connect(gomock.Any(), "acme_analytics").Return(newFakeDB(t), nil)
				fetcher.EXPECT().FetchViews(gomock.Any(), gomock.Any(), acme, window).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, records []domain.ViewRecord) {
				assert.Empty(t, records)
			},
		},
		{
			name: "Domínio sem banco configurado é pulado sem agendar tarefa",
			configs: []domain.DomainConfig{
				{Name: "https://incompleto.example.com"},
				acme,
			},
			setup: func(connector *mocks.MockStoreConnector, fetcher *mocks.MockViewFetcher) {
				connector.EXPECT().Connect(gomock.Any(), "acme_analytics").Return(newFakeDB(t), nil)
				fetcher.EXPECT().FetchViews(gomock.Any(), gomock.Any(), acme, window).Return(acmeRecords, nil)
			},
			validate: func(t *testing.T, records []domain.ViewRecord) {
				assert.ElementsMatch(t, acmeRecords, records)
			},
		},
		{
			name:    "Nenhum domínio elegível resulta em lista vazia",
			configs: []domain.DomainConfig{{Name: "https://incompleto.example.com"}},
			setup:   func(connector *mocks.MockStoreConnector, fetcher *mocks.MockViewFetcher) {},
			validate: func(t *testing.T, records []domain.ViewRecord) {
				assert.Empty(t, records)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			connector := mocks.NewMockStoreConnector(ctrl)
			fetcher := mocks.NewMockViewFetcher(ctrl)
			tt.setup(connector, fetcher)

			executor := reporting.NewFanOutExecutor(connector, fetcher, 8)
			records := executor.Run(ctx, tt.configs, window)

			tt.validate(t, records)
		})
	}
}

func TestFanOutExecutorRespectsPoolWidth(t *testing.T) {
	ctx := context.Background()

	window, err := reporting.NewDateWindow("2024-03-15")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	configs := make([]domain.DomainConfig, 0, 20)
	for i := 0; i < 20; i++ {
		configs = append(configs, domain.DomainConfig{
			Name:     "https://jobs.example.com",
			Database: "example_analytics",
		})
	}

	var mu sync.Mutex
	inFlight := 0
	maxInFlight := 0

	connector := mocks.NewMockStoreConnector(ctrl)
	fetcher := mocks.NewMockViewFetcher(ctrl)

	connector.EXPECT().Connect(gomock.Any(), "example_analytics").
		DoAndReturn(func(context.Context, string) (*sql.DB, error) {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()

			return newFakeDB(t), nil
		}).
		Times(20)
	fetcher.EXPECT().FetchViews(gomock.Any(), gomock.Any(), gomock.Any(), window).
		Return(nil, nil).
		Times(20)

	executor := reporting.NewFanOutExecutor(connector, fetcher, 4)
	executor.Run(ctx, configs, window)

	assert.LessOrEqual(t, maxInFlight, 4)
}

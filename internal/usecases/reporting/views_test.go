package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ndixit/domain-clicks-report/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyticsColumns() []string {
	return []string{"created_dt", "company", "company_name", "url", "ip_address"}
}

func TestViewFetcherFetchViews(t *testing.T) {
	ctx := context.Background()

	window, err := NewDateWindow("2024-03-15")
	require.NoError(t, err)

	cfg := domain.DomainConfig{
		Name:     "https://jobs.acme.com",
		Database: "acme_analytics",
		Type:     "programmatic",
	}

	dt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, records []domain.ViewRecord)
	}{
		{
			name: "Eventos agrupados por empresa, domínio de destino e dia",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(analyticsColumns()).
					AddRow(dt, "Acme", "", "https://jobs.acme.com/apply?x=1", "10.0.0.1").
					AddRow(dt, "Acme", "", "https://jobs.acme.com/apply?x=2", "10.0.0.2").
					AddRow(dt, "Acme", "", "https://jobs.acme.com/apply?x=3", "10.0.0.1").
					AddRow(dt, "Beta", "", "https://careers.beta.io/jobs", "10.0.0.9")
				mock.ExpectQuery("SELECT aa.created_dt, aa.company, aa.company_name, aa.url, aa.ip_address FROM user_analytics aa").
					WillReturnRows(rows)
			},
			validate: func(t *testing.T, records []domain.ViewRecord) {
				assert.ElementsMatch(t, []domain.ViewRecord{
					{Date: "2024-03-15", Domain: cfg.Name, DomainType: cfg.Type, Company: "Acme", EndURLDomain: "jobs.acme.com", ViewCount: 3, UniqueIPCount: 2},
					{Date: "2024-03-15", Domain: cfg.Name, DomainType: cfg.Type, Company: "Beta", EndURLDomain: "careers.beta.io", ViewCount: 1, UniqueIPCount: 1},
				}, records)
			},
		},
		{
			name: "Empresa vazia cai para company_name, senão Unknown",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(analyticsColumns()).
					AddRow(dt, "", "Acme Corporation", "https://jobs.acme.com/a", "10.0.0.1").
					AddRow(dt, "", "", "https://jobs.acme.com/a", "10.0.0.2")
				mock.ExpectQuery("FROM user_analytics aa").WillReturnRows(rows)
			},
			validate: func(t *testing.T, records []domain.ViewRecord) {
				companies := make([]string, 0, len(records))
				for _, record := range records {
					companies = append(companies, record.Company)
				}
				assert.ElementsMatch(t, []string{"Acme Corporation", domain.UnknownCompany}, companies)
			},
		},
		{
			name: "URL malformada agrupa com domínio de destino vazio",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(analyticsColumns()).
					AddRow(dt, "Acme", "", "not-a-url", "10.0.0.1")
				mock.ExpectQuery("FROM user_analytics aa").WillReturnRows(rows)
			},
			validate: func(t *testing.T, records []domain.ViewRecord) {
				require.Len(t, records, 1)
				assert.Equal(t, "", records[0].EndURLDomain)
				assert.Equal(t, 1, records[0].ViewCount)
			},
		},
		{
			name: "Zero eventos é um resultado válido",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM user_analytics aa").
					WillReturnRows(sqlmock.NewRows(analyticsColumns()))
			},
			validate: func(t *testing.T, records []domain.ViewRecord) {
				assert.Empty(t, records)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			fetcher := NewViewFetcher()
			records, err := fetcher.FetchViews(ctx, db, cfg, window)

			assert.NoError(t, err)
			tt.validate(t, records)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestViewFetcherScopesByEmployer(t *testing.T) {
	ctx := context.Background()

	window, err := NewDateWindow("2024-03-15")
	require.NoError(t, err)

	cfg := domain.DomainConfig{
		Name:       "https://apply.borealis.io",
		Database:   "borealis_analytics",
		Type:       "direct apply",
		EmployerID: "1042",
	}

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("employer_id = \\$").
		WillReturnRows(sqlmock.NewRows(analyticsColumns()))

	fetcher := NewViewFetcher()
	_, err = fetcher.FetchViews(ctx, db, cfg, window)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewFetcherQueryError(t *testing.T) {
	ctx := context.Background()

	window, err := NewDateWindow("2024-03-15")
	require.NoError(t, err)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM user_analytics aa").WillReturnError(assert.AnError)

	fetcher := NewViewFetcher()
	records, err := fetcher.FetchViews(ctx, db, domain.DomainConfig{Name: "https://jobs.acme.com", Database: "acme_analytics"}, window)

	assert.Error(t, err)
	assert.Nil(t, records)
}

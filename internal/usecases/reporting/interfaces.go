package reporting

import (
	"context"
	"database/sql"

	"github.com/ndixit/domain-clicks-report/internal/domain"
)

// StoreConnector resolve o identificador de um banco de analytics para uma
// conexão viva e verificada
type StoreConnector interface {
	// Connect abre a conexão com o banco e valida com ping. Falhas de
	// cadastro, conexão ou autenticação retornam *StoreUnavailableError.
	Connect(ctx context.Context, storeName string) (*sql.DB, error)
}

// ViewFetcher executa a consulta de analytics de um domínio e devolve os
// registros normalizados de views
type ViewFetcher interface {
	FetchViews(ctx context.Context, db *sql.DB, cfg domain.DomainConfig, window DateWindow) ([]domain.ViewRecord, error)
}

// Executor consulta todos os domínios configurados e devolve a lista plana
// de registros das consultas que deram certo
type Executor interface {
	Run(ctx context.Context, configs []domain.DomainConfig, window DateWindow) []domain.ViewRecord
}

// Mailer entrega o relatório renderizado para um destinatário
type Mailer interface {
	Send(to domain.Recipient, subject, htmlBody string) error
}

// Runner executa o relatório completo de uma data
type Runner interface {
	RunForDate(ctx context.Context, date string) (*domain.ClickReport, error)
}

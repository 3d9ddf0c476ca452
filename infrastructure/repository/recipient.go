package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ndixit/domain-clicks-report/infrastructure/database/postgres"
	"github.com/ndixit/domain-clicks-report/internal/domain"
)

const (
	reportRecipientsTable = "report_recipients rr"
)

type RecipientRepository interface {
	ListRecipients() ([]domain.Recipient, error)
}

type recipientRepository struct {
	conn *postgres.Connection
}

func NewRecipientRepository(conn *postgres.Connection) RecipientRepository {
	return &recipientRepository{
		conn: conn,
	}
}

func (r *recipientRepository) ListRecipients() ([]domain.Recipient, error) {
	query, args, err := squirrel.
		Select("rr.name, rr.email").
		From(reportRecipientsTable).
		OrderBy("rr.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	recipients := make([]domain.Recipient, 0)
	for rows.Next() {
		var recipient domain.Recipient
		if err := rows.Scan(&recipient.Name, &recipient.Email); err != nil {
			return nil, fmt.Errorf("erro ao escanear destinatário: %w", err)
		}
		recipients = append(recipients, recipient)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return recipients, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/ndixit/domain-clicks-report/infrastructure/database/postgres"
	"github.com/ndixit/domain-clicks-report/internal/domain"
	"github.com/ndixit/domain-clicks-report/pkg/utils"
)

const (
	dailyViewStatsTable = "daily_view_stats dvs"
)

// ViewStatsRepository persiste as estatísticas normalizadas de uma execução
// do relatório. A semântica é de substituição por data: reexecutar o
// relatório para a mesma data nunca duplica registros.
type ViewStatsRepository interface {
	ReplaceByDate(ctx context.Context, date string, records []domain.ViewRecord) error
	GetByDate(date string) ([]domain.StoredViewRecord, error)
}

type viewStatsRepository struct {
	conn *postgres.Connection
}

func NewViewStatsRepository(conn *postgres.Connection) ViewStatsRepository {
	return &viewStatsRepository{
		conn: conn,
	}
}

// ReplaceByDate apaga as estatísticas já persistidas para a data e insere as
// da execução atual, tudo na mesma transação. Lista vazia apenas limpa a
// data, não é um erro.
func (r *viewStatsRepository) ReplaceByDate(ctx context.Context, date string, records []domain.ViewRecord) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete("daily_view_stats").
			Where(squirrel.Eq{"date": date}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query de limpeza: %w", err)
		}

		if _, err := tx.Exec(deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao limpar estatísticas da data %s: %w", date, err)
		}

		if len(records) == 0 {
			return nil
		}

		insertedAt := time.Now().UTC()

		builder := squirrel.StatementBuilder.
			Insert("daily_view_stats").
			Columns("id", "date", "domain", "domain_type", "company", "end_url_domain", "views_count", "unique_ip_count", "inserted_at").
			PlaceholderFormat(squirrel.Dollar)

		for _, record := range records {
			id, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar id da estatística: %w", err)
			}

			builder = builder.Values(
				id,
				record.Date,
				record.Domain,
				string(record.DomainType),
				record.Company,
				record.EndURLDomain,
				record.ViewCount,
				record.UniqueIPCount,
				insertedAt,
			)
		}

		insertSQL, insertArgs, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query de inserção: %w", err)
		}

		if _, err := tx.Exec(insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir estatísticas da data %s: %w", date, err)
		}

		return nil
	})
}

// GetByDate retorna as estatísticas persistidas de uma data, para auditoria
func (r *viewStatsRepository) GetByDate(date string) ([]domain.StoredViewRecord, error) {
	query, args, err := squirrel.
		Select("dvs.id, dvs.date, dvs.domain, dvs.domain_type, dvs.company, dvs.end_url_domain, dvs.views_count, dvs.unique_ip_count, dvs.inserted_at").
		From(dailyViewStatsTable).
		Where(squirrel.Eq{"dvs.date": date}).
		OrderBy("dvs.domain ASC, dvs.views_count DESC").
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

	records := make([]domain.StoredViewRecord, 0)
	for rows.Next() {
		var record domain.StoredViewRecord
		var domainType string

		if err := rows.Scan(
			&record.ID,
			&record.Date,
			&record.Domain,
			&domainType,
			&record.Company,
			&record.EndURLDomain,
			&record.ViewCount,
			&record.UniqueIPCount,
			&record.InsertedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear estatística: %w", err)
		}

		record.DomainType = domain.DomainType(domainType)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

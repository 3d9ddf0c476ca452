package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/ndixit/domain-clicks-report/infrastructure/database/postgres"
	"github.com/ndixit/domain-clicks-report/internal/domain"
)

const (
	reportDomainsTable = "report_domains rd"
)

type DomainConfigRepository interface {
	ListDomains() ([]domain.DomainConfig, error)
}

type domainConfigRepository struct {
	conn *postgres.Connection
}

func NewDomainConfigRepository(conn *postgres.Connection) DomainConfigRepository {
	return &domainConfigRepository{
		conn: conn,
	}
}

// ListDomains retorna o cadastro de domínios na ordem de cadastro.
// Campos ausentes viram string vazia e todos os campos são aparados,
// espelhando a normalização feita na planilha original.
func (r *domainConfigRepository) ListDomains() ([]domain.DomainConfig, error) {
	query, args, err := squirrel.
		Select("rd.domain, rd.database, rd.domain_type, rd.employer_id, rd.collection").
		From(reportDomainsTable).
		OrderBy("rd.id ASC").
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

	configs := make([]domain.DomainConfig, 0)
	for rows.Next() {
		cfg, err := r.scanDomainConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cadastro de domínio: %w", err)
		}
		configs = append(configs, cfg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return configs, nil
}

func (r *domainConfigRepository) scanDomainConfig(rows *sql.Rows) (domain.DomainConfig, error) {
	var name, database, domainType, employerID, collection sql.NullString

	if err := rows.Scan(
		&name,
		&database,
		&domainType,
		&employerID,
		&collection,
	); err != nil {
		return domain.DomainConfig{}, err
	}

	return domain.DomainConfig{
		Name:       strings.TrimSpace(name.String),
		Database:   strings.TrimSpace(database.String),
		Type:       domain.NormalizeDomainType(domainType.String),
		EmployerID: strings.TrimSpace(employerID.String),
		Collection: strings.TrimSpace(collection.String),
	}, nil
}

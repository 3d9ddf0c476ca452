package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ndixit/domain-clicks-report/infrastructure/database/postgres"
	"github.com/ndixit/domain-clicks-report/internal/domain"
)

const (
	analyticsStoresTable = "analytics_stores ast"
)

// StoreRegistryRepository resolve o identificador de um banco de analytics
// para as credenciais de conexão cadastradas no banco central
type StoreRegistryRepository interface {
	GetByName(name string) (*domain.StoreDescriptor, error)
}

type storeRegistryRepository struct {
	conn *postgres.Connection
}

func NewStoreRegistryRepository(conn *postgres.Connection) StoreRegistryRepository {
	return &storeRegistryRepository{
		conn: conn,
	}
}

// GetByName retorna as credenciais do banco pelo identificador.
// Retorna nil sem erro quando o identificador não está cadastrado.
func (r *storeRegistryRepository) GetByName(name string) (*domain.StoreDescriptor, error) {
	query, args, err := squirrel.
		Select("ast.name, ast.dsn").
		From(analyticsStoresTable).
		Where(squirrel.Eq{"ast.name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	descriptor := &domain.StoreDescriptor{}
	if err := row.Scan(&descriptor.Name, &descriptor.DSN); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear credenciais do banco: %w", err)
	}

	return descriptor, nil
}

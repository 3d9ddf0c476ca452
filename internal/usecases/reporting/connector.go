package reporting

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/ndixit/domain-clicks-report/infrastructure/repository"
)

// StoreUnavailableError indica que o banco de analytics de um domínio não
// pôde ser usado nesta execução: identificador não cadastrado, conexão
// recusada, timeout ou falha de autenticação
type StoreUnavailableError struct {
	Store string
	Err   error
}

func (e *StoreUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("banco de analytics %q indisponível", e.Store)
	}
	return fmt.Sprintf("banco de analytics %q indisponível: %v", e.Store, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

type storeConnector struct {
	registry       repository.StoreRegistryRepository
	connectTimeout time.Duration
}

func NewStoreConnector(registry repository.StoreRegistryRepository, connectTimeout time.Duration) StoreConnector {
	return &storeConnector{
		registry:       registry,
		connectTimeout: connectTimeout,
	}
}

// Connect resolve o identificador no registro central, abre a conexão e
// valida com ping dentro do timeout configurado. O chamador é responsável
// por fechar a conexão; conexões não são reaproveitadas entre domínios.
func (c *storeConnector) Connect(ctx context.Context, storeName string) (*sql.DB, error) {
	descriptor, err := c.registry.GetByName(storeName)
	if err != nil {
		return nil, &StoreUnavailableError{Store: storeName, Err: err}
	}

	if descriptor == nil {
		return nil, &StoreUnavailableError{Store: storeName, Err: fmt.Errorf("banco não cadastrado no registro de bancos")}
	}

	db, err := sql.Open("postgres", descriptor.DSN)
	if err != nil {
		return nil, &StoreUnavailableError{Store: storeName, Err: err}
	}

	pingCtx, cancel := context.WithTimeout(ctx, c.connectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, &StoreUnavailableError{Store: storeName, Err: err}
	}

	return db, nil
}

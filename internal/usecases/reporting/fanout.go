package reporting

import (
	"context"
	"sync"

	"github.com/ndixit/domain-clicks-report/internal/domain"
	"github.com/sirupsen/logrus"
)

// FanOutExecutor consulta os domínios configurados em paralelo, com um pool
// limitado de workers. Cada domínio é uma tarefa independente: falhas são
// registradas e o domínio contribui com zero registros, sem abortar nem
// atrasar os demais.
type FanOutExecutor struct {
	connector         StoreConnector
	fetcher           ViewFetcher
	maxConcurrentJobs int
}

func NewFanOutExecutor(connector StoreConnector, fetcher ViewFetcher, maxConcurrentJobs int) *FanOutExecutor {
	return &FanOutExecutor{
		connector:         connector,
		fetcher:           fetcher,
		maxConcurrentJobs: maxConcurrentJobs,
	}
}

type domainResult struct {
	domain  string
	records []domain.ViewRecord
	err     error
}

// Run dispara uma tarefa por domínio elegível e aguarda todas terminarem.
// O resultado é a concatenação dos sucessos, em ordem não especificada (a
// agregação do relatório reordena tudo depois).
func (e *FanOutExecutor) Run(ctx context.Context, configs []domain.DomainConfig, window DateWindow) []domain.ViewRecord {
	// Canal semáforo para limitar o número de workers concorrentes
	semaphore := make(chan struct{}, e.maxConcurrentJobs)
	results := make(chan domainResult, len(configs))
	var wg sync.WaitGroup

	scheduled := 0
	for _, cfg := range configs {
		// Domínio sem nome ou sem banco é pulado antes de agendar a
		// tarefa, não é uma falha
		if !cfg.Eligible() {
			logrus.WithFields(logrus.Fields{
				"domain":   cfg.Name,
				"database": cfg.Database,
			}).Debug("Domínio sem nome ou banco configurado. Pulando.")
			continue
		}

		scheduled++
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(cfg domain.DomainConfig) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			records, err := e.processDomain(ctx, cfg, window)
			results <- domainResult{domain: cfg.Name, records: records, err: err}
		}(cfg)
	}

	// Barreira de junção: aguardar todas as tarefas agendadas
	wg.Wait()
	close(results)

	all := make([]domain.ViewRecord, 0)
	failed := 0
	for result := range results {
		if result.err != nil {
			failed++
			logrus.WithError(result.err).WithFields(logrus.Fields{
				"domain": result.domain,
				"date":   window.Date,
			}).Error("Falha ao consultar domínio. Domínio ficará sem registros nesta execução.")
			continue
		}

		all = append(all, result.records...)
	}

	logrus.WithFields(logrus.Fields{
		"date":      window.Date,
		"scheduled": scheduled,
		"failed":    failed,
		"records":   len(all),
	}).Info("Consulta de domínios concluída")

	return all
}

func (e *FanOutExecutor) processDomain(ctx context.Context, cfg domain.DomainConfig, window DateWindow) ([]domain.ViewRecord, error) {
	db, err := e.connector.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return e.fetcher.FetchViews(ctx, db, cfg, window)
}

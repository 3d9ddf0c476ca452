package reporting

import (
	"sort"

	"github.com/ndixit/domain-clicks-report/internal/domain"
)

// domainAccumulator acumula os totais de um domínio durante a redução
type domainAccumulator struct {
	report   *domain.DomainReport
	rows     map[domain.ReportRowKey]*domain.ReportRow
	rowOrder []domain.ReportRowKey
}

// BuildClickReport reduz os registros de views da execução no relatório
// consolidado. Função pura, sem I/O: toda decisão de forma do relatório
// (ordenação, gating por classificação) acontece aqui, mantendo a
// renderização como um template burro.
//
// Todo domínio configurado com nome aparece no relatório, mesmo com zero
// registros. Os totais de IPs únicos são aditivos entre grupos, não
// deduplicados globalmente: "único" significa único dentro do grupo.
func BuildClickReport(date string, configs []domain.DomainConfig, records []domain.ViewRecord) *domain.ClickReport {
	accumulators := make(map[string]*domainAccumulator)
	order := make([]string, 0, len(configs))

	// Criar a casca de cada domínio configurado, preservando a ordem do
	// cadastro para desempates estáveis
	for _, cfg := range configs {
		if cfg.Name == "" {
			continue
		}
		if _, ok := accumulators[cfg.Name]; ok {
			continue
		}

		accumulators[cfg.Name] = &domainAccumulator{
			report: &domain.DomainReport{
				Name: cfg.Name,
				Type: cfg.Type,
			},
			rows: make(map[domain.ReportRowKey]*domain.ReportRow),
		}
		order = append(order, cfg.Name)
	}

	for _, record := range records {
		acc, ok := accumulators[record.Domain]
		if !ok {
			// Registro de um domínio fora do cadastro: ganha uma casca
			// própria depois dos configurados
			acc = &domainAccumulator{
				report: &domain.DomainReport{
					Name: record.Domain,
					Type: record.DomainType,
				},
				rows: make(map[domain.ReportRowKey]*domain.ReportRow),
			}
			accumulators[record.Domain] = acc
			order = append(order, record.Domain)
		}

		acc.report.TotalClicks += record.ViewCount
		acc.report.TotalUniqueIPs += record.UniqueIPCount

		key := domain.ReportRowKey{Company: record.Company, EndURLDomain: record.EndURLDomain}
		row, ok := acc.rows[key]
		if !ok {
			row = &domain.ReportRow{Company: key.Company, EndURLDomain: key.EndURLDomain}
			acc.rows[key] = row
			acc.rowOrder = append(acc.rowOrder, key)
		}

		row.Clicks += record.ViewCount
		row.UniqueIPs += record.UniqueIPCount
	}

	report := &domain.ClickReport{
		Date:    date,
		Domains: make([]*domain.DomainReport, 0, len(order)),
	}

	companies := make(map[string]struct{})

	for _, name := range order {
		acc := accumulators[name]

		// Linhas na ordem de chegada, depois ordenadas por cliques
		// decrescentes (ordenação estável preserva empates)
		acc.report.Rows = make([]*domain.ReportRow, 0, len(acc.rowOrder))
		for _, key := range acc.rowOrder {
			acc.report.Rows = append(acc.report.Rows, acc.rows[key])
			companies[key.Company] = struct{}{}
		}
		sort.SliceStable(acc.report.Rows, func(i, j int) bool {
			return acc.report.Rows[i].Clicks > acc.report.Rows[j].Clicks
		})

		report.Domains = append(report.Domains, acc.report)
		report.TotalClicks += acc.report.TotalClicks
		report.TotalUniqueIPs += acc.report.TotalUniqueIPs
	}

	// Domínios por cliques decrescentes; empates mantêm a ordem do cadastro
	sort.SliceStable(report.Domains, func(i, j int) bool {
		return report.Domains[i].TotalClicks > report.Domains[j].TotalClicks
	})

	report.TotalDomains = len(report.Domains)
	report.TotalCompanies = len(companies)

	return report
}

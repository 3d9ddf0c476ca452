package domain

// ReportRowKey identifica uma linha de detalhamento dentro de um domínio
type ReportRowKey struct {
	Company      string
	EndURLDomain string
}

// ReportRow representa os totais de uma (empresa, domínio de destino)
type ReportRow struct {
	Company      string `json:"company"`
	EndURLDomain string `json:"end_url_domain"`
	Clicks       int    `json:"clicks"`
	UniqueIPs    int    `json:"unique_ips"`
}

// DomainReport representa o agregado de um domínio no relatório diário.
// Rows já vem ordenado por cliques decrescentes (ordenação estável).
type DomainReport struct {
	Name           string     `json:"name"`
	Type           DomainType `json:"type"`
	TotalClicks    int        `json:"total_clicks"`
	TotalUniqueIPs int        `json:"total_unique_ips"`
	Rows           []*ReportRow
}

// DisplayName retorna o nome do domínio sem o esquema da URL
func (d *DomainReport) DisplayName() string {
	return CleanDomainName(d.Name)
}

// TableRows retorna as linhas exibidas na tabela de detalhamento do domínio.
// Somente domínios com classificação elegível exibem tabela, e linhas sem
// domínio de destino ficam fora dela (mas continuam contadas nos totais).
func (d *DomainReport) TableRows() []*ReportRow {
	if !d.Type.IsTableEligible() {
		return nil
	}

	rows := make([]*ReportRow, 0, len(d.Rows))
	for _, row := range d.Rows {
		if row.EndURLDomain == "" {
			continue
		}
		rows = append(rows, row)
	}

	return rows
}

// ClickReport representa o relatório consolidado de uma execução: um agregado
// por domínio mais os totais derivados. Construído do zero a cada execução e
// consumido imediatamente pela renderização, nunca persistido.
type ClickReport struct {
	Date           string          `json:"date"` // YYYY-MM-DD
	Domains        []*DomainReport `json:"domains"`
	TotalDomains   int             `json:"total_domains"`
	TotalCompanies int             `json:"total_companies"`
	TotalClicks    int             `json:"total_clicks"`
	TotalUniqueIPs int             `json:"total_unique_ips"`
}

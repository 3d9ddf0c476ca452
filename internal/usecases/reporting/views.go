package reporting

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/ndixit/domain-clicks-report/internal/domain"
)

const (
	userAnalyticsTable = "user_analytics"
)

type viewFetcher struct{}

func NewViewFetcher() ViewFetcher {
	return &viewFetcher{}
}

// viewGroupKey agrupa os eventos por (empresa, domínio de destino, dia)
type viewGroupKey struct {
	Company      string
	EndURLDomain string
	Date         string
}

type viewGroup struct {
	count int
	ips   map[string]struct{}
}

// FetchViews consulta os eventos de analytics do domínio na janela alvo e os
// normaliza em ViewRecords. O filtro fica no banco; o agrupamento e o
// defaulting acontecem aqui, na construção do registro.
//
// Filtro: sem bots, sem device/browser desconhecidos, somente tráfego vindo
// do Google, janela [Min, Max) sobre created_dt e, quando o domínio tem
// employer_id configurado, somente o escopo daquele employer.
func (f *viewFetcher) FetchViews(ctx context.Context, db *sql.DB, cfg domain.DomainConfig, window DateWindow) ([]domain.ViewRecord, error) {
	builder := squirrel.
		Select("aa.created_dt, aa.company, aa.company_name, aa.url, aa.ip_address").
		From(userAnalyticsTable + " aa").
		Where(squirrel.Eq{"aa.is_bot": false, "aa.is_from_google": true}).
		Where(squirrel.NotEq{"aa.browser_type": "Unknown"}).
		Where(squirrel.NotEq{"aa.device_type": "Unknown"}).
		Where(squirrel.GtOrEq{"aa.created_dt": window.Min}).
		Where(squirrel.Lt{"aa.created_dt": window.Max}).
		PlaceholderFormat(squirrel.Dollar)

	if cfg.EmployerID != "" {
		builder = builder.Where(squirrel.Eq{"aa.employer_id": cfg.EmployerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de analytics: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar analytics do domínio %s: %w", cfg.Name, err)
	}
	defer rows.Close()

	groups := make(map[viewGroupKey]*viewGroup)

	for rows.Next() {
		var createdDt time.Time
		var company, companyName, url, ipAddress sql.NullString

		if err := rows.Scan(&createdDt, &company, &companyName, &url, &ipAddress); err != nil {
			return nil, fmt.Errorf("erro ao escanear evento de analytics: %w", err)
		}

		key := viewGroupKey{
			Company:      domain.NormalizeCompany(company.String, companyName.String),
			EndURLDomain: domain.EndURLDomain(url.String),
			Date:         createdDt.UTC().Format(time.DateOnly),
		}

		group, ok := groups[key]
		if !ok {
			group = &viewGroup{ips: make(map[string]struct{})}
			groups[key] = group
		}

		group.count++
		group.ips[ipAddress.String] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de eventos: %w", err)
	}

	// Zero eventos é um resultado válido, não um erro
	records := make([]domain.ViewRecord, 0, len(groups))
	for key, group := range groups {
		records = append(records, domain.ViewRecord{
			Date:          key.Date,
			Domain:        cfg.Name,
			DomainType:    cfg.Type,
			Company:       key.Company,
			EndURLDomain:  key.EndURLDomain,
			ViewCount:     group.count,
			UniqueIPCount: len(group.ips),
		})
	}

	return records, nil
}

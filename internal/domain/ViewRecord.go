package domain

import (
	"strings"
	"time"
)

// UnknownCompany é o valor padrão quando o evento não possui nome de empresa
const UnknownCompany = "Unknown"

// ViewRecord representa a contagem normalizada de visualizações de um domínio
// para uma tripla (data, empresa, domínio de destino). Produzido pela
// agregação de views e persistido verbatim na tabela de estatísticas diárias.
type ViewRecord struct {
	Date          string     `json:"date"` // YYYY-MM-DD
	Domain        string     `json:"domain"`
	DomainType    DomainType `json:"domain_type"`
	Company       string     `json:"company"`
	EndURLDomain  string     `json:"end_url_domain"`
	ViewCount     int        `json:"views_count"`
	UniqueIPCount int        `json:"unique_ip_count"`
}

// StoredViewRecord representa um ViewRecord persistido, com o carimbo de
// inserção adicionado pelo repositório
type StoredViewRecord struct {
	ID string `json:"id"`
	ViewRecord
	InsertedAt time.Time `json:"inserted_at"`
}

// NormalizeCompany aplica o padrão de empresa na construção do registro:
// primeiro valor não vazio entre company e companyName, senão "Unknown"
func NormalizeCompany(company, companyName string) string {
	if c := strings.TrimSpace(company); c != "" {
		return c
	}
	if c := strings.TrimSpace(companyName); c != "" {
		return c
	}
	return UnknownCompany
}

// EndURLDomain extrai o host de uma URL gravada: o terceiro segmento
// delimitado por "/" (scheme://host/...). URL ausente ou malformada resulta
// em string vazia, nunca em erro.
func EndURLDomain(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

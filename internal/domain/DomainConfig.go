package domain

import (
	"strings"
)

// DomainType representa a classificação de um domínio configurado.
// O valor é sempre normalizado (minúsculas, sem espaços nas bordas) na ingestão.
type DomainType string

// Tipos de domínio que exibem a tabela de detalhamento por empresa no relatório
var tableEligibleTypes = map[DomainType]struct{}{
	"programmatic": {},
	"direct apply": {},
	"direct_apply": {},
	"direct-apply": {},
}

// NormalizeDomainType normaliza a classificação vinda do cadastro de domínios.
// As variações "direct apply", "direct_apply" e "direct-apply" significam a mesma coisa.
func NormalizeDomainType(raw string) DomainType {
	return DomainType(strings.ToLower(strings.TrimSpace(raw)))
}

// IsTableEligible indica se o relatório do domínio inclui a tabela de
// detalhamento por (empresa, domínio de destino)
func (t DomainType) IsTableEligible() bool {
	_, ok := tableEligibleTypes[t]
	return ok
}

// DomainConfig representa um domínio configurado no cadastro de domínios.
// Imutável durante a execução do relatório.
type DomainConfig struct {
	Name       string     `json:"name"`
	Database   string     `json:"database"`
	Type       DomainType `json:"type"`
	EmployerID string     `json:"employer_id"`
	Collection string     `json:"collection"` // Reservado, não utilizado pelo relatório
}

// Eligible indica se o domínio possui os campos mínimos para ser consultado.
// Domínios sem nome ou sem banco são pulados, não é um erro.
func (d DomainConfig) Eligible() bool {
	return d.Name != "" && d.Database != ""
}

// DisplayName retorna o nome do domínio sem o esquema da URL, para exibição
func (d DomainConfig) DisplayName() string {
	return CleanDomainName(d.Name)
}

// CleanDomainName remove o esquema (http/https) de um nome de domínio
func CleanDomainName(name string) string {
	name = strings.ReplaceAll(name, "https://", "")
	name = strings.ReplaceAll(name, "http://", "")
	return strings.TrimSpace(name)
}

// StoreDescriptor representa as credenciais de conexão de um banco de
// analytics cadastrado no registro central de bancos
type StoreDescriptor struct {
	Name string `json:"name"`
	DSN  string `json:"-"`
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDomainType(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected DomainType
	}{
		{
			name:     "Minúsculas preservadas",
			raw:      "programmatic",
			expected: "programmatic",
		},
		{
			name:     "Maiúsculas normalizadas",
			raw:      "Programmatic",
			expected: "programmatic",
		},
		{
			name:     "Espaços nas bordas removidos",
			raw:      "  Direct Apply  ",
			expected: "direct apply",
		},
		{
			name:     "Vazio continua vazio",
			raw:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDomainType(tt.raw))
		})
	}
}

func TestDomainTypeIsTableEligible(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected bool
	}{
		{"Programmatic exibe a tabela", "programmatic", true},
		{"Direct apply com espaço exibe a tabela", "direct apply", true},
		{"Direct apply com underscore exibe a tabela", "Direct_Apply", true},
		{"Direct apply com hífen exibe a tabela", "direct-apply", true},
		{"Organic não exibe a tabela", "organic", false},
		{"Tipo vazio não exibe a tabela", "", false},
		{"Tipo desconhecido não exibe a tabela", "banner", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDomainType(tt.raw).IsTableEligible())
		})
	}
}

func TestDomainConfigEligible(t *testing.T) {
	tests := []struct {
		name     string
		config   DomainConfig
		expected bool
	}{
		{
			name:     "Nome e banco preenchidos",
			config:   DomainConfig{Name: "https://jobs.acme.com", Database: "acme_analytics"},
			expected: true,
		},
		{
			name:     "Sem nome é pulado",
			config:   DomainConfig{Database: "acme_analytics"},
			expected: false,
		},
		{
			name:     "Sem banco é pulado",
			config:   DomainConfig{Name: "https://jobs.acme.com"},
			expected: false,
		},
		{
			name:     "Vazio é pulado",
			config:   DomainConfig{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.Eligible())
		})
	}
}

func TestCleanDomainName(t *testing.T) {
	assert.Equal(t, "jobs.acme.com", CleanDomainName("https://jobs.acme.com"))
	assert.Equal(t, "jobs.acme.com", CleanDomainName("http://jobs.acme.com"))
	assert.Equal(t, "jobs.acme.com", CleanDomainName("jobs.acme.com"))
}

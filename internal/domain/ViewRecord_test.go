package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndURLDomain(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "URL completa com caminho e query string",
			url:      "https://jobs.acme.com/apply?x=1",
			expected: "jobs.acme.com",
		},
		{
			name:     "URL apenas com esquema e host",
			url:      "https://jobs.acme.com",
			expected: "jobs.acme.com",
		},
		{
			name:     "URL com http",
			url:      "http://talent.example.org/vagas",
			expected: "talent.example.org",
		},
		{
			name:     "String sem formato de URL resulta em vazio",
			url:      "not-a-url",
			expected: "",
		},
		{
			name:     "URL vazia resulta em vazio",
			url:      "",
			expected: "",
		},
		{
			name:     "URL relativa sem host resulta em vazio",
			url:      "/apply/123",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EndURLDomain(tt.url))
		})
	}
}

func TestNormalizeCompany(t *testing.T) {
	tests := []struct {
		name        string
		company     string
		companyName string
		expected    string
	}{
		{
			name:        "Company preenchido tem prioridade",
			company:     "Acme Corp",
			companyName: "Acme Corporation",
			expected:    "Acme Corp",
		},
		{
			name:        "Company vazio cai para companyName",
			company:     "",
			companyName: "Acme Corporation",
			expected:    "Acme Corporation",
		},
		{
			name:        "Company com apenas espaços cai para companyName",
			company:     "   ",
			companyName: "Acme Corporation",
			expected:    "Acme Corporation",
		},
		{
			name:        "Ambos vazios viram Unknown",
			company:     "",
			companyName: "",
			expected:    UnknownCompany,
		},
		{
			name:        "Ambos com apenas espaços viram Unknown",
			company:     " ",
			companyName: "\t",
			expected:    UnknownCompany,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCompany(tt.company, tt.companyName))
		})
	}
}

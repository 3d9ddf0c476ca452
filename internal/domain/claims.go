package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin é o papel exigido para disparar e inspecionar execuções do relatório
const RoleAdmin = "admin"

// Claims representa as claims do token de acesso da API de operação
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

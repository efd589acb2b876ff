package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// User é o usuário retornado pelo endpoint de autenticação
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Authenticated bool   `json:"authenticated"`
	Token         string `json:"token,omitempty"`
}

// Credentials é o corpo aceito pelo endpoint de autenticação
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Claims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

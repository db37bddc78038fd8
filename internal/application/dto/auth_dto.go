package dto

import "time"

// LoginRequest credenciais do operador.
type LoginRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

// RegisterRequest cadastro de operador (rota de admin).
type RegisterRequest struct {
	Nome  string `json:"nome"`
	Login string `json:"login"`
	Senha string `json:"senha"`
	Role  string `json:"role"` // default: operador
}

// UserResponse operador sem o hash de senha.
type UserResponse struct {
	ID       string    `json:"id"`
	Nome     string    `json:"nome"`
	Login    string    `json:"login"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
	CriadoEm time.Time `json:"criadoEm"`
}

// LoginResponse token + operador autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

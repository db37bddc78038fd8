package entity

import "time"

// Papéis de acesso dos operadores.
const (
	RoleAdmin    = "admin"    // edita grupos, exclui movimentações, cadastra usuários
	RoleOperador = "operador" // lança contagens e movimentações
)

// Usuario é um operador do chão de produção.
type Usuario struct {
	ID        string
	Nome      string
	Login     string
	SenhaHash string // bcrypt
	Role      string
	Status    string // active | disabled
	CriadoEm  time.Time
}

package repository

import (
	"context"

	"github.com/ravanini/estoque-api/internal/domain/entity"
)

// UsuarioRepository define o porto de persistência de operadores.
type UsuarioRepository interface {
	Criar(ctx context.Context, usuario *entity.Usuario) error
	// BuscarPorLogin retorna nil (sem erro) quando o login não existe.
	BuscarPorLogin(ctx context.Context, login string) (*entity.Usuario, error)
}

package repository

import (
	"context"

	"github.com/ravanini/estoque-api/internal/domain/entity"
)

// ContagemRepository define o porto do log de contagens físicas.
// O log é append-only: não há atualização nem exclusão.
type ContagemRepository interface {
	Acrescentar(ctx context.Context, registro *entity.RegistroContagem) error
	Listar(ctx context.Context) ([]entity.RegistroContagem, error)
}

package repository

import (
	"context"

	"github.com/ravanini/estoque-api/internal/domain/entity"
)

// MovimentacaoRepository define o porto do razão de saídas.
//
// As linhas são endereçadas pelo ID durável (UUID) da movimentação, nunca
// pela posição física: uma exclusão desloca todas as linhas seguintes, então
// a posição só é resolvida dentro da implementação, imediatamente antes de
// cada chamada mutante ao armazenamento.
type MovimentacaoRepository interface {
	Acrescentar(ctx context.Context, mov *entity.Movimentacao) error
	// BuscarPorID retorna nil (sem erro) quando o ID não existe mais.
	BuscarPorID(ctx context.Context, id string) (*entity.Movimentacao, error)
	// AtualizarMeta reescreve apenas meta e observação; realizado e o
	// snapshot de estoque ficam intocados.
	AtualizarMeta(ctx context.Context, id string, meta entity.Quantidade, observacao string) error
	// Excluir remove a linha fisicamente (estrutural). O crédito de estoque
	// correspondente é responsabilidade do serviço de movimentação, ANTES
	// desta chamada.
	Excluir(ctx context.Context, id string) error
	ListarPorData(ctx context.Context, data string) ([]entity.Movimentacao, error)
	Listar(ctx context.Context) ([]entity.Movimentacao, error)
}

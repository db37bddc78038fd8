package repository

import (
	"context"

	"github.com/ravanini/estoque-api/internal/domain/entity"
)

// EstoqueRepository define o porto de persistência do snapshot de estoque.
// Existe no máximo uma linha por (grupo, produto); Salvar sobrescreve a linha
// existente ou cria uma nova — nunca acrescenta duplicata.
type EstoqueRepository interface {
	// Buscar retorna nil (sem erro) quando o par não tem snapshot.
	Buscar(ctx context.Context, grupo, produto string) (*entity.EstoqueAtual, error)
	ListarPorGrupo(ctx context.Context, grupo string) ([]entity.EstoqueAtual, error)
	// ListarTodos ignora linhas malformadas (sem grupo ou produto) em vez de
	// falhar a leitura inteira; é usada pelos relatórios.
	ListarTodos(ctx context.Context) ([]entity.EstoqueAtual, error)
	Salvar(ctx context.Context, estoque *entity.EstoqueAtual) error
}

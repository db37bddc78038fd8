package estoque

import (
	"context"
	"sync"

	"github.com/ravanini/estoque-api/internal/domain/repository"
	"github.com/ravanini/estoque-api/pkg/texto"
)

// GrupoResolver traduz a identidade de um cliente para a chave canônica do
// grupo de estoque. Vários clientes podem dividir o mesmo balde físico
// ("Cliente A - Loja 1" e "Cliente A - Loja 2" → "cliente a").
//
// A tabela é carregada da aba grupos_estoque na construção e pode ser
// recarregada em runtime; não há estado global implícito.
type GrupoResolver struct {
	repo repository.GrupoRepository

	mu   sync.RWMutex
	mapa map[string]string // chave normalizada do cliente → grupo
}

// NovoGrupoResolver constrói o resolver com a tabela vazia; chamar
// Recarregar antes de servir requisições.
func NovoGrupoResolver(repo repository.GrupoRepository) *GrupoResolver {
	return &GrupoResolver{repo: repo, mapa: map[string]string{}}
}

// Recarregar relê a tabela de apelidos do armazenamento. Em caso de erro a
// tabela anterior permanece em uso.
func (r *GrupoResolver) Recarregar(ctx context.Context) error {
	mapa, err := r.repo.CarregarMapeamentos(ctx)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.mapa = mapa
	r.mu.Unlock()
	return nil
}

// Mapeado devolve o grupo configurado para o cliente, ou ("", false) quando
// não há mapeamento — o que significa "use a identidade do próprio cliente",
// não é um erro.
func (r *GrupoResolver) Mapeado(cliente string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	grupo, ok := r.mapa[texto.Chave(cliente)]
	return grupo, ok
}

// Resolver devolve a chave de grupo do cliente. O fallback para a identidade
// do próprio cliente é o ramo default explícito da regra.
func (r *GrupoResolver) Resolver(cliente string) string {
	if grupo, ok := r.Mapeado(cliente); ok {
		return grupo
	}
	return cliente
}

// Tamanho devolve quantos mapeamentos estão carregados (para log e health).
func (r *GrupoResolver) Tamanho() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.mapa)
}

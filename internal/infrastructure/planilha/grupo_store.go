package planilha

import (
	"context"

	"github.com/ravanini/estoque-api/internal/domain"
	"github.com/ravanini/estoque-api/internal/domain/repository"
	"github.com/ravanini/estoque-api/pkg/texto"
)

var _ repository.GrupoRepository = (*GrupoStore)(nil)

// Colunas da aba grupos_estoque: A cliente | B grupo
const colunasGrupo = 2

// GrupoStore lê a tabela de apelidos cliente → grupo de estoque.
// A aba é mantida à mão pelo escritório; o motor só lê.
type GrupoStore struct {
	cli Client
}

// NovoGrupoStore constrói o store sobre o client de planilha.
func NovoGrupoStore(cli Client) *GrupoStore {
	return &GrupoStore{cli: cli}
}

func (s *GrupoStore) CarregarMapeamentos(ctx context.Context) (map[string]string, error) {
	brutas, err := s.cli.LerIntervalo(ctx, IntervaloDados(AbaGrupos, colunasGrupo))
	if err != nil {
		return nil, &domain.ErroAcessoPlanilha{Operacao: "carregar_grupos", Aba: AbaGrupos, Etapa: "leitura", Err: err}
	}
	mapa := make(map[string]string, len(brutas))
	for _, bruta := range brutas {
		cliente, grupo := celula(bruta, 0), celula(bruta, 1)
		if cliente == "" || grupo == "" {
			continue
		}
		mapa[texto.Chave(cliente)] = grupo
	}
	return mapa, nil
}

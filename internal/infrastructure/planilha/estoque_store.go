package planilha

import (
	"context"

	"github.com/ravanini/estoque-api/internal/domain"
	"github.com/ravanini/estoque-api/internal/domain/entity"
	"github.com/ravanini/estoque-api/internal/domain/repository"
	"github.com/ravanini/estoque-api/pkg/texto"
)

var _ repository.EstoqueRepository = (*EstoqueStore)(nil)

// Colunas da aba estoque_atual:
// A grupo | B produto | C caixas | D pacotes | E unidades | F kg |
// G ultima_contagem | H atualizado_em
const colunasEstoque = 8

// EstoqueStore persiste o snapshot de estoque na aba estoque_atual.
// Uma linha por (grupo, produto); Salvar sobrescreve a linha existente.
// A posição física da linha é resolvida a cada chamada, nunca cacheada.
type EstoqueStore struct {
	cli Client
}

// NovoEstoqueStore constrói o store sobre o client de planilha.
func NovoEstoqueStore(cli Client) *EstoqueStore {
	return &EstoqueStore{cli: cli}
}

func (s *EstoqueStore) Buscar(ctx context.Context, grupo, produto string) (*entity.EstoqueAtual, error) {
	_, e, err := s.localizar(ctx, grupo, produto)
	return e, err
}

func (s *EstoqueStore) ListarPorGrupo(ctx context.Context, grupo string) ([]entity.EstoqueAtual, error) {
	todos, _, err := s.lerTudo(ctx, "listar_estoque_grupo")
	if err != nil {
		return nil, err
	}
	chave := texto.Chave(grupo)
	var saida []entity.EstoqueAtual
	for _, e := range todos {
		if texto.Chave(e.Grupo) == chave {
			saida = append(saida, e)
		}
	}
	return saida, nil
}

func (s *EstoqueStore) ListarTodos(ctx context.Context) ([]entity.EstoqueAtual, error) {
	todos, _, err := s.lerTudo(ctx, "listar_estoques")
	return todos, err
}

// Salvar sobrescreve a linha do par (grupo, produto), ou acrescenta uma nova
// quando o par ainda não tem snapshot.
func (s *EstoqueStore) Salvar(ctx context.Context, estoque *entity.EstoqueAtual) error {
	linha, existente, err := s.localizar(ctx, estoque.Grupo, estoque.Produto)
	if err != nil {
		return err
	}
	valores := linhaEstoque(estoque)
	if existente == nil {
		if err := s.cli.AcrescentarLinhas(ctx, AbaEstoque, [][]any{valores}); err != nil {
			return &domain.ErroAcessoPlanilha{Operacao: "salvar_estoque", Aba: AbaEstoque, Etapa: "gravacao", Err: err}
		}
		return nil
	}
	spec := IntervaloLinha(AbaEstoque, linha, colunasEstoque)
	if err := s.cli.AtualizarIntervalo(ctx, spec, [][]any{valores}); err != nil {
		return &domain.ErroAcessoPlanilha{Operacao: "salvar_estoque", Aba: AbaEstoque, Etapa: "gravacao", Err: err}
	}
	return nil
}

// localizar devolve a linha física e a entidade, ou (0, nil) se não existe.
func (s *EstoqueStore) localizar(ctx context.Context, grupo, produto string) (int, *entity.EstoqueAtual, error) {
	todos, linhas, err := s.lerTudo(ctx, "buscar_estoque")
	if err != nil {
		return 0, nil, err
	}
	chaveGrupo, chaveProduto := texto.Chave(grupo), texto.Chave(produto)
	for i, e := range todos {
		if texto.Chave(e.Grupo) == chaveGrupo && texto.Chave(e.Produto) == chaveProduto {
			return linhas[i], &e, nil
		}
	}
	return 0, nil, nil
}

// lerTudo lê a aba inteira e devolve as entidades válidas com suas linhas
// físicas. Linhas sem grupo ou sem produto são puladas, não derrubam a leitura.
func (s *EstoqueStore) lerTudo(ctx context.Context, operacao string) ([]entity.EstoqueAtual, []int, error) {
	brutas, err := s.cli.LerIntervalo(ctx, IntervaloDados(AbaEstoque, colunasEstoque))
	if err != nil {
		return nil, nil, &domain.ErroAcessoPlanilha{Operacao: operacao, Aba: AbaEstoque, Etapa: "leitura", Err: err}
	}
	var (
		entidades []entity.EstoqueAtual
		linhas    []int
	)
	for i, bruta := range brutas {
		grupo, produto := celula(bruta, 0), celula(bruta, 1)
		if grupo == "" || produto == "" {
			continue
		}
		entidades = append(entidades, entity.EstoqueAtual{
			Grupo:          grupo,
			Produto:        produto,
			Quantidade:     parseQuantidade(bruta, 2),
			UltimaContagem: parseDataHoraOpcional(celula(bruta, 6)),
			AtualizadoEm:   parseDataHora(celula(bruta, 7)),
		})
		linhas = append(linhas, i+2) // dados começam na linha 2
	}
	return entidades, linhas, nil
}

func linhaEstoque(e *entity.EstoqueAtual) []any {
	return []any{
		e.Grupo,
		e.Produto,
		e.Quantidade.Caixas.String(),
		e.Quantidade.Pacotes.String(),
		e.Quantidade.Unidades.String(),
		e.Quantidade.Kg.String(),
		formatarDataHoraOpcional(e.UltimaContagem),
		e.AtualizadoEm.Format(FormatoDataHora),
	}
}

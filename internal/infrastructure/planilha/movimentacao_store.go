package planilha

import (
	"context"

	"github.com/ravanini/estoque-api/internal/domain"
	"github.com/ravanini/estoque-api/internal/domain/entity"
	"github.com/ravanini/estoque-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoStore)(nil)

// Colunas da aba movimentacoes:
// A id | B data | C cliente | D produto | E observacao |
// F meta_caixas | G meta_pacotes | H meta_unidades | I meta_kg |
// J real_caixas | K real_pacotes | L real_unidades | M real_kg |
// N foto_url | O criado_em | P atualizado_em
const colunasMovimentacao = 16

// MovimentacaoStore persiste o razão de saídas na aba movimentacoes.
//
// O número da linha física só vale até a próxima exclusão estrutural (excluir
// a linha N desloca todas as seguintes). Por isso cada operação re-resolve a
// posição pelo ID durável imediatamente antes da chamada mutante; nenhuma
// posição é guardada entre chamadas.
type MovimentacaoStore struct {
	cli Client
}

// NovoMovimentacaoStore constrói o store sobre o client de planilha.
func NovoMovimentacaoStore(cli Client) *MovimentacaoStore {
	return &MovimentacaoStore{cli: cli}
}

func (s *MovimentacaoStore) Acrescentar(ctx context.Context, mov *entity.Movimentacao) error {
	if err := s.cli.AcrescentarLinhas(ctx, AbaMovimentacoes, [][]any{linhaMovimentacao(mov)}); err != nil {
		return &domain.ErroAcessoPlanilha{Operacao: "registrar_movimentacao", Aba: AbaMovimentacoes, Etapa: "gravacao", Err: err}
	}
	return nil
}

func (s *MovimentacaoStore) BuscarPorID(ctx context.Context, id string) (*entity.Movimentacao, error) {
	_, mov, err := s.localizar(ctx, id, "buscar_movimentacao")
	return mov, err
}

// AtualizarMeta reescreve a linha com a nova meta e observação. Realizado,
// foto e criado_em são regravados com os valores já lidos da própria linha;
// o snapshot de estoque não é tocado.
func (s *MovimentacaoStore) AtualizarMeta(ctx context.Context, id string, meta entity.Quantidade, observacao string) error {
	linha, mov, err := s.localizar(ctx, id, "atualizar_meta")
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNaoEncontrado
	}
	mov.Meta = meta
	mov.Observacao = observacao
	mov.AtualizadoEm = agora()
	spec := IntervaloLinha(AbaMovimentacoes, linha, colunasMovimentacao)
	if err := s.cli.AtualizarIntervalo(ctx, spec, [][]any{linhaMovimentacao(mov)}); err != nil {
		return &domain.ErroAcessoPlanilha{Operacao: "atualizar_meta", Aba: AbaMovimentacoes, Etapa: "gravacao", Err: err}
	}
	return nil
}

func (s *MovimentacaoStore) Excluir(ctx context.Context, id string) error {
	linha, mov, err := s.localizar(ctx, id, "excluir_movimentacao")
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNaoEncontrado
	}
	if err := s.cli.ExcluirLinha(ctx, AbaMovimentacoes, linha); err != nil {
		return &domain.ErroAcessoPlanilha{Operacao: "excluir_movimentacao", Aba: AbaMovimentacoes, Etapa: "exclusao_linha", Err: err}
	}
	return nil
}

func (s *MovimentacaoStore) ListarPorData(ctx context.Context, data string) ([]entity.Movimentacao, error) {
	todas, _, err := s.lerTudo(ctx, "listar_movimentacoes_data")
	if err != nil {
		return nil, err
	}
	var saida []entity.Movimentacao
	for _, m := range todas {
		if m.Data.Format(FormatoData) == data {
			saida = append(saida, m)
		}
	}
	return saida, nil
}

func (s *MovimentacaoStore) Listar(ctx context.Context) ([]entity.Movimentacao, error) {
	todas, _, err := s.lerTudo(ctx, "listar_movimentacoes")
	return todas, err
}

// localizar re-resolve a posição física do ID no momento da chamada.
func (s *MovimentacaoStore) localizar(ctx context.Context, id, operacao string) (int, *entity.Movimentacao, error) {
	todas, linhas, err := s.lerTudo(ctx, operacao)
	if err != nil {
		return 0, nil, err
	}
	for i, m := range todas {
		if m.ID == id {
			return linhas[i], &m, nil
		}
	}
	return 0, nil, nil
}

func (s *MovimentacaoStore) lerTudo(ctx context.Context, operacao string) ([]entity.Movimentacao, []int, error) {
	brutas, err := s.cli.LerIntervalo(ctx, IntervaloDados(AbaMovimentacoes, colunasMovimentacao))
	if err != nil {
		return nil, nil, &domain.ErroAcessoPlanilha{Operacao: operacao, Aba: AbaMovimentacoes, Etapa: "leitura", Err: err}
	}
	var (
		movs   []entity.Movimentacao
		linhas []int
	)
	for i, bruta := range brutas {
		id := celula(bruta, 0)
		if id == "" {
			continue
		}
		movs = append(movs, entity.Movimentacao{
			ID:           id,
			Data:         parseData(celula(bruta, 1)),
			Cliente:      celula(bruta, 2),
			Produto:      celula(bruta, 3),
			Observacao:   celula(bruta, 4),
			Meta:         parseQuantidade(bruta, 5),
			Realizado:    parseQuantidade(bruta, 9),
			FotoURL:      celula(bruta, 13),
			CriadoEm:     parseDataHora(celula(bruta, 14)),
			AtualizadoEm: parseDataHora(celula(bruta, 15)),
		})
		linhas = append(linhas, i+2)
	}
	return movs, linhas, nil
}

func linhaMovimentacao(m *entity.Movimentacao) []any {
	return []any{
		m.ID,
		m.Data.Format(FormatoData),
		m.Cliente,
		m.Produto,
		m.Observacao,
		m.Meta.Caixas.String(),
		m.Meta.Pacotes.String(),
		m.Meta.Unidades.String(),
		m.Meta.Kg.String(),
		m.Realizado.Caixas.String(),
		m.Realizado.Pacotes.String(),
		m.Realizado.Unidades.String(),
		m.Realizado.Kg.String(),
		m.FotoURL,
		m.CriadoEm.Format(FormatoDataHora),
		m.AtualizadoEm.Format(FormatoDataHora),
	}
}

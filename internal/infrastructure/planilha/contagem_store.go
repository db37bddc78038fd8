package planilha

import (
	"context"

	"github.com/ravanini/estoque-api/internal/domain"
	"github.com/ravanini/estoque-api/internal/domain/entity"
	"github.com/ravanini/estoque-api/internal/domain/repository"
)

var _ repository.ContagemRepository = (*ContagemStore)(nil)

// Colunas da aba contagens:
// A data | B grupo | C produto | D caixas | E pacotes | F unidades | G kg |
// H criado_em | I atualizado_em
const colunasContagem = 9

// ContagemStore persiste o log de contagens físicas na aba contagens.
// Append-only: é trilha de auditoria, nunca editada nem apagada pelo motor.
type ContagemStore struct {
	cli Client
}

// NovoContagemStore constrói o store sobre o client de planilha.
func NovoContagemStore(cli Client) *ContagemStore {
	return &ContagemStore{cli: cli}
}

func (s *ContagemStore) Acrescentar(ctx context.Context, registro *entity.RegistroContagem) error {
	valores := []any{
		registro.Data.Format(FormatoData),
		registro.Grupo,
		registro.Produto,
		registro.Quantidade.Caixas.String(),
		registro.Quantidade.Pacotes.String(),
		registro.Quantidade.Unidades.String(),
		registro.Quantidade.Kg.String(),
		registro.CriadoEm.Format(FormatoDataHora),
		registro.AtualizadoEm.Format(FormatoDataHora),
	}
	if err := s.cli.AcrescentarLinhas(ctx, AbaContagens, [][]any{valores}); err != nil {
		return &domain.ErroAcessoPlanilha{Operacao: "registrar_contagem", Aba: AbaContagens, Etapa: "gravacao", Err: err}
	}
	return nil
}

func (s *ContagemStore) Listar(ctx context.Context) ([]entity.RegistroContagem, error) {
	brutas, err := s.cli.LerIntervalo(ctx, IntervaloDados(AbaContagens, colunasContagem))
	if err != nil {
		return nil, &domain.ErroAcessoPlanilha{Operacao: "listar_contagens", Aba: AbaContagens, Etapa: "leitura", Err: err}
	}
	var registros []entity.RegistroContagem
	for _, bruta := range brutas {
		grupo, produto := celula(bruta, 1), celula(bruta, 2)
		if grupo == "" || produto == "" {
			continue
		}
		registros = append(registros, entity.RegistroContagem{
			Data:         parseData(celula(bruta, 0)),
			Grupo:        grupo,
			Produto:      produto,
			Quantidade:   parseQuantidade(bruta, 3),
			CriadoEm:     parseDataHora(celula(bruta, 7)),
			AtualizadoEm: parseDataHora(celula(bruta, 8)),
		})
	}
	return registros, nil
}

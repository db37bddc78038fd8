package planilha_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravanini/estoque-api/internal/domain"
	"github.com/ravanini/estoque-api/internal/domain/entity"
	"github.com/ravanini/estoque-api/internal/infrastructure/planilha"
)

func novaMovimentacao(id string, caixas int64) *entity.Movimentacao {
	agora := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	return &entity.Movimentacao{
		ID:         id,
		Data:       time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		Cliente:    "Padaria Central",
		Produto:    "Pão Francês",
		Observacao: fmt.Sprintf("carga %s", id),
		Meta: entity.Quantidade{
			Caixas: decimal.NewFromInt(caixas), Pacotes: decimal.Zero,
			Unidades: decimal.Zero, Kg: decimal.Zero,
		},
		Realizado: entity.Quantidade{
			Caixas: decimal.NewFromInt(caixas), Pacotes: decimal.Zero,
			Unidades: decimal.Zero, Kg: decimal.Zero,
		},
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}
}

func TestMovimentacaoStore_RoundTrip(t *testing.T) {
	cli := planilha.NovoClienteMemoria(planilha.Cabecalhos())
	store := planilha.NovoMovimentacaoStore(cli)
	ctx := context.Background()

	original := novaMovimentacao("mov-1", 3)
	require.NoError(t, store.Acrescentar(ctx, original))

	lida, err := store.BuscarPorID(ctx, "mov-1")
	require.NoError(t, err)
	require.NotNil(t, lida)
	assert.Equal(t, original.Cliente, lida.Cliente)
	assert.Equal(t, original.Observacao, lida.Observacao)
	assert.True(t, lida.Realizado.Igual(original.Realizado))
	assert.Equal(t, "2026-08-27", lida.Data.Format("2006-01-02"))
}

func TestMovimentacaoStore_BuscarPorIDInexistenteRetornaNil(t *testing.T) {
	cli := planilha.NovoClienteMemoria(planilha.Cabecalhos())
	store := planilha.NovoMovimentacaoStore(cli)

	mov, err := store.BuscarPorID(context.Background(), "nao-existe")
	require.NoError(t, err, "ID inexistente não é erro de acesso")
	assert.Nil(t, mov)
}

// Excluir uma linha desloca todas as seguintes; o endereço durável é o ID,
// re-resolvido a cada chamada.
func TestMovimentacaoStore_ExclusaoDeslocaLinhasMasIDContinuaResolvendo(t *testing.T) {
	cli := planilha.NovoClienteMemoria(planilha.Cabecalhos())
	store := planilha.NovoMovimentacaoStore(cli)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, store.Acrescentar(ctx, novaMovimentacao(fmt.Sprintf("mov-%d", i), int64(i))))
	}

	require.NoError(t, store.Excluir(ctx, "mov-1"))

	// A aba agora tem só duas linhas de dados: mov-2 e mov-3 subiram.
	brutas, err := cli.LerIntervalo(ctx, "movimentacoes!A2:P")
	require.NoError(t, err)
	require.Len(t, brutas, 2)
	assert.Equal(t, "mov-2", brutas[0][0], "mov-2 ocupa a posição física que era de mov-1")

	terceira, err := store.BuscarPorID(ctx, "mov-3")
	require.NoError(t, err)
	require.NotNil(t, terceira, "mov-3 continua endereçável pelo ID depois do deslocamento")

	// Mutação pós-deslocamento atinge a linha certa.
	novaMeta := entity.Quantidade{
		Caixas: decimal.NewFromInt(9), Pacotes: decimal.Zero,
		Unidades: decimal.Zero, Kg: decimal.Zero,
	}
	require.NoError(t, store.AtualizarMeta(ctx, "mov-3", novaMeta, "remarcada"))

	depois, err := store.BuscarPorID(ctx, "mov-3")
	require.NoError(t, err)
	assert.True(t, depois.Meta.Igual(novaMeta))
	assert.Equal(t, "remarcada", depois.Observacao)

	intocada, err := store.BuscarPorID(ctx, "mov-2")
	require.NoError(t, err)
	assert.Equal(t, "carga mov-2", intocada.Observacao, "a vizinha não pode ser atingida")
}

func TestMovimentacaoStore_AtualizarMetaPreservaRealizado(t *testing.T) {
	cli := planilha.NovoClienteMemoria(planilha.Cabecalhos())
	store := planilha.NovoMovimentacaoStore(cli)
	ctx := context.Background()

	require.NoError(t, store.Acrescentar(ctx, novaMovimentacao("mov-1", 3)))

	novaMeta := entity.Quantidade{
		Caixas: decimal.NewFromInt(7), Pacotes: decimal.Zero,
		Unidades: decimal.Zero, Kg: decimal.Zero,
	}
	require.NoError(t, store.AtualizarMeta(ctx, "mov-1", novaMeta, "obs nova"))

	lida, err := store.BuscarPorID(ctx, "mov-1")
	require.NoError(t, err)
	assert.True(t, lida.Meta.Igual(novaMeta))
	assert.True(t, lida.Realizado.Igual(novaMovimentacao("mov-1", 3).Realizado),
		"realizado é regravado com o valor lido da própria linha")
}

func TestMovimentacaoStore_AtualizarMetaIDInexistente(t *testing.T) {
	cli := planilha.NovoClienteMemoria(planilha.Cabecalhos())
	store := planilha.NovoMovimentacaoStore(cli)

	err := store.AtualizarMeta(context.Background(), "nao-existe", entity.QuantidadeZero(), "")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestMovimentacaoStore_ListarPorData(t *testing.T) {
	cli := planilha.NovoClienteMemoria(planilha.Cabecalhos())
	store := planilha.NovoMovimentacaoStore(cli)
	ctx := context.Background()

	hoje := novaMovimentacao("mov-hoje", 1)
	ontem := novaMovimentacao("mov-ontem", 2)
	ontem.Data = time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Acrescentar(ctx, hoje))
	require.NoError(t, store.Acrescentar(ctx, ontem))

	doDia, err := store.ListarPorData(ctx, "2026-08-27")
	require.NoError(t, err)
	require.Len(t, doDia, 1)
	assert.Equal(t, "mov-hoje", doDia[0].ID)
}

package movimentacao_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravanini/estoque-api/internal/application/estoque"
	"github.com/ravanini/estoque-api/internal/application/movimentacao"
	"github.com/ravanini/estoque-api/internal/domain"
	"github.com/ravanini/estoque-api/internal/domain/entity"
	"github.com/ravanini/estoque-api/internal/infrastructure/planilha"
	"github.com/ravanini/estoque-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

type notificadorFake struct {
	mensagens []string
}

func (n *notificadorFake) EnviarTexto(_ context.Context, mensagem string) error {
	n.mensagens = append(n.mensagens, mensagem)
	return nil
}

type ambiente struct {
	svc        *movimentacao.Service
	estoqueSvc *estoque.Service
	notif      *notificadorFake
}

func novoAmbiente(t *testing.T) *ambiente {
	t.Helper()
	cli := planilha.NovoClienteMemoria(planilha.Cabecalhos())
	grupos := estoque.NovoGrupoResolver(planilha.NovoGrupoStore(cli))
	require.NoError(t, grupos.Recarregar(context.Background()))
	estoqueSvc := estoque.NovoService(
		planilha.NovoEstoqueStore(cli),
		planilha.NovoContagemStore(cli),
		grupos,
		nil,
	)
	notif := &notificadorFake{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	svc := movimentacao.NovoService(planilha.NovoMovimentacaoStore(cli), estoqueSvc, notif, log)
	return &ambiente{svc: svc, estoqueSvc: estoqueSvc, notif: notif}
}

func caixas(n int64) entity.Quantidade {
	return entity.Quantidade{
		Caixas:   decimal.NewFromInt(n),
		Pacotes:  decimal.Zero,
		Unidades: decimal.Zero,
		Kg:       decimal.Zero,
	}
}

func (a *ambiente) snapshot(t *testing.T, grupo, produto string) entity.Quantidade {
	t.Helper()
	itens, err := a.estoqueSvc.ObterEstoqueCliente(context.Background(), grupo)
	require.NoError(t, err)
	for _, item := range itens {
		if item.Produto == produto {
			return item.Quantidade
		}
	}
	t.Fatalf("snapshot %s/%s não encontrado", grupo, produto)
	return entity.Quantidade{}
}

func registrarInput() movimentacao.RegistrarInput {
	return movimentacao.RegistrarInput{
		Data:       time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		Cliente:    "Padaria Central",
		Produto:    "Pão Francês",
		Observacao: "entrega da manhã",
		Meta:       caixas(3),
		Realizado:  caixas(3),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registrar
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_DebitaRealizadoDoSnapshot(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	require.NoError(t, amb.estoqueSvc.DefinirQuantidadeAbsoluta(ctx, "Padaria Central", "Pão Francês", caixas(10)))

	mov, err := amb.svc.Registrar(ctx, registrarInput())
	require.NoError(t, err)
	require.NotEmpty(t, mov.ID)

	assert.True(t, amb.snapshot(t, "Padaria Central", "Pão Francês").Igual(caixas(7)),
		"realizado debita o snapshot do grupo resolvido")
}

func TestRegistrar_SaidaPodeDeixarSnapshotNegativo(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	require.NoError(t, amb.estoqueSvc.DefinirQuantidadeAbsoluta(ctx, "Padaria Central", "Pão Francês", caixas(1)))

	_, err := amb.svc.Registrar(ctx, registrarInput())
	require.NoError(t, err, "saída maior que o saldo é aceita; a próxima contagem corrige")
	assert.True(t, amb.snapshot(t, "Padaria Central", "Pão Francês").Igual(caixas(-2)))
}

func TestRegistrar_RealizadoZeroNaoTocaEstoque(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	require.NoError(t, amb.estoqueSvc.DefinirQuantidadeAbsoluta(ctx, "Padaria Central", "Pão Francês", caixas(10)))

	in := registrarInput()
	in.Realizado = entity.QuantidadeZero()
	_, err := amb.svc.Registrar(ctx, in)
	require.NoError(t, err)

	assert.True(t, amb.snapshot(t, "Padaria Central", "Pão Francês").Igual(caixas(10)),
		"meta sem realizado é só planejamento, não mexe no estoque")
}

func TestRegistrar_NaoEIdempotente(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	require.NoError(t, amb.estoqueSvc.DefinirQuantidadeAbsoluta(ctx, "Padaria Central", "Pão Francês", caixas(10)))

	_, err := amb.svc.Registrar(ctx, registrarInput())
	require.NoError(t, err)
	_, err = amb.svc.Registrar(ctx, registrarInput())
	require.NoError(t, err)

	movs, err := amb.svc.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, movs, 2, "repetir o mesmo payload cria linha nova")
	assert.True(t, amb.snapshot(t, "Padaria Central", "Pão Francês").Igual(caixas(4)),
		"e debita o estoque de novo")
}

func TestRegistrar_ValidaEntrada(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()

	in := registrarInput()
	in.Cliente = ""
	_, err := amb.svc.Registrar(ctx, in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	in = registrarInput()
	in.Data = time.Time{}
	_, err = amb.svc.Registrar(ctx, in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	in = registrarInput()
	in.Realizado = caixas(-1)
	_, err = amb.svc.Registrar(ctx, in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestRegistrar_EnviaAvisoDeExpedicao(t *testing.T) {
	amb := novoAmbiente(t)

	_, err := amb.svc.Registrar(context.Background(), registrarInput())
	require.NoError(t, err)

	require.Len(t, amb.notif.mensagens, 1)
	assert.Contains(t, amb.notif.mensagens[0], "Pão Francês")
	assert.Contains(t, amb.notif.mensagens[0], "Padaria Central")
}

// ──────────────────────────────────────────────────────────────────────────────
// AtualizarMeta
// ──────────────────────────────────────────────────────────────────────────────

func TestAtualizarMeta_NaoTocaRealizadoNemEstoque(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	require.NoError(t, amb.estoqueSvc.DefinirQuantidadeAbsoluta(ctx, "Padaria Central", "Pão Francês", caixas(10)))

	mov, err := amb.svc.Registrar(ctx, registrarInput())
	require.NoError(t, err)

	err = amb.svc.AtualizarMeta(ctx, mov.ID, movimentacao.AtualizarMetaInput{
		Meta:       caixas(5),
		Observacao: "meta revisada",
	})
	require.NoError(t, err)

	atualizada, err := amb.svc.Obter(ctx, mov.ID)
	require.NoError(t, err)
	assert.True(t, atualizada.Meta.Igual(caixas(5)))
	assert.Equal(t, "meta revisada", atualizada.Observacao)
	assert.True(t, atualizada.Realizado.Igual(caixas(3)), "realizado fica intocado")

	assert.True(t, amb.snapshot(t, "Padaria Central", "Pão Francês").Igual(caixas(7)),
		"edição de meta nunca mexe no snapshot")
}

func TestAtualizarMeta_IDInexistente(t *testing.T) {
	amb := novoAmbiente(t)
	err := amb.svc.AtualizarMeta(context.Background(), "nao-existe", movimentacao.AtualizarMetaInput{Meta: caixas(1)})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Excluir (estorno + remoção estrutural)
// ──────────────────────────────────────────────────────────────────────────────

func TestExcluir_EstornaRealizadoERemoveLinha(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	require.NoError(t, amb.estoqueSvc.DefinirQuantidadeAbsoluta(ctx, "Padaria Central", "Pão Francês", caixas(10)))

	mov, err := amb.svc.Registrar(ctx, registrarInput())
	require.NoError(t, err)
	require.True(t, amb.snapshot(t, "Padaria Central", "Pão Francês").Igual(caixas(7)))

	require.NoError(t, amb.svc.Excluir(ctx, mov.ID))

	assert.True(t, amb.snapshot(t, "Padaria Central", "Pão Francês").Igual(caixas(10)),
		"ciclo registrar-excluir devolve o snapshot ao valor original")

	_, err = amb.svc.Obter(ctx, mov.ID)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestExcluir_IDInexistente(t *testing.T) {
	amb := novoAmbiente(t)
	err := amb.svc.Excluir(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestExcluir_MovimentacoesRestantesContinuamEnderecaveis(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	require.NoError(t, amb.estoqueSvc.DefinirQuantidadeAbsoluta(ctx, "Padaria Central", "Pão Francês", caixas(100)))

	primeira, err := amb.svc.Registrar(ctx, registrarInput())
	require.NoError(t, err)
	segunda, err := amb.svc.Registrar(ctx, registrarInput())
	require.NoError(t, err)
	terceira, err := amb.svc.Registrar(ctx, registrarInput())
	require.NoError(t, err)

	// Excluir a primeira desloca as linhas físicas das demais.
	require.NoError(t, amb.svc.Excluir(ctx, primeira.ID))

	restante, err := amb.svc.Obter(ctx, terceira.ID)
	require.NoError(t, err, "ID durável resolve mesmo depois do deslocamento de linhas")
	assert.Equal(t, terceira.ID, restante.ID)

	require.NoError(t, amb.svc.AtualizarMeta(ctx, segunda.ID, movimentacao.AtualizarMetaInput{
		Meta: caixas(9), Observacao: "depois do deslocamento",
	}))
	depois, err := amb.svc.Obter(ctx, segunda.ID)
	require.NoError(t, err)
	assert.True(t, depois.Meta.Igual(caixas(9)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Listagem
// ──────────────────────────────────────────────────────────────────────────────

func TestListarPorData_FiltraPeloDia(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()

	in := registrarInput()
	_, err := amb.svc.Registrar(ctx, in)
	require.NoError(t, err)

	in.Data = time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	_, err = amb.svc.Registrar(ctx, in)
	require.NoError(t, err)

	doDia, err := amb.svc.ListarPorData(ctx, "2026-08-27")
	require.NoError(t, err)
	assert.Len(t, doDia, 1)

	vazio, err := amb.svc.ListarPorData(ctx, "2026-08-25")
	require.NoError(t, err)
	assert.Empty(t, vazio)
}

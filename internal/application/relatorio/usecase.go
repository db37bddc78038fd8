package relatorio

import (
	"context"
	"sort"

	"github.com/ravanini/estoque-api/internal/application/estoque"
	"github.com/ravanini/estoque-api/internal/domain/entity"
	"github.com/ravanini/estoque-api/pkg/texto"
)

// GeradorPDF é o porto do gerador do relatório impresso de estoque.
type GeradorPDF interface {
	GerarRelatorioEstoque(ctx context.Context, itens []entity.EstoqueAtual) ([]byte, error)
}

// UseCase monta o relatório de estoque do escritório: dump completo dos
// snapshots, ordenado por grupo e produto.
type UseCase struct {
	estoqueSvc *estoque.Service
	gerador    GeradorPDF
}

// NewUseCase constrói o caso de uso.
func NewUseCase(estoqueSvc *estoque.Service, gerador GeradorPDF) *UseCase {
	return &UseCase{estoqueSvc: estoqueSvc, gerador: gerador}
}

// RelatorioEstoquePDF gera o PDF com todos os snapshots.
func (uc *UseCase) RelatorioEstoquePDF(ctx context.Context) ([]byte, error) {
	itens, err := uc.estoqueSvc.ObterTodosEstoques(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(itens, func(i, j int) bool {
		gi, gj := texto.Chave(itens[i].Grupo), texto.Chave(itens[j].Grupo)
		if gi != gj {
			return gi < gj
		}
		return texto.Chave(itens[i].Produto) < texto.Chave(itens[j].Produto)
	})
	return uc.gerador.GerarRelatorioEstoque(ctx, itens)
}

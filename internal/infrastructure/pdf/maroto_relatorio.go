// Package pdf gera o relatório impresso de estoque (A4) que o escritório
// confere contra a contagem do dia.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ravanini/estoque-api/internal/application/relatorio"
	"github.com/ravanini/estoque-api/internal/domain/entity"
)

var _ relatorio.GeradorPDF = (*MarotoRelatorioGenerator)(nil)

var (
	corPrimaria = &props.Color{Red: 102, Green: 51, Blue: 0}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoRelatorioGenerator implementa relatorio.GeradorPDF com Maroto v2.
type MarotoRelatorioGenerator struct{}

// NewMarotoRelatorioGenerator constrói o gerador.
func NewMarotoRelatorioGenerator() *MarotoRelatorioGenerator {
	return &MarotoRelatorioGenerator{}
}

// GerarRelatorioEstoque gera o PDF e devolve seus bytes.
func (g *MarotoRelatorioGenerator) GerarRelatorioEstoque(_ context.Context, itens []entity.EstoqueAtual) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalhoRow(len(itens)))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(tabelaCabecalhoRow())

	grupoAnterior := ""
	for _, item := range itens {
		if item.Grupo != grupoAnterior {
			m.AddRows(grupoRow(item.Grupo))
			grupoAnterior = item.Grupo
		}
		m.AddRows(itemRow(item))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func cabecalhoRow(total int) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE ESTOQUE ATUAL", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
			text.New(fmt.Sprintf("%d produto(s) com snapshot", total), props.Text{
				Size: 8, Top: 9, Color: corCinza,
			}),
		),
		col.New(4).Add(
			text.New("Emitido em "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: corCinza,
			}),
		),
	)
}

func tabelaCabecalhoRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: corPrimaria, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Produto", 4, align.Left),
		h("Caixas", 2, align.Right),
		h("Pacotes", 2, align.Right),
		h("Unidades", 2, align.Right),
		h("Kg", 1, align.Right),
		h("Últ. contagem", 1, align.Right),
	)
}

func grupoRow(grupo string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(grupo, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: corPrimaria, Top: 2,
		})),
	)
}

func itemRow(item entity.EstoqueAtual) core.Row {
	ultima := "—"
	if item.UltimaContagem != nil {
		ultima = item.UltimaContagem.Format("02/01")
	}
	cel := func(valor string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(valor, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		cel(item.Produto, 4, align.Left),
		cel(item.Quantidade.Caixas.String(), 2, align.Right),
		cel(item.Quantidade.Pacotes.String(), 2, align.Right),
		cel(item.Quantidade.Unidades.String(), 2, align.Right),
		cel(item.Quantidade.Kg.StringFixed(3), 1, align.Right),
		cel(ultima, 1, align.Right),
	)
}

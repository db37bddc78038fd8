package planilha

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ravanini/estoque-api/internal/domain/entity"
)

// agora é indireção para os testes congelarem o relógio do pacote.
var agora = time.Now

// Formatos usados nas células. A data da contagem/expedição é só o dia;
// carimbos de criação/atualização vão completos.
const (
	FormatoData     = "2006-01-02"
	FormatoDataHora = time.RFC3339
)

// parseDecimal lê uma célula numérica com tolerância a formulário: vazio vale
// zero e vírgula decimal (digitação brasileira) é aceita.
func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseQuantidade lê quatro células consecutivas (caixas, pacotes, unidades,
// kg) a partir da coluna indicada, tolerando linhas curtas.
func parseQuantidade(linha []string, inicio int) entity.Quantidade {
	return entity.Quantidade{
		Caixas:   parseDecimal(celula(linha, inicio)),
		Pacotes:  parseDecimal(celula(linha, inicio+1)),
		Unidades: parseDecimal(celula(linha, inicio+2)),
		Kg:       parseDecimal(celula(linha, inicio+3)),
	}
}

func parseData(s string) time.Time {
	t, err := time.Parse(FormatoData, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseDataHora(s string) time.Time {
	t, err := time.Parse(FormatoDataHora, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseDataHoraOpcional devolve nil para célula vazia ou ilegível.
func parseDataHoraOpcional(s string) *time.Time {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t := parseDataHora(s)
	if t.IsZero() {
		return nil
	}
	return &t
}

func formatarDataHoraOpcional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(FormatoDataHora)
}

// celula devolve a coluna pedida ou "" quando a linha veio curta (a API de
// planilha corta células vazias no fim da linha).
func celula(linha []string, indice int) string {
	if indice >= len(linha) {
		return ""
	}
	return strings.TrimSpace(linha[indice])
}

// Package planilha implementa a persistência do motor de estoque sobre um
// armazenamento tabular orientado a linhas (uma "planilha": lista ordenada de
// linhas endereçadas pelo número da linha, com append/update/delete e SEM
// atomicidade multi-linha nem bloqueio).
//
// O contrato Client é o mínimo consumido pelos stores; há duas
// implementações: ExcelClient (pasta de trabalho local via excelize) e
// ClienteMemoria (testes e modo dev).
package planilha

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Client é o adaptador de armazenamento tabular consumido pelos stores.
// Cada instância fica atada a uma pasta de trabalho (conjunto de abas).
type Client interface {
	// LerIntervalo lê um retângulo de células em notação A1
	// (ex.: "estoque_atual!A2:H" — linha final aberta lê até o fim).
	LerIntervalo(ctx context.Context, spec string) ([][]string, error)
	// AcrescentarLinhas acrescenta linhas ao final da aba.
	AcrescentarLinhas(ctx context.Context, aba string, linhas [][]any) error
	// AtualizarIntervalo sobrescreve o retângulo indicado.
	AtualizarIntervalo(ctx context.Context, spec string, linhas [][]any) error
	// ExcluirLinha remove a linha fisicamente. Estrutural: toda linha
	// posterior desce uma posição, invalidando posições em cache.
	ExcluirLinha(ctx context.Context, aba string, linha int) error
}

// Intervalo é um retângulo de células já decomposto. Linhas e colunas são
// 1-based; LinhaFinal == 0 significa "até o fim da aba".
type Intervalo struct {
	Aba           string
	LinhaInicial  int
	LinhaFinal    int
	ColunaInicial int
	ColunaFinal   int
}

// ParseIntervalo decompõe uma especificação "aba!A2:H10" (ou "aba!A2:H").
func ParseIntervalo(spec string) (Intervalo, error) {
	aba, ref, ok := strings.Cut(spec, "!")
	if !ok || aba == "" {
		return Intervalo{}, fmt.Errorf("intervalo %q: falta o nome da aba", spec)
	}
	inicio, fim, ok := strings.Cut(ref, ":")
	if !ok {
		fim = inicio
	}
	colIni, linIni, err := parseCelula(inicio)
	if err != nil {
		return Intervalo{}, fmt.Errorf("intervalo %q: %w", spec, err)
	}
	colFim, linFim, err := parseCelula(fim)
	if err != nil {
		return Intervalo{}, fmt.Errorf("intervalo %q: %w", spec, err)
	}
	if linIni == 0 {
		linIni = 1
	}
	return Intervalo{
		Aba:           aba,
		LinhaInicial:  linIni,
		LinhaFinal:    linFim,
		ColunaInicial: colIni,
		ColunaFinal:   colFim,
	}, nil
}

// parseCelula aceita "A2" ou só "H" (linha 0 = aberta).
func parseCelula(ref string) (col, linha int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A'+1)
		i++
	}
	if col == 0 {
		return 0, 0, fmt.Errorf("célula %q inválida", ref)
	}
	if i == len(ref) {
		return col, 0, nil
	}
	linha, err = strconv.Atoi(ref[i:])
	if err != nil || linha < 1 {
		return 0, 0, fmt.Errorf("célula %q inválida", ref)
	}
	return col, linha, nil
}

// ColunaLetra converte um índice 1-based em letra de coluna ("A", "P", "AA").
func ColunaLetra(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

// IntervaloLinha monta a especificação de uma linha inteira com o número de
// colunas dado (ex.: IntervaloLinha("estoque_atual", 5, 8) == "estoque_atual!A5:H5").
func IntervaloLinha(aba string, linha, colunas int) string {
	return fmt.Sprintf("%s!A%d:%s%d", aba, linha, ColunaLetra(colunas), linha)
}

// IntervaloDados monta a especificação de todas as linhas de dados de uma aba
// (da linha 2, abaixo do cabeçalho, até o fim).
func IntervaloDados(aba string, colunas int) string {
	return fmt.Sprintf("%s!A2:%s", aba, ColunaLetra(colunas))
}

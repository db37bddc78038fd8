package planilha

import (
	"context"
	"fmt"
	"sync"
)

var _ Client = (*ClienteMemoria)(nil)

// ClienteMemoria implementa Client sobre matrizes em memória. Usado nos
// testes e no modo dev (sem arquivo). Reproduz a semântica do armazenamento
// real: sem atomicidade multi-linha e exclusão estrutural que desloca as
// linhas seguintes.
type ClienteMemoria struct {
	mu   sync.Mutex
	abas map[string][][]string
}

// NovoClienteMemoria cria a pasta de trabalho com as abas dadas, cada uma com
// a linha 1 de cabeçalho.
func NovoClienteMemoria(cabecalhos map[string][]string) *ClienteMemoria {
	abas := make(map[string][][]string, len(cabecalhos))
	for aba, cab := range cabecalhos {
		abas[aba] = [][]string{append([]string(nil), cab...)}
	}
	return &ClienteMemoria{abas: abas}
}

func (c *ClienteMemoria) LerIntervalo(_ context.Context, spec string) ([][]string, error) {
	iv, err := ParseIntervalo(spec)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	linhas, ok := c.abas[iv.Aba]
	if !ok {
		return nil, fmt.Errorf("aba %q não existe", iv.Aba)
	}
	inicio := iv.LinhaInicial - 1
	if inicio >= len(linhas) {
		return nil, nil
	}
	fim := len(linhas)
	if iv.LinhaFinal > 0 && iv.LinhaFinal < fim {
		fim = iv.LinhaFinal
	}
	var saida [][]string
	for _, linha := range linhas[inicio:fim] {
		recorte := recortarColunas(linha, iv.ColunaInicial, iv.ColunaFinal)
		saida = append(saida, recorte)
	}
	return saida, nil
}

func (c *ClienteMemoria) AcrescentarLinhas(_ context.Context, aba string, linhas [][]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	existentes, ok := c.abas[aba]
	if !ok {
		return fmt.Errorf("aba %q não existe", aba)
	}
	for _, linha := range linhas {
		existentes = append(existentes, formatarLinha(linha))
	}
	c.abas[aba] = existentes
	return nil
}

func (c *ClienteMemoria) AtualizarIntervalo(_ context.Context, spec string, linhas [][]any) error {
	iv, err := ParseIntervalo(spec)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	existentes, ok := c.abas[iv.Aba]
	if !ok {
		return fmt.Errorf("aba %q não existe", iv.Aba)
	}
	for i, linha := range linhas {
		indice := iv.LinhaInicial - 1 + i
		if indice >= len(existentes) {
			return fmt.Errorf("linha %d fora da aba %q", indice+1, iv.Aba)
		}
		valores := formatarLinha(linha)
		destino := existentes[indice]
		// Garante espaço até a última coluna escrita.
		for len(destino) < iv.ColunaInicial-1+len(valores) {
			destino = append(destino, "")
		}
		copy(destino[iv.ColunaInicial-1:], valores)
		existentes[indice] = destino
	}
	return nil
}

func (c *ClienteMemoria) ExcluirLinha(_ context.Context, aba string, linha int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	existentes, ok := c.abas[aba]
	if !ok {
		return fmt.Errorf("aba %q não existe", aba)
	}
	if linha < 1 || linha > len(existentes) {
		return fmt.Errorf("linha %d fora da aba %q", linha, aba)
	}
	c.abas[aba] = append(existentes[:linha-1], existentes[linha:]...)
	return nil
}

func recortarColunas(linha []string, inicio, fim int) []string {
	if inicio < 1 {
		inicio = 1
	}
	if inicio > len(linha) {
		return nil
	}
	ultimo := len(linha)
	if fim > 0 && fim < ultimo {
		ultimo = fim
	}
	return append([]string(nil), linha[inicio-1:ultimo]...)
}

func formatarLinha(linha []any) []string {
	valores := make([]string, len(linha))
	for i, v := range linha {
		valores[i] = fmt.Sprint(v)
	}
	return valores
}

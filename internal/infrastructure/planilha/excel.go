package planilha

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

var _ Client = (*ExcelClient)(nil)

// ExcelClient implementa Client sobre uma pasta de trabalho .xlsx local
// (excelize). É o deployment do chão de produção: o arquivo fica numa pasta
// sincronizada e os relatórios do escritório leem a mesma planilha.
//
// O mutex serializa o acesso ao arquivo dentro do processo; entre processos
// vale a premissa do sistema (no máximo um escritor por vez).
type ExcelClient struct {
	mu      sync.Mutex
	caminho string
	f       *excelize.File
}

// NovoExcelClient abre a pasta de trabalho (ou cria uma nova com as abas e
// cabeçalhos dados, quando o arquivo ainda não existe).
func NovoExcelClient(caminho string, cabecalhos map[string][]string) (*ExcelClient, error) {
	if _, err := os.Stat(caminho); errors.Is(err, os.ErrNotExist) {
		f, err := criarPasta(caminho, cabecalhos)
		if err != nil {
			return nil, err
		}
		return &ExcelClient{caminho: caminho, f: f}, nil
	}
	f, err := excelize.OpenFile(caminho)
	if err != nil {
		return nil, fmt.Errorf("abrir planilha %s: %w", caminho, err)
	}
	// Abas que faltarem (planilha antiga) são criadas vazias.
	for aba, cab := range cabecalhos {
		indice, err := f.GetSheetIndex(aba)
		if err != nil {
			return nil, err
		}
		if indice >= 0 {
			continue
		}
		if _, err := f.NewSheet(aba); err != nil {
			return nil, err
		}
		if err := escreverLinha(f, aba, 1, 1, paraAny(cab)); err != nil {
			return nil, err
		}
	}
	if err := f.Save(); err != nil {
		return nil, fmt.Errorf("salvar planilha %s: %w", caminho, err)
	}
	return &ExcelClient{caminho: caminho, f: f}, nil
}

func criarPasta(caminho string, cabecalhos map[string][]string) (*excelize.File, error) {
	f := excelize.NewFile()
	for aba, cab := range cabecalhos {
		if _, err := f.NewSheet(aba); err != nil {
			return nil, err
		}
		if err := escreverLinha(f, aba, 1, 1, paraAny(cab)); err != nil {
			return nil, err
		}
	}
	// Remove a aba padrão do excelize.
	_ = f.DeleteSheet("Sheet1")
	if err := f.SaveAs(caminho); err != nil {
		return nil, fmt.Errorf("criar planilha %s: %w", caminho, err)
	}
	return f, nil
}

// Fechar libera o arquivo.
func (c *ExcelClient) Fechar() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.f.Close()
}

func (c *ExcelClient) LerIntervalo(_ context.Context, spec string) ([][]string, error) {
	iv, err := ParseIntervalo(spec)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	linhas, err := c.f.GetRows(iv.Aba)
	if err != nil {
		return nil, fmt.Errorf("ler aba %s: %w", iv.Aba, err)
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
		saida = append(saida, recortarColunas(linha, iv.ColunaInicial, iv.ColunaFinal))
	}
	return saida, nil
}

func (c *ExcelClient) AcrescentarLinhas(_ context.Context, aba string, linhas [][]any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	existentes, err := c.f.GetRows(aba)
	if err != nil {
		return fmt.Errorf("ler aba %s: %w", aba, err)
	}
	proxima := len(existentes) + 1
	for i, linha := range linhas {
		if err := escreverLinha(c.f, aba, proxima+i, 1, linha); err != nil {
			return err
		}
	}
	return c.salvar()
}

func (c *ExcelClient) AtualizarIntervalo(_ context.Context, spec string, linhas [][]any) error {
	iv, err := ParseIntervalo(spec)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, linha := range linhas {
		if err := escreverLinha(c.f, iv.Aba, iv.LinhaInicial+i, iv.ColunaInicial, linha); err != nil {
			return err
		}
	}
	return c.salvar()
}

func (c *ExcelClient) ExcluirLinha(_ context.Context, aba string, linha int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.f.RemoveRow(aba, linha); err != nil {
		return fmt.Errorf("excluir linha %d da aba %s: %w", linha, aba, err)
	}
	return c.salvar()
}

func (c *ExcelClient) salvar() error {
	if err := c.f.Save(); err != nil {
		return fmt.Errorf("salvar planilha %s: %w", c.caminho, err)
	}
	return nil
}

func escreverLinha(f *excelize.File, aba string, linha, colunaInicial int, valores []any) error {
	for i, v := range valores {
		celula, err := excelize.CoordinatesToCellName(colunaInicial+i, linha)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(aba, celula, v); err != nil {
			return fmt.Errorf("escrever %s!%s: %w", aba, celula, err)
		}
	}
	return nil
}

func paraAny(valores []string) []any {
	saida := make([]any, len(valores))
	for i, v := range valores {
		saida[i] = v
	}
	return saida
}

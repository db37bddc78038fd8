package entity

import "time"

// Movimentacao é uma linha do razão de saídas (expedição).
//
// Ciclo de vida: criada (realizado definido, estoque debitado) →
// opcionalmente meta editada (sem efeito no estoque) → excluída
// (estoque creditado de volta se realizado ≠ 0, linha removida fisicamente).
// Não existe "reabrir" depois de excluída.
//
// O ID é um identificador durável (UUID) gravado em coluna própria; a posição
// física da linha na planilha muda a cada exclusão estrutural e só é
// resolvida no momento da chamada ao armazenamento.
type Movimentacao struct {
	ID           string     `json:"id"`
	Data         time.Time  `json:"data"` // dia da expedição
	Cliente      string     `json:"cliente"`
	Produto      string     `json:"produto"`
	Observacao   string     `json:"observacao,omitempty"`
	Meta         Quantidade `json:"meta"`      // quantidade alvo; editável sem tocar estoque
	Realizado    Quantidade `json:"realizado"` // quantidade efetivamente expedida; debita o estoque na criação
	FotoURL      string     `json:"fotoUrl,omitempty"`
	CriadoEm     time.Time  `json:"criadoEm"`
	AtualizadoEm time.Time  `json:"atualizadoEm"`
}

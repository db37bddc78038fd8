package entity

import "time"

// EstoqueAtual é o snapshot vivo de um produto dentro de um grupo de estoque.
// Existe no máximo uma linha por (grupo, produto) na planilha; toda mutação
// sobrescreve a linha, nunca acrescenta outra.
//
// Invariante: Quantidade é sempre o valor gravado pela última contagem
// absoluta do par, ajustado pela soma algébrica dos deltas aplicados desde
// então.
type EstoqueAtual struct {
	Grupo          string     `json:"grupo"`
	Produto        string     `json:"produto"`
	Quantidade     Quantidade `json:"quantidade"`
	UltimaContagem *time.Time `json:"ultimaContagem,omitempty"` // nulo até a primeira contagem absoluta
	AtualizadoEm   time.Time  `json:"atualizadoEm"`
}

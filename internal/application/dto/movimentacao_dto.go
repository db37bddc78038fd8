package dto

// RegistrarMovimentacaoRequest criação de uma saída de expedição.
// Data no formato 2006-01-02. Realizado é o que debita o estoque.
type RegistrarMovimentacaoRequest struct {
	Data       string        `json:"data"`
	Cliente    string        `json:"cliente"`
	Produto    string        `json:"produto"`
	Observacao string        `json:"observacao"`
	Meta       QuantidadeDTO `json:"meta"`
	Realizado  QuantidadeDTO `json:"realizado"`
	FotoURL    string        `json:"fotoUrl"`
}

// AtualizarMetaRequest edição da meta e observação de uma movimentação.
type AtualizarMetaRequest struct {
	Meta       QuantidadeDTO `json:"meta"`
	Observacao string        `json:"observacao"`
}

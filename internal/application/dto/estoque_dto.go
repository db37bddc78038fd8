package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ravanini/estoque-api/internal/domain/entity"
)

// QuantidadeDTO vetor de quantidade como chega do formulário.
// Campos omitidos valem zero.
type QuantidadeDTO struct {
	Caixas   decimal.Decimal `json:"caixas"`
	Pacotes  decimal.Decimal `json:"pacotes"`
	Unidades decimal.Decimal `json:"unidades"`
	Kg       decimal.Decimal `json:"kg"`
}

// ParaEntidade converte para o value object do domínio.
func (q QuantidadeDTO) ParaEntidade() entity.Quantidade {
	return entity.Quantidade{
		Caixas:   q.Caixas,
		Pacotes:  q.Pacotes,
		Unidades: q.Unidades,
		Kg:       q.Kg,
	}
}

// ItemContagemDTO um item da contagem física.
type ItemContagemDTO struct {
	Produto    string        `json:"produto"`
	Quantidade QuantidadeDTO `json:"quantidade"`
}

// AvaliarInventarioRequest entrada do dry-run da contagem.
type AvaliarInventarioRequest struct {
	Grupo string            `json:"grupo"`
	Itens []ItemContagemDTO `json:"itens"`
}

// AplicarInventarioRequest entrada do commit da contagem.
// Data no formato 2006-01-02.
type AplicarInventarioRequest struct {
	Data  string            `json:"data"`
	Grupo string            `json:"grupo"`
	Itens []ItemContagemDTO `json:"itens"`
}

// DeltaRequest ajuste incremental de um snapshot.
type DeltaRequest struct {
	Grupo            string        `json:"grupo"`
	Produto          string        `json:"produto"`
	Delta            QuantidadeDTO `json:"delta"`
	PermitirNegativo bool          `json:"permitirNegativo"`
}

// DefinirQuantidadeRequest sobrescrita administrativa de um snapshot.
type DefinirQuantidadeRequest struct {
	Grupo      string        `json:"grupo"`
	Produto    string        `json:"produto"`
	Quantidade QuantidadeDTO `json:"quantidade"`
}

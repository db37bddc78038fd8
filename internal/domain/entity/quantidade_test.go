package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ravanini/estoque-api/internal/domain/entity"
)

func q(caixas, pacotes, unidades int64, kg string) entity.Quantidade {
	return entity.Quantidade{
		Caixas:   decimal.NewFromInt(caixas),
		Pacotes:  decimal.NewFromInt(pacotes),
		Unidades: decimal.NewFromInt(unidades),
		Kg:       decimal.RequireFromString(kg),
	}
}

func TestQuantidade_SomarESubtrairSaoInversas(t *testing.T) {
	base := q(10, 5, 3, "2.5")
	delta := q(2, 1, 0, "0.75")

	resultado := base.Somar(delta).Subtrair(delta)
	assert.True(t, resultado.Igual(base),
		"somar e subtrair o mesmo delta deve voltar ao vetor original")
}

func TestQuantidade_KgArredondaATresCasas(t *testing.T) {
	base := q(0, 0, 0, "1.0005")
	delta := q(0, 0, 0, "0.0001")

	soma := base.Somar(delta)
	assert.True(t, soma.Kg.Equal(decimal.RequireFromString("1.001")),
		"kg da soma deve arredondar a 3 casas, veio %s", soma.Kg)

	diff := q(0, 0, 0, "2.1234").Subtrair(q(0, 0, 0, "1"))
	assert.True(t, diff.Kg.Equal(decimal.RequireFromString("1.123")),
		"kg do diff deve arredondar a 3 casas, veio %s", diff.Kg)
}

func TestQuantidade_DimensoesIndependentes(t *testing.T) {
	// Caixa nunca vira pacote: cada dimensão soma só com a própria.
	soma := q(1, 0, 0, "0").Somar(q(0, 1, 0, "0"))
	assert.True(t, soma.Igual(q(1, 1, 0, "0")))
}

func TestQuantidade_Negada(t *testing.T) {
	negada := q(3, 0, 2, "1.5").Negada()
	assert.True(t, negada.Igual(q(-3, 0, -2, "-1.5")))
	assert.True(t, negada.TemNegativo())
}

func TestQuantidade_EhZero(t *testing.T) {
	assert.True(t, entity.QuantidadeZero().EhZero())
	assert.False(t, q(0, 0, 1, "0").EhZero())
}

func TestQuantidade_TemNegativo(t *testing.T) {
	assert.False(t, q(0, 0, 0, "0").TemNegativo())
	assert.False(t, q(5, 2, 0, "0.5").TemNegativo())
	assert.True(t, q(5, -1, 0, "0").TemNegativo(),
		"uma única dimensão negativa já marca o vetor")
}

func TestQuantidade_IgualCompararValor(t *testing.T) {
	// 1.50 e 1.5 são o mesmo valor apesar da representação distinta.
	a := entity.Quantidade{Kg: decimal.RequireFromString("1.50")}
	b := entity.Quantidade{Kg: decimal.RequireFromString("1.5")}
	assert.True(t, a.Igual(b))
}

package entity

import "github.com/shopspring/decimal"

// Casas decimais usadas na dimensão kg. As balanças da expedição reportam
// gramas, então três casas bastam e evitam acumular ruído em muitos deltas.
const CasasDecimaisKg = 3

// Quantidade é o vetor de quantidade usado em todo o motor de estoque.
// As quatro dimensões são independentes: nunca se converte caixa em pacote
// nem pacote em unidade. Um mesmo lançamento pode preencher mais de uma
// dimensão (ex.: 2 caixas + 1,5 kg de produto avulso).
type Quantidade struct {
	Caixas   decimal.Decimal `json:"caixas"`
	Pacotes  decimal.Decimal `json:"pacotes"`
	Unidades decimal.Decimal `json:"unidades"`
	Kg       decimal.Decimal `json:"kg"`
}

// QuantidadeZero retorna o vetor nulo.
func QuantidadeZero() Quantidade {
	return Quantidade{
		Caixas:   decimal.Zero,
		Pacotes:  decimal.Zero,
		Unidades: decimal.Zero,
		Kg:       decimal.Zero,
	}
}

// Somar soma dimensão a dimensão. O kg é arredondado a 3 casas.
func (q Quantidade) Somar(o Quantidade) Quantidade {
	return Quantidade{
		Caixas:   q.Caixas.Add(o.Caixas),
		Pacotes:  q.Pacotes.Add(o.Pacotes),
		Unidades: q.Unidades.Add(o.Unidades),
		Kg:       q.Kg.Add(o.Kg).Round(CasasDecimaisKg),
	}
}

// Subtrair subtrai dimensão a dimensão. O kg é arredondado a 3 casas,
// que é o arredondamento exigido no diff de inventário.
func (q Quantidade) Subtrair(o Quantidade) Quantidade {
	return Quantidade{
		Caixas:   q.Caixas.Sub(o.Caixas),
		Pacotes:  q.Pacotes.Sub(o.Pacotes),
		Unidades: q.Unidades.Sub(o.Unidades),
		Kg:       q.Kg.Sub(o.Kg).Round(CasasDecimaisKg),
	}
}

// Negada devolve o vetor com todas as dimensões negadas.
// Usada para transformar um realizado de saída em débito de estoque.
func (q Quantidade) Negada() Quantidade {
	return Quantidade{
		Caixas:   q.Caixas.Neg(),
		Pacotes:  q.Pacotes.Neg(),
		Unidades: q.Unidades.Neg(),
		Kg:       q.Kg.Neg(),
	}
}

// EhZero informa se todas as dimensões são zero.
func (q Quantidade) EhZero() bool {
	return q.Caixas.IsZero() && q.Pacotes.IsZero() && q.Unidades.IsZero() && q.Kg.IsZero()
}

// TemNegativo informa se alguma dimensão é negativa.
func (q Quantidade) TemNegativo() bool {
	return q.Caixas.IsNegative() || q.Pacotes.IsNegative() ||
		q.Unidades.IsNegative() || q.Kg.IsNegative()
}

// Igual compara valor a valor (e não representação interna do decimal).
func (q Quantidade) Igual(o Quantidade) bool {
	return q.Caixas.Equal(o.Caixas) && q.Pacotes.Equal(o.Pacotes) &&
		q.Unidades.Equal(o.Unidades) && q.Kg.Equal(o.Kg)
}

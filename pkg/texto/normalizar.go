// Package texto normaliza nomes digitados pelos operadores. Os nomes de
// produto e de cliente chegam de formulários livres: "Pão Francês",
// "pao frances " e "PÃO  FRANCES" precisam bater na mesma linha da planilha.
package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var semAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Chave normaliza um nome para servir de chave de comparação: remove acentos
// (NFD + remoção de marcas combinantes), baixa a caixa e colapsa espaços.
func Chave(s string) string {
	limpo, _, err := transform.String(semAcentos, s)
	if err != nil {
		limpo = s
	}
	return strings.Join(strings.Fields(strings.ToLower(limpo)), " ")
}

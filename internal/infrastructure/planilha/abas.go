package planilha

// Abas da pasta de trabalho.
const (
	AbaEstoque       = "estoque_atual"
	AbaContagens     = "contagens"
	AbaMovimentacoes = "movimentacoes"
	AbaGrupos        = "grupos_estoque"
	AbaUsuarios      = "usuarios"
)

// Cabecalhos devolve a linha 1 de cada aba, usada ao criar uma pasta nova.
func Cabecalhos() map[string][]string {
	return map[string][]string{
		AbaEstoque: {"grupo", "produto", "caixas", "pacotes", "unidades", "kg",
			"ultima_contagem", "atualizado_em"},
		AbaContagens: {"data", "grupo", "produto", "caixas", "pacotes", "unidades", "kg",
			"criado_em", "atualizado_em"},
		AbaMovimentacoes: {"id", "data", "cliente", "produto", "observacao",
			"meta_caixas", "meta_pacotes", "meta_unidades", "meta_kg",
			"real_caixas", "real_pacotes", "real_unidades", "real_kg",
			"foto_url", "criado_em", "atualizado_em"},
		AbaGrupos:   {"cliente", "grupo"},
		AbaUsuarios: {"id", "nome", "login", "senha_hash", "role", "status", "criado_em"},
	}
}

package repository

import "context"

// GrupoRepository define o porto da tabela de apelidos cliente → grupo de
// estoque. Clientes que dividem um mesmo balde físico/contábil apontam para
// a mesma chave de grupo.
type GrupoRepository interface {
	// CarregarMapeamentos retorna o mapa cliente (chave normalizada) → grupo.
	CarregarMapeamentos(ctx context.Context) (map[string]string, error)
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("registro não encontrado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrQuantidadeNegativa   = errors.New("quantidade resultante negativa")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrLoginJaExiste        = errors.New("login já cadastrado")
	ErrNaoAutorizado        = errors.New("não autorizado")
	ErrAcessoNegado         = errors.New("acesso negado")
)

// ErroAcessoPlanilha envolve uma falha de chamada remota ao armazenamento
// tabular. Operacao e Etapa permitem ao chamador distinguir "nada aconteceu"
// de "aconteceu parcialmente" antes de decidir repetir.
type ErroAcessoPlanilha struct {
	Operacao string // ex.: "aplicar_delta", "excluir_movimentacao"
	Aba      string
	Etapa    string // ex.: "leitura", "gravacao", "exclusao_linha"
	Err      error
}

func (e *ErroAcessoPlanilha) Error() string {
	return fmt.Sprintf("acesso à planilha falhou (%s, aba %s, etapa %s): %v",
		e.Operacao, e.Aba, e.Etapa, e.Err)
}

func (e *ErroAcessoPlanilha) Unwrap() error { return e.Err }

// FalhaItem identifica um item que falhou num commit de contagem.
type FalhaItem struct {
	Produto string
	Err     error
}

// ErroCommitParcial indica que um commit de contagem com vários itens aplicou
// alguns e falhou em outros. Sucedidos enumera o que já foi gravado para que
// o chamador reenvie apenas o restante — nunca é reportado como sucesso nem
// como falha total.
type ErroCommitParcial struct {
	Sucedidos []string
	Falhas    []FalhaItem
}

func (e *ErroCommitParcial) Error() string {
	produtos := make([]string, len(e.Falhas))
	for i, f := range e.Falhas {
		produtos[i] = f.Produto
	}
	return fmt.Sprintf("commit parcial: %d item(ns) aplicados, falha em [%s]",
		len(e.Sucedidos), strings.Join(produtos, ", "))
}

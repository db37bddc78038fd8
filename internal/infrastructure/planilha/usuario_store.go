package planilha

import (
	"context"
	"strings"

	"github.com/ravanini/estoque-api/internal/domain"
	"github.com/ravanini/estoque-api/internal/domain/entity"
	"github.com/ravanini/estoque-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioStore)(nil)

// Colunas da aba usuarios:
// A id | B nome | C login | D senha_hash | E role | F status | G criado_em
const colunasUsuario = 7

// UsuarioStore persiste os operadores na aba usuarios.
type UsuarioStore struct {
	cli Client
}

// NovoUsuarioStore constrói o store sobre o client de planilha.
func NovoUsuarioStore(cli Client) *UsuarioStore {
	return &UsuarioStore{cli: cli}
}

func (s *UsuarioStore) Criar(ctx context.Context, usuario *entity.Usuario) error {
	valores := []any{
		usuario.ID,
		usuario.Nome,
		usuario.Login,
		usuario.SenhaHash,
		usuario.Role,
		usuario.Status,
		usuario.CriadoEm.Format(FormatoDataHora),
	}
	if err := s.cli.AcrescentarLinhas(ctx, AbaUsuarios, [][]any{valores}); err != nil {
		return &domain.ErroAcessoPlanilha{Operacao: "criar_usuario", Aba: AbaUsuarios, Etapa: "gravacao", Err: err}
	}
	return nil
}

func (s *UsuarioStore) BuscarPorLogin(ctx context.Context, login string) (*entity.Usuario, error) {
	brutas, err := s.cli.LerIntervalo(ctx, IntervaloDados(AbaUsuarios, colunasUsuario))
	if err != nil {
		return nil, &domain.ErroAcessoPlanilha{Operacao: "buscar_usuario", Aba: AbaUsuarios, Etapa: "leitura", Err: err}
	}
	alvo := strings.ToLower(strings.TrimSpace(login))
	for _, bruta := range brutas {
		if strings.ToLower(celula(bruta, 2)) != alvo {
			continue
		}
		return &entity.Usuario{
			ID:        celula(bruta, 0),
			Nome:      celula(bruta, 1),
			Login:     celula(bruta, 2),
			SenhaHash: celula(bruta, 3),
			Role:      celula(bruta, 4),
			Status:    celula(bruta, 5),
			CriadoEm:  parseDataHora(celula(bruta, 6)),
		}, nil
	}
	return nil, nil
}

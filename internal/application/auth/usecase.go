package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ravanini/estoque-api/internal/application/dto"
	"github.com/ravanini/estoque-api/internal/domain"
	"github.com/ravanini/estoque-api/internal/domain/entity"
	"github.com/ravanini/estoque-api/internal/domain/repository"
	"github.com/ravanini/estoque-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: cadastro e login de operadores.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// RegisterUser cria um operador: hasheia a senha com bcrypt e persiste.
// Devolve ErrLoginJaExiste se o login já está cadastrado.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Login == "" || in.Senha == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existente, err := uc.usuarioRepo.BuscarPorLogin(ctx, in.Login)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrLoginJaExiste
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nome := in.Nome
	if nome == "" {
		nome = in.Login
	}
	role := in.Role
	if role == "" {
		role = entity.RoleOperador
	}
	usuario := &entity.Usuario{
		ID:        uuid.New().String(),
		Nome:      nome,
		Login:     in.Login,
		SenhaHash: string(hash),
		Role:      role,
		Status:    "active",
		CriadoEm:  time.Now(),
	}
	if err := uc.usuarioRepo.Criar(ctx, usuario); err != nil {
		return nil, err
	}
	return toUserResponse(usuario), nil
}

// Login verifica login/senha, gera JWT e retorna token + operador.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.BuscarPorLogin(ctx, in.Login)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrNaoAutorizado
	}
	if usuario.Status != "active" {
		return nil, domain.ErrAcessoNegado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Nome, usuario.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(usuario)}, nil
}

func toUserResponse(u *entity.Usuario) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Nome:     u.Nome,
		Login:    u.Login,
		Role:     u.Role,
		Status:   u.Status,
		CriadoEm: u.CriadoEm,
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ravanini/estoque-api/internal/application/auth"
	"github.com/ravanini/estoque-api/internal/application/dto"
)

// AuthHandler expõe o login e o cadastro de operadores.
type AuthHandler struct {
	authUseCase *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(authUseCase *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// Login autentica um operador.
// @Summary Login de operador
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "JSON inválido"})
	}
	resp, err := h.authUseCase.Login(c.Context(), req)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(resp)
}

// Register cadastra um operador (rota de admin).
// @Summary Cadastro de operador
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterRequest true "Dados do operador"
// @Success 201 {object} dto.UserResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "JSON inválido"})
	}
	usuario, err := h.authUseCase.RegisterUser(c.Context(), req)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// Me devolve a identidade do token em uso.
// @Summary Operador autenticado
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"id":   GetUserID(c),
		"nome": GetNome(c),
		"role": GetRole(c),
	})
}

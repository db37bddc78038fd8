package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ravanini/estoque-api/internal/application/dto"
	"github.com/ravanini/estoque-api/internal/domain"
)

// respostaErro traduz os erros do domínio para status HTTP. Todos os
// handlers usam o mesmo mapa para o formulário reagir de forma uniforme.
func respostaErro(c *fiber.Ctx, err error) error {
	var parcial *domain.ErroCommitParcial
	if errors.As(err, &parcial) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:      "PARTIAL_COMMIT",
			Message:   parcial.Error(),
			Aplicados: parcial.Sucedidos,
		})
	}
	var acesso *domain.ErroAcessoPlanilha
	if errors.As(err, &acesso) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code:    "STORE_ACCESS",
			Message: "falha de acesso à planilha, tente novamente",
		})
	}
	switch {
	case errors.Is(err, domain.ErrEntradaInvalida), errors.Is(err, domain.ErrQuantidadeNegativa):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNaoEncontrado), errors.Is(err, domain.ErrUsuarioNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrNaoAutorizado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciais inválidas"})
	case errors.Is(err, domain.ErrAcessoNegado):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado"})
	case errors.Is(err, domain.ErrLoginJaExiste):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

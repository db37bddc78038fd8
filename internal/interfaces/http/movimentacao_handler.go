package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ravanini/estoque-api/internal/application/dto"
	"github.com/ravanini/estoque-api/internal/application/movimentacao"
)

// MovimentacaoHandler expõe o razão de saídas de expedição.
type MovimentacaoHandler struct {
	svc *movimentacao.Service
}

// NewMovimentacaoHandler constrói o handler de movimentações.
func NewMovimentacaoHandler(svc *movimentacao.Service) *MovimentacaoHandler {
	return &MovimentacaoHandler{svc: svc}
}

// Registrar cria uma movimentação de saída e debita o estoque.
// Não é idempotente: repetir o POST duplica a linha e o débito.
// @Summary Registrar saída
// @Tags movimentacoes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegistrarMovimentacaoRequest true "Movimentação"
// @Success 201 {object} entity.Movimentacao
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/movimentacoes [post]
func (h *MovimentacaoHandler) Registrar(c *fiber.Ctx) error {
	var req dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "JSON inválido"})
	}
	data, err := time.Parse(formatoData, req.Data)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data deve estar no formato 2006-01-02"})
	}
	mov, err := h.svc.Registrar(c.Context(), movimentacao.RegistrarInput{
		Data:       data,
		Cliente:    req.Cliente,
		Produto:    req.Produto,
		Observacao: req.Observacao,
		Meta:       req.Meta.ParaEntidade(),
		Realizado:  req.Realizado.ParaEntidade(),
		FotoURL:    req.FotoURL,
	})
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// Listar devolve as movimentações, do dia quando ?data= vem preenchido.
// @Summary Listar movimentações
// @Tags movimentacoes
// @Produce json
// @Security BearerAuth
// @Param data query string false "Dia no formato 2006-01-02"
// @Success 200 {array} entity.Movimentacao
// @Router /api/movimentacoes [get]
func (h *MovimentacaoHandler) Listar(c *fiber.Ctx) error {
	data := c.Query("data")
	if data == "" {
		movs, err := h.svc.Listar(c.Context())
		if err != nil {
			return respostaErro(c, err)
		}
		return c.JSON(movs)
	}
	if _, err := time.Parse(formatoData, data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data deve estar no formato 2006-01-02"})
	}
	movs, err := h.svc.ListarPorData(c.Context(), data)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(movs)
}

// Obter devolve uma movimentação pelo ID.
// @Summary Buscar movimentação
// @Tags movimentacoes
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da movimentação"
// @Success 200 {object} entity.Movimentacao
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/movimentacoes/{id} [get]
func (h *MovimentacaoHandler) Obter(c *fiber.Ctx) error {
	mov, err := h.svc.Obter(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(mov)
}

// AtualizarMeta edita meta e observação. Nunca mexe no realizado nem no
// snapshot de estoque.
// @Summary Editar meta da movimentação
// @Tags movimentacoes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da movimentação"
// @Param request body dto.AtualizarMetaRequest true "Nova meta"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/movimentacoes/{id}/meta [put]
func (h *MovimentacaoHandler) AtualizarMeta(c *fiber.Ctx) error {
	var req dto.AtualizarMetaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "JSON inválido"})
	}
	err := h.svc.AtualizarMeta(c.Context(), c.Params("id"), movimentacao.AtualizarMetaInput{
		Meta:       req.Meta.ParaEntidade(),
		Observacao: req.Observacao,
	})
	if err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Excluir estorna o realizado no estoque e remove a linha do razão.
// @Summary Excluir movimentação
// @Tags movimentacoes
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da movimentação"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/movimentacoes/{id} [delete]
func (h *MovimentacaoHandler) Excluir(c *fiber.Ctx) error {
	if err := h.svc.Excluir(c.Context(), c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

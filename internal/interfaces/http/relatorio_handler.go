package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ravanini/estoque-api/internal/application/relatorio"
)

// RelatorioHandler expõe o relatório impresso de estoque.
type RelatorioHandler struct {
	useCase *relatorio.UseCase
}

// NewRelatorioHandler constrói o handler de relatórios.
func NewRelatorioHandler(useCase *relatorio.UseCase) *RelatorioHandler {
	return &RelatorioHandler{useCase: useCase}
}

// EstoquePDF gera e baixa o PDF do estoque atual.
// @Summary Relatório de estoque em PDF
// @Tags relatorios
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} binary
// @Router /api/relatorios/estoque [get]
func (h *RelatorioHandler) EstoquePDF(c *fiber.Ctx) error {
	pdf, err := h.useCase.RelatorioEstoquePDF(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	nome := fmt.Sprintf("estoque-%s.pdf", time.Now().Format(formatoData))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(pdf)
}

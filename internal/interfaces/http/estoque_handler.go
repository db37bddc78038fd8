package http

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ravanini/estoque-api/internal/application/dto"
	"github.com/ravanini/estoque-api/internal/application/estoque"
)

const formatoData = "2006-01-02"

// EstoqueHandler expõe o snapshot de estoque e o fluxo de contagem.
type EstoqueHandler struct {
	svc *estoque.Service
}

// NewEstoqueHandler constrói o handler de estoque.
func NewEstoqueHandler(svc *estoque.Service) *EstoqueHandler {
	return &EstoqueHandler{svc: svc}
}

// ObterEstoqueCliente lista os snapshots do grupo do cliente.
// @Summary Estoque do cliente
// @Tags estoque
// @Produce json
// @Security BearerAuth
// @Param cliente path string true "Identidade do cliente"
// @Success 200 {array} entity.EstoqueAtual
// @Router /api/estoque/cliente/{cliente} [get]
func (h *EstoqueHandler) ObterEstoqueCliente(c *fiber.Ctx) error {
	cliente := urlParam(c, "cliente")
	if cliente == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente é obrigatório"})
	}
	grupo := h.svc.Grupos().Resolver(cliente)
	itens, err := h.svc.ObterEstoqueCliente(c.Context(), grupo)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(fiber.Map{"grupo": grupo, "itens": itens})
}

// ObterTodosEstoques devolve o dump completo de snapshots.
// @Summary Dump de estoque
// @Tags estoque
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.EstoqueAtual
// @Router /api/estoque [get]
func (h *EstoqueHandler) ObterTodosEstoques(c *fiber.Ctx) error {
	itens, err := h.svc.ObterTodosEstoques(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(itens)
}

// ObterTipoEstoque devolve o grupo configurado para o cliente.
// @Summary Grupo de estoque do cliente
// @Tags estoque
// @Produce json
// @Security BearerAuth
// @Param cliente path string true "Identidade do cliente"
// @Success 200 {object} map[string]interface{}
// @Router /api/estoque/tipo/{cliente} [get]
func (h *EstoqueHandler) ObterTipoEstoque(c *fiber.Ctx) error {
	cliente := urlParam(c, "cliente")
	if cliente == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente é obrigatório"})
	}
	grupo, mapeado := h.svc.ObterTipoEstoqueCliente(cliente)
	if !mapeado {
		// Fallback explícito: sem mapeamento, o grupo é o próprio cliente.
		grupo = cliente
	}
	return c.JSON(fiber.Map{"grupo": grupo, "mapeado": mapeado})
}

// ListarContagens devolve o log de contagens físicas.
// @Summary Log de contagens (auditoria)
// @Tags inventario
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.RegistroContagem
// @Router /api/contagens [get]
func (h *EstoqueHandler) ListarContagens(c *fiber.Ctx) error {
	registros, err := h.svc.ListarContagens(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(registros)
}

// AvaliarInventario roda o dry-run da contagem: diffs sem mutação.
// @Summary Avaliar contagem (dry-run)
// @Tags inventario
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AvaliarInventarioRequest true "Contagem"
// @Success 200 {object} estoque.ResultadoAvaliacao
// @Router /api/inventario/avaliar [post]
func (h *EstoqueHandler) AvaliarInventario(c *fiber.Ctx) error {
	var req dto.AvaliarInventarioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "JSON inválido"})
	}
	resultado, err := h.svc.AvaliarInventario(c.Context(), req.Grupo, paraItens(req.Itens))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(resultado)
}

// AplicarInventario comete a contagem: log de auditoria + sobrescrita dos
// snapshots. Em falha parcial responde 409 com a lista de itens já aplicados.
// @Summary Aplicar contagem
// @Tags inventario
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AplicarInventarioRequest true "Contagem"
// @Success 200 {object} estoque.ResultadoAplicacao
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/inventario/aplicar [post]
func (h *EstoqueHandler) AplicarInventario(c *fiber.Ctx) error {
	var req dto.AplicarInventarioRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "JSON inválido"})
	}
	data, err := time.Parse(formatoData, req.Data)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data deve estar no formato 2006-01-02"})
	}
	resultado, err := h.svc.AplicarInventario(c.Context(), estoque.AplicarInventarioInput{
		Data:  data,
		Grupo: req.Grupo,
		Itens: paraItens(req.Itens),
	})
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(resultado)
}

// AplicarDelta ajusta um snapshot pela soma algébrica do delta.
// @Summary Ajuste incremental de snapshot
// @Tags estoque
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeltaRequest true "Delta"
// @Success 200 {object} entity.EstoqueAtual
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/estoque/delta [post]
func (h *EstoqueHandler) AplicarDelta(c *fiber.Ctx) error {
	var req dto.DeltaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "JSON inválido"})
	}
	atualizado, err := h.svc.AplicarDelta(c.Context(), estoque.DeltaInput{
		Grupo:            req.Grupo,
		Produto:          req.Produto,
		Delta:            req.Delta.ParaEntidade(),
		PermitirNegativo: req.PermitirNegativo,
	})
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(atualizado)
}

// DefinirQuantidade sobrescreve um snapshot (correção administrativa).
// @Summary Sobrescrita de snapshot
// @Tags estoque
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DefinirQuantidadeRequest true "Quantidade absoluta"
// @Success 204
// @Router /api/estoque/quantidade [put]
func (h *EstoqueHandler) DefinirQuantidade(c *fiber.Ctx) error {
	var req dto.DefinirQuantidadeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "JSON inválido"})
	}
	if err := h.svc.DefinirQuantidadeAbsoluta(c.Context(), req.Grupo, req.Produto, req.Quantidade.ParaEntidade()); err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecarregarGrupos relê a tabela de apelidos de grupo da planilha.
// @Summary Recarregar mapeamentos de grupo
// @Tags estoque
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Router /api/estoque/grupos/recarregar [post]
func (h *EstoqueHandler) RecarregarGrupos(c *fiber.Ctx) error {
	if err := h.svc.Grupos().Recarregar(c.Context()); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(fiber.Map{"mapeamentos": h.svc.Grupos().Tamanho()})
}

func paraItens(itens []dto.ItemContagemDTO) []estoque.ItemContagem {
	out := make([]estoque.ItemContagem, 0, len(itens))
	for _, item := range itens {
		out = append(out, estoque.ItemContagem{
			Produto:    item.Produto,
			Quantidade: item.Quantidade.ParaEntidade(),
		})
	}
	return out
}

// urlParam decodifica um path param (nome de cliente com acento chega
// percent-encoded). Vazio fica a cargo do chamador.
func urlParam(c *fiber.Ctx, nome string) string {
	bruto := c.Params(nome)
	valor, err := url.PathUnescape(bruto)
	if err != nil {
		return bruto
	}
	return valor
}

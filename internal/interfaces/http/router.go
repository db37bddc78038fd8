package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ravanini/estoque-api/internal/application/auth"
	"github.com/ravanini/estoque-api/internal/application/estoque"
	"github.com/ravanini/estoque-api/internal/application/movimentacao"
	"github.com/ravanini/estoque-api/internal/application/relatorio"
	"github.com/ravanini/estoque-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	EstoqueSvc      *estoque.Service
	MovimentacaoSvc *movimentacao.Service
	RelatorioUC     *relatorio.UseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, cadastro só de admin.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (Bearer Token).
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/register", RequireRole(entity.RoleAdmin), authHandler.Register)

	// Snapshot de estoque + fluxo de contagem.
	estoqueHandler := NewEstoqueHandler(deps.EstoqueSvc)
	estoqueGroup := protected.Group("/estoque")
	estoqueGroup.Get("/", estoqueHandler.ObterTodosEstoques)
	estoqueGroup.Get("/cliente/:cliente", estoqueHandler.ObterEstoqueCliente)
	estoqueGroup.Get("/tipo/:cliente", estoqueHandler.ObterTipoEstoque)
	estoqueGroup.Post("/delta", estoqueHandler.AplicarDelta)
	estoqueGroup.Put("/quantidade", RequireRole(entity.RoleAdmin), estoqueHandler.DefinirQuantidade)
	estoqueGroup.Post("/grupos/recarregar", RequireRole(entity.RoleAdmin), estoqueHandler.RecarregarGrupos)

	inventario := protected.Group("/inventario")
	inventario.Post("/avaliar", estoqueHandler.AvaliarInventario)
	inventario.Post("/aplicar", estoqueHandler.AplicarInventario)
	protected.Get("/contagens", estoqueHandler.ListarContagens)

	// Razão de saídas de expedição.
	movHandler := NewMovimentacaoHandler(deps.MovimentacaoSvc)
	movs := protected.Group("/movimentacoes")
	movs.Post("/", movHandler.Registrar)
	movs.Get("/", movHandler.Listar)
	movs.Get("/:id", movHandler.Obter)
	movs.Put("/:id/meta", movHandler.AtualizarMeta)
	movs.Delete("/:id", RequireRole(entity.RoleAdmin), movHandler.Excluir)

	// Relatórios.
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	protected.Get("/relatorios/estoque", relatorioHandler.EstoquePDF)
}

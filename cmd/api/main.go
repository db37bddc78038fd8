package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/ravanini/estoque-api/internal/application/auth"
	"github.com/ravanini/estoque-api/internal/application/estoque"
	"github.com/ravanini/estoque-api/internal/application/movimentacao"
	"github.com/ravanini/estoque-api/internal/application/relatorio"
	infracache "github.com/ravanini/estoque-api/internal/infrastructure/cache"
	"github.com/ravanini/estoque-api/internal/infrastructure/notificacao"
	infrapdf "github.com/ravanini/estoque-api/internal/infrastructure/pdf"
	"github.com/ravanini/estoque-api/internal/infrastructure/planilha"
	httpRouter "github.com/ravanini/estoque-api/internal/interfaces/http"
	"github.com/ravanini/estoque-api/pkg/config"
	"github.com/ravanini/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()

	// Armazenamento tabular: pasta de trabalho em disco, ou em memória no
	// modo dev (PLANILHA_CAMINHO vazio).
	var cli planilha.Client
	if cfg.Planilha.Caminho == "" {
		log.Warn().Msg("PLANILHA_CAMINHO vazio, usando pasta de trabalho em memória (os dados não sobrevivem ao restart)")
		cli = planilha.NovoClienteMemoria(planilha.Cabecalhos())
	} else {
		excel, err := planilha.NovoExcelClient(cfg.Planilha.Caminho, planilha.Cabecalhos())
		if err != nil {
			log.Fatal().Err(err).Str("caminho", cfg.Planilha.Caminho).Msg("abrir pasta de trabalho")
		}
		defer excel.Fechar()
		cli = excel
	}

	estoqueRepo := planilha.NovoEstoqueStore(cli)
	contagemRepo := planilha.NovoContagemStore(cli)
	movRepo := planilha.NovoMovimentacaoStore(cli)
	grupoRepo := planilha.NovoGrupoStore(cli)
	usuarioRepo := planilha.NovoUsuarioStore(cli)

	grupos := estoque.NovoGrupoResolver(grupoRepo)
	if err := grupos.Recarregar(ctx); err != nil {
		log.Fatal().Err(err).Msg("carregar mapeamentos de grupo")
	}
	log.Info().Int("mapeamentos", grupos.Tamanho()).Msg("resolver de grupos carregado")

	// Cache de leitura do dump de estoque (opcional).
	var cache estoque.CacheEstoque
	if cfg.Redis.Habilitado {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ttl := time.Duration(cfg.Redis.TTLSegundos) * time.Second
		cache = infracache.NovoEstoqueCache(rdb, ttl, log)
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("cache Redis habilitado")
	}

	estoqueSvc := estoque.NovoService(estoqueRepo, contagemRepo, grupos, cache)

	// Aviso de expedição (opcional).
	var notificador movimentacao.Notificador
	if cfg.Notificacao.WebhookURL != "" {
		notificador = notificacao.NewWebhookNotificador(cfg.Notificacao.WebhookURL, cfg.Notificacao.Destino)
	}
	movSvc := movimentacao.NovoService(movRepo, estoqueSvc, notificador, log)

	relatorioUC := relatorio.NewUseCase(estoqueSvc, infrapdf.NewMarotoRelatorioGenerator())

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // geração de PDF pode demorar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": cfg.App.Name,
			"grupos":  grupos.Tamanho(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EstoqueSvc:      estoqueSvc,
		MovimentacaoSvc: movSvc,
		RelatorioUC:     relatorioUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

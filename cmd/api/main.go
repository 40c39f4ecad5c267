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

	"github.com/caucamais/MAIS-Platform/internal/application/dashboard"
	"github.com/caucamais/MAIS-Platform/internal/application/session"
	"github.com/caucamais/MAIS-Platform/internal/domain/territory"
	"github.com/caucamais/MAIS-Platform/internal/infrastructure/postgres"
	"github.com/caucamais/MAIS-Platform/internal/infrastructure/realtime"
	httpRouter "github.com/caucamais/MAIS-Platform/internal/interfaces/http"
	"github.com/caucamais/MAIS-Platform/pkg/config"
	"github.com/caucamais/MAIS-Platform/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient := realtime.NewClient(cfg.Redis)
	feed := realtime.NewFeed(redisClient, log)
	if err := feed.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}

	userRepo := postgres.NewUserRepository(pool)
	messageRepo := postgres.NewMessageRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)

	manager := session.NewManager(userRepo, messageRepo, financeRepo, feed, session.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	registry := territory.NewRegistry(cfg.Territory.Seed)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MAIS Cauca API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Manager:   manager,
		Dashboard: dashboard.NewService(registry),
		Registry:  registry,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	manager.CloseAll()
	if err := feed.Close(); err != nil {
		log.Error().Err(err).Msg("cierre del feed de tiempo real")
	}

	log.Info().Msg("aplicación detenida")
}

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

	"github.com/docscompta/docscompta-api/internal/application/auth"
	"github.com/docscompta/docscompta-api/internal/application/stats"
	"github.com/docscompta/docscompta-api/internal/application/usecase"
	infrapdf "github.com/docscompta/docscompta-api/internal/infrastructure/pdf"
	"github.com/docscompta/docscompta-api/internal/infrastructure/postgres"
	infrastorage "github.com/docscompta/docscompta-api/internal/infrastructure/storage"
	httpRouter "github.com/docscompta/docscompta-api/internal/interfaces/http"
	"github.com/docscompta/docscompta-api/pkg/config"
	"github.com/docscompta/docscompta-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	userRepo := postgres.NewUserRepository(pool)
	accountantRepo := postgres.NewAccountantRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	fileStorage, err := infrastorage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.PublicURL)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento de archivos")
	}
	thumbnails := infrastorage.NewNoopThumbnailGenerator()

	authUC := auth.NewAuthUseCase(userRepo, accountantRepo, companyRepo, txRunner, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, accountantRepo, companyRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, accountantRepo, notificationRepo, fileStorage, cfg.Upload.MaxPictureBytes)
	documentUC := usecase.NewDocumentUseCase(
		documentRepo, companyRepo, accountantRepo, notificationRepo,
		txRunner, fileStorage, thumbnails, cfg.Upload.MaxDocumentBytes,
		log.Zerolog(),
	)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	statsUC := stats.NewOverviewUseCase(statsRepo, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    int(cfg.Upload.MaxDocumentBytes) + 1<<20, // margen para el resto del multipart
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "DocsCompta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		CompanyUC:      companyUC,
		DocumentUC:     documentUC,
		NotificationUC: notificationUC,
		StatsUC:        statsUC,
		JWTSecret:      cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}

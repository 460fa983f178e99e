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

	"github.com/jhoicas/atelier-api/internal/application/calculator"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/atelier-api/internal/infrastructure/pdf"
	"github.com/jhoicas/atelier-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/atelier-api/internal/interfaces/http"
	"github.com/jhoicas/atelier-api/pkg/config"
	"github.com/jhoicas/atelier-api/pkg/logger"
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

	if err := postgres.Migrate(cfg.DB.ConnectionString(), cfg.DB.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewMaterialRepository(pool)
	channelRepo := postgres.NewChannelRepository(pool)
	pieceRepo := postgres.NewPieceRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	draftRepo := postgres.NewDraftRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	materialUC := usecase.NewMaterialUseCase(materialRepo)
	channelUC := usecase.NewChannelUseCase(channelRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	calculatorUC := calculator.NewUseCase(txRunner, materialRepo, channelRepo, pieceRepo, settingsRepo, draftRepo)

	// PDF: ficha de preço de la pieza guardada
	priceSheet := infrapdf.NewMarotoPriceSheet()
	pdfUC := calculator.NewPDFUseCase(pieceRepo, channelRepo, calculatorUC, priceSheet)

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
		Title:    "Atelier API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MaterialUC: materialUC,
		ChannelUC:  channelUC,
		SettingsUC: settingsUC,
		Calculator: calculatorUC,
		PriceSheet: pdfUC,
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

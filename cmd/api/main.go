package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/amethystakira/KiranaDash/internal/application/analytics"
	"github.com/amethystakira/KiranaDash/internal/application/backup"
	"github.com/amethystakira/KiranaDash/internal/application/forecast"
	"github.com/amethystakira/KiranaDash/internal/application/ledger"
	"github.com/amethystakira/KiranaDash/internal/application/ports"
	infraai "github.com/amethystakira/KiranaDash/internal/infrastructure/ai"
	"github.com/amethystakira/KiranaDash/internal/infrastructure/memory"
	infrapdf "github.com/amethystakira/KiranaDash/internal/infrastructure/pdf"
	httpRouter "github.com/amethystakira/KiranaDash/internal/interfaces/http"
	"github.com/amethystakira/KiranaDash/pkg/config"
	"github.com/amethystakira/KiranaDash/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store := memory.NewLedgerStore()
	if cfg.App.SeedDemo {
		store = memory.NewSeeded()
		log.Info().Msg("catálogo de demostración cargado")
	}

	// Proveedor remoto de pronósticos: sin clave, el servicio opera solo con
	// el generador local.
	var provider ports.ForecastProvider
	if cfg.Gemini.APIKey != "" {
		provider = infraai.NewGeminiForecaster(cfg.Gemini.APIKey, cfg.Gemini.Model)
		log.Info().Str("model", cfg.Gemini.Model).Msg("proveedor de pronósticos Gemini habilitado")
	} else {
		log.Warn().Msg("GEMINI_API_KEY no configurado, pronósticos solo con generador local")
	}

	reportGen := infrapdf.NewTrendsReportGenerator(cfg.App.Name)

	ledgerUC := ledger.NewUseCase(store)
	analyticsUC := analytics.NewUseCase(store, reportGen)
	forecastSvc := forecast.NewService(provider, store, log.Component("forecast"))
	backupUC := backup.NewUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:    ledgerUC,
		AnalyticsUC: analyticsUC,
		ForecastSvc: forecastSvc,
		BackupUC:    backupUC,
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

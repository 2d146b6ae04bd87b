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
	_ "github.com/jhoicas/taxtotals/docs"
	"github.com/jhoicas/taxtotals/internal/application/totals"
	"github.com/jhoicas/taxtotals/internal/domain/entity"
	"github.com/jhoicas/taxtotals/internal/domain/tax"
	httpRouter "github.com/jhoicas/taxtotals/internal/interfaces/http"
	"github.com/jhoicas/taxtotals/pkg/config"
	"github.com/jhoicas/taxtotals/pkg/logger"
)

// @title        Tax Totals API
// @version      1.0
// @description  Motor de cálculo de totales de impuestos: redondeo por línea o global, subtotales por nivel y redondeo de efectivo.
// @BasePath     /
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
		Str("rounding_method", cfg.Tax.DefaultRoundingMethod).
		Int("batch_workers", cfg.Tax.BatchWorkers).
		Msg("iniciando aplicación")

	totalsUC := totals.NewUseCase(tax.NewTotalsCalculatorService(), log, totals.Options{
		DefaultRoundingMethod: entity.RoundingMethod(cfg.Tax.DefaultRoundingMethod),
		BatchWorkers:          cfg.Tax.BatchWorkers,
		MaxBatchSize:          cfg.Tax.MaxBatchSize,
	})

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
		Title:    "Tax Totals API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TotalsUC: totalsUC,
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

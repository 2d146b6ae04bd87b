package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/taxtotals/internal/application/totals"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TotalsUC *totals.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Totals (público: cálculo puro, sin persistencia)
	totalsGroup := api.Group("/totals")
	totalsHandler := NewTotalsHandler(deps.TotalsUC)
	totalsGroup.Post("/", totalsHandler.Compute)
	totalsGroup.Post("/by-tax", totalsHandler.ComputeByTax)
	totalsGroup.Post("/batch", totalsHandler.ComputeBatch)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/taxtotals/internal/application/dto"
	"github.com/jhoicas/taxtotals/internal/application/totals"
	"github.com/jhoicas/taxtotals/internal/domain"
)

// TotalsHandler maneja las peticiones HTTP de cálculo de totales.
type TotalsHandler struct {
	uc *totals.UseCase
}

// NewTotalsHandler construye el handler.
func NewTotalsHandler(uc *totals.UseCase) *TotalsHandler {
	return &TotalsHandler{uc: uc}
}

// Compute godoc
// @Summary      Calcular totales de un documento
// @Tags         totals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TotalsRequest  true  "monedas, tasa, impuestos, grupos y líneas"
// @Success      200   {object}  dto.TotalsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/totals [post]
func (h *TotalsHandler) Compute(c *fiber.Ctx) error {
	var in dto.TotalsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ComputeTotals(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ComputeByTax godoc
// @Summary      Calcular totales por impuesto
// @Tags         totals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TotalsRequest  true  "monedas, tasa, impuestos, grupos y líneas"
// @Success      200   {object}  dto.PerTaxTotalsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/totals/by-tax [post]
func (h *TotalsHandler) ComputeByTax(c *fiber.Ctx) error {
	var in dto.TotalsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ComputeTaxTotals(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ComputeBatch godoc
// @Summary      Calcular totales de varios documentos
// @Tags         totals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchTotalsRequest  true  "documentos"
// @Success      200   {object}  dto.BatchTotalsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/totals/batch [post]
func (h *TotalsHandler) ComputeBatch(c *fiber.Ctx) error {
	var in dto.BatchTotalsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ComputeBatch(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrConfiguration):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CONFIGURATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

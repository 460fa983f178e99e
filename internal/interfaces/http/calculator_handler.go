package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/calculator"
	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain"
)

// CalculatorHandler maneja la cotización de la ficha en curso y el borrador
// persistente de la calculadora.
type CalculatorHandler struct {
	uc *calculator.UseCase
}

// NewCalculatorHandler construye el handler.
func NewCalculatorHandler(uc *calculator.UseCase) *CalculatorHandler {
	return &CalculatorHandler{uc: uc}
}

func recipeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "renglones con unidad soportada y display_unit de la misma familia"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "MATERIAL_NOT_FOUND", Message: "material de inventario no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Quote godoc
// @Summary      Cotizar la ficha en curso
// @Description  Devuelve el desglose de costos, el precio sugerido y la
// @Description  simulación sobre todos los canales registrados, sin persistir
// @Description  nada.
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Ficha en curso"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculator/quote [post]
func (h *CalculatorHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Quote(in)
	if err != nil {
		return recipeError(c, err)
	}
	return c.JSON(out)
}

// GetDraft godoc
// @Summary      Obtener borrador de la calculadora
// @Tags         calculator
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/calculator/draft [get]
func (h *CalculatorHandler) GetDraft(c *fiber.Ctx) error {
	out, err := h.uc.GetDraft()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SaveDraft godoc
// @Summary      Guardar borrador de la calculadora
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DraftRequest  true  "Borrador"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculator/draft [put]
func (h *CalculatorHandler) SaveDraft(c *fiber.Ctx) error {
	var in dto.DraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SaveDraft(in)
	if err != nil {
		return recipeError(c, err)
	}
	return c.JSON(out)
}

// ResetDraft godoc
// @Summary      Descartar borrador de la calculadora
// @Tags         calculator
// @Success      204
// @Router       /api/calculator/draft [delete]
func (h *CalculatorHandler) ResetDraft(c *fiber.Ctx) error {
	if err := h.uc.ResetDraft(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain/measure"
)

// UnitsHandler expone las unidades de medida soportadas y su conversión.
// No tiene caso de uso detrás: el paquete de medidas es puro.
type UnitsHandler struct{}

// NewUnitsHandler construye el handler.
func NewUnitsHandler() *UnitsHandler { return &UnitsHandler{} }

// List godoc
// @Summary      Listar unidades soportadas
// @Tags         units
// @Produce      json
// @Success      200  {object}  dto.UnitListResponse
// @Router       /api/units [get]
func (h *UnitsHandler) List(c *fiber.Ctx) error {
	all := measure.All()
	items := make([]dto.UnitResponse, 0, len(all))
	for _, u := range all {
		items = append(items, dto.UnitResponse{Unit: string(u), Label: measure.Label(u)})
	}
	return c.JSON(dto.UnitListResponse{Items: items})
}

// Compatible godoc
// @Summary      Unidades compatibles con una dada
// @Description  Devuelve la familia dimensional completa de la unidad, la
// @Description  menor primero. Para unidades de conteo devuelve solo la misma.
// @Tags         units
// @Produce      json
// @Param        unit  query  string  true  "Unidad de referencia"
// @Success      200   {object}  dto.UnitListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/units/compatible [get]
func (h *UnitsHandler) Compatible(c *fiber.Ctx) error {
	u := measure.Unit(c.Query("unit"))
	if !measure.Valid(u) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_UNIT", Message: "unit desconocida"})
	}
	family := measure.Compatible(u)
	items := make([]dto.UnitResponse, 0, len(family))
	for _, f := range family {
		items = append(items, dto.UnitResponse{Unit: string(f), Label: measure.Label(f)})
	}
	return c.JSON(dto.UnitListResponse{Items: items})
}

// Convert godoc
// @Summary      Convertir un valor entre unidades
// @Description  Entre unidades de la misma familia convierte de forma exacta;
// @Description  entre familias distintas devuelve el valor sin cambios.
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConvertRequest  true  "Valor y unidades"
// @Success      200   {object}  dto.ConvertResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/units/convert [post]
func (h *UnitsHandler) Convert(c *fiber.Ctx) error {
	var in dto.ConvertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	from, to := measure.Unit(in.From), measure.Unit(in.To)
	if !measure.Valid(from) || !measure.Valid(to) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_UNIT", Message: "from y to deben ser unidades soportadas"})
	}
	return c.JSON(dto.ConvertResponse{
		Value:     in.Value,
		From:      in.From,
		To:        in.To,
		Converted: measure.Convert(in.Value, from, to),
	})
}

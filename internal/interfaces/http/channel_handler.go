package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/domain"
)

// ChannelHandler maneja las peticiones HTTP para los canales de venta.
type ChannelHandler struct {
	uc *usecase.ChannelUseCase
}

// NewChannelHandler construye el handler.
func NewChannelHandler(uc *usecase.ChannelUseCase) *ChannelHandler {
	return &ChannelHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar canal de venta
// @Tags         channels
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChannelRequest  true  "Datos del canal"
// @Success      201   {object}  dto.ChannelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/channels [post]
func (h *ChannelHandler) Create(c *fiber.Ctx) error {
	var in dto.ChannelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name requerido; fee_percent en [0, 100) y fixed_fee no negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar canales de venta
// @Tags         channels
// @Produce      json
// @Success      200  {object}  dto.ChannelListResponse
// @Router       /api/channels [get]
func (h *ChannelHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar canal de venta
// @Tags         channels
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del canal"
// @Param        body  body  dto.ChannelRequest  true  "Datos del canal"
// @Success      200   {object}  dto.ChannelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/channels/{id} [put]
func (h *ChannelHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	var in dto.ChannelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name requerido; fee_percent en [0, 100) y fixed_fee no negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "canal no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar canal de venta
// @Tags         channels
// @Param        id  path  int  true  "ID del canal"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/channels/{id} [delete]
func (h *ChannelHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/atelier-api/internal/application/calculator"
	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain"
)

// PieceHandler maneja las peticiones HTTP para las piezas guardadas.
type PieceHandler struct {
	calc *calculator.UseCase
	pdf  *calculator.PDFUseCase
}

// NewPieceHandler construye el handler.
func NewPieceHandler(calc *calculator.UseCase, pdf *calculator.PDFUseCase) *PieceHandler {
	return &PieceHandler{calc: calc, pdf: pdf}
}

func parsePieceID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// Create godoc
// @Summary      Guardar pieza con precio calculado
// @Description  Calcula el precio con las tarifas vigentes, persiste la pieza
// @Description  y descuenta el stock de los materiales de inventario en una
// @Description  sola transacción.
// @Tags         pieces
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePieceRequest  true  "Ficha de la pieza"
// @Success      201   {object}  dto.PieceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pieces [post]
func (h *PieceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePieceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.calc.SavePiece(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name requerido y renglones con unidades compatibles"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "MATERIAL_NOT_FOUND", Message: "material de inventario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar piezas guardadas
// @Tags         pieces
// @Produce      json
// @Success      200  {object}  dto.PieceListResponse
// @Router       /api/pieces [get]
func (h *PieceHandler) List(c *fiber.Ctx) error {
	out, err := h.calc.ListPieces()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pieza por ID
// @Tags         pieces
// @Produce      json
// @Param        id   path  string  true  "ID de la pieza (UUID)"
// @Success      200  {object}  dto.PieceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pieces/{id} [get]
func (h *PieceHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parsePieceID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id UUID requerido"})
	}
	out, err := h.calc.GetPiece(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pieza no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pieza
// @Tags         pieces
// @Param        id  path  string  true  "ID de la pieza (UUID)"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pieces/{id} [delete]
func (h *PieceHandler) Delete(c *fiber.Ctx) error {
	id, ok := parsePieceID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id UUID requerido"})
	}
	if err := h.calc.DeletePiece(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Descargar ficha de preço en PDF
// @Description  La simulación de canales se calcula con los canales vigentes
// @Description  al momento de la descarga.
// @Tags         pieces
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la pieza (UUID)"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pieces/{id}/pdf [get]
func (h *PieceHandler) PDF(c *fiber.Ctx) error {
	id, ok := parsePieceID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id UUID requerido"})
	}
	data, err := h.pdf.Generate(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pieza no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ficha-`+id+`.pdf"`)
	return c.Send(data)
}

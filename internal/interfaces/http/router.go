package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/calculator"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialUC *usecase.MaterialUseCase
	ChannelUC  *usecase.ChannelUseCase
	SettingsUC *usecase.SettingsUseCase
	Calculator *calculator.UseCase
	PriceSheet *calculator.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Inventario de materiales
	materials := api.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", materialHandler.List)
	materials.Post("/", materialHandler.Create)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)

	// Canales de venta
	channels := api.Group("/channels")
	channelHandler := NewChannelHandler(deps.ChannelUC)
	channels.Get("/", channelHandler.List)
	channels.Post("/", channelHandler.Create)
	channels.Put("/:id", channelHandler.Update)
	channels.Delete("/:id", channelHandler.Delete)

	// Configuración del taller
	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Upsert)

	// Calculadora: cotización y borrador
	calc := api.Group("/calculator")
	calculatorHandler := NewCalculatorHandler(deps.Calculator)
	calc.Post("/quote", calculatorHandler.Quote)
	calc.Get("/draft", calculatorHandler.GetDraft)
	calc.Put("/draft", calculatorHandler.SaveDraft)
	calc.Delete("/draft", calculatorHandler.ResetDraft)

	// Piezas guardadas
	pieces := api.Group("/pieces")
	pieceHandler := NewPieceHandler(deps.Calculator, deps.PriceSheet)
	pieces.Get("/", pieceHandler.List)
	pieces.Post("/", pieceHandler.Create)
	pieces.Get("/:id", pieceHandler.GetByID)
	pieces.Delete("/:id", pieceHandler.Delete)
	pieces.Get("/:id/pdf", pieceHandler.PDF)

	// Unidades de medida
	units := api.Group("/units")
	unitsHandler := NewUnitsHandler()
	units.Get("/", unitsHandler.List)
	units.Get("/compatible", unitsHandler.Compatible)
	units.Post("/convert", unitsHandler.Convert)
}

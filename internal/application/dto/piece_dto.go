package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePieceRequest entrada para guardar una pieza desde la calculadora.
// Mismos campos que QuoteRequest más el nombre; al guardar se descuenta el
// stock de los materiales de inventario referenciados.
type CreatePieceRequest struct {
	Name          string                `json:"name" validate:"required,min=1,max=200"`
	Materials     []RecipeMaterialInput `json:"materials"`
	LaborHours    decimal.Decimal       `json:"labor_hours"`
	PackagingCost decimal.Decimal       `json:"packaging_cost"`
	ProfitMargin  *decimal.Decimal      `json:"profit_margin"`
}

// RecipeMaterialResponse renglón persistido de la receta. Quantity está en
// la unidad de almacenamiento; DisplayQuantity es la misma cantidad
// convertida a la unidad en la que el operador la capturó.
type RecipeMaterialResponse struct {
	ID              string          `json:"id"`
	MaterialID      *int64          `json:"material_id,omitempty"`
	Name            string          `json:"name"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	DisplayUnit     string          `json:"display_unit"`
	DisplayQuantity decimal.Decimal `json:"display_quantity"`
	FromInventory   bool            `json:"from_inventory"`
}

// PieceResponse salida de una pieza guardada.
type PieceResponse struct {
	ID             string                   `json:"id"`
	Name           string                   `json:"name"`
	Materials      []RecipeMaterialResponse `json:"materials"`
	LaborHours     decimal.Decimal          `json:"labor_hours"`
	PackagingCost  decimal.Decimal          `json:"packaging_cost"`
	ProfitMargin   decimal.Decimal          `json:"profit_margin"`
	ProductionCost decimal.Decimal          `json:"production_cost"`
	SuggestedPrice decimal.Decimal          `json:"suggested_price"`
	CreatedAt      time.Time                `json:"created_at"`
}

// PieceListResponse piezas guardadas, de la más reciente a la más antigua.
type PieceListResponse struct {
	Items []PieceResponse `json:"items"`
}

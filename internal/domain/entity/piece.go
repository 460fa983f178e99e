package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/atelier-api/internal/domain/measure"
)

// RecipeMaterial un renglón de la ficha técnica de una pieza.
// Quantity está siempre denominada en Unit (la unidad de almacenamiento del
// material, en la que está expresado UnitCost); DisplayUnit es la unidad en
// la que el operador capturó la cantidad y solo sirve para presentarla.
// Se serializa con tags JSON porque la receta se persiste como JSONB.
type RecipeMaterial struct {
	ID            string          `json:"id"`
	MaterialID    *int64          `json:"material_id,omitempty"`
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          measure.Unit    `json:"unit"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	DisplayUnit   measure.Unit    `json:"display_unit"`
	FromInventory bool            `json:"from_inventory"`
}

// Piece representa una pieza con precio calculado. Inmutable una vez
// guardada: editar es recalcular y volver a guardar.
type Piece struct {
	ID             string
	Name           string
	Materials      []RecipeMaterial
	LaborHours     decimal.Decimal
	PackagingCost  decimal.Decimal
	ProfitMargin   decimal.Decimal
	ProductionCost decimal.Decimal
	SuggestedPrice decimal.Decimal
	CreatedAt      time.Time
}

// StockConsumption cantidad a descontar del inventario por material.
type StockConsumption struct {
	MaterialID int64
	Quantity   decimal.Decimal
}

// Consumptions agrupa por material de inventario las cantidades consumidas
// por la receta (en unidad de almacenamiento). Los renglones manuales, sin
// MaterialID, no descuentan stock. El orden sigue la primera aparición.
func (p *Piece) Consumptions() []StockConsumption {
	totals := make(map[int64]decimal.Decimal)
	var order []int64
	for _, m := range p.Materials {
		if m.MaterialID == nil {
			continue
		}
		id := *m.MaterialID
		if _, seen := totals[id]; !seen {
			order = append(order, id)
		}
		totals[id] = totals[id].Add(m.Quantity)
	}
	out := make([]StockConsumption, 0, len(order))
	for _, id := range order {
		out = append(out, StockConsumption{MaterialID: id, Quantity: totals[id]})
	}
	return out
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/atelier-api/internal/domain/measure"
)

// Material representa un insumo catalogado del inventario del atelier.
// Cost, Stock y MinStock están denominados en Unit (unidad de almacenamiento).
type Material struct {
	ID        int64
	Name      string
	Cost      decimal.Decimal
	Unit      measure.Unit
	Stock     decimal.Decimal
	MinStock  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LowStock indica si el stock alcanzó el umbral de reposición.
func (m *Material) LowStock() bool {
	return m.Stock.LessThanOrEqual(m.MinStock)
}

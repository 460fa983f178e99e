package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialRequest entrada para crear o reemplazar un material de inventario.
// Stock y MinStock ausentes se tratan como cero.
type MaterialRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Cost     decimal.Decimal `json:"cost"`
	Unit     string          `json:"unit" validate:"required"`
	Stock    decimal.Decimal `json:"stock"`
	MinStock decimal.Decimal `json:"min_stock"`
}

// MaterialResponse salida de un material. LowStock indica que el stock
// alcanzó el umbral de reposición.
type MaterialResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Cost      decimal.Decimal `json:"cost"`
	Unit      string          `json:"unit"`
	UnitLabel string          `json:"unit_label"`
	Stock     decimal.Decimal `json:"stock"`
	MinStock  decimal.Decimal `json:"min_stock"`
	LowStock  bool            `json:"low_stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MaterialListResponse lista de materiales del inventario.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
}

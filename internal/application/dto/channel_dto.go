package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChannelRequest entrada para crear o reemplazar un canal de venta.
// FixedFee ausente se trata como cero. FeePercent debe estar en [0, 100):
// con 100% o más el precio del canal no tiene solución.
type ChannelRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	FeePercent decimal.Decimal `json:"fee_percent"`
	FixedFee   decimal.Decimal `json:"fixed_fee"`
}

// ChannelResponse salida de un canal de venta.
type ChannelResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	FeePercent decimal.Decimal `json:"fee_percent"`
	FixedFee   decimal.Decimal `json:"fixed_fee"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ChannelListResponse lista de canales de venta.
type ChannelListResponse struct {
	Items []ChannelResponse `json:"items"`
}

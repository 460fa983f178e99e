package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesChannel representa un canal de venta con su esquema de comisiones:
// porcentaje retenido por la plataforma y tarifa fija por transacción.
// Las piezas no referencian canales; la simulación usa los valores vigentes.
type SalesChannel struct {
	ID         int64
	Name       string
	FeePercent decimal.Decimal // [0, 100)
	FixedFee   decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

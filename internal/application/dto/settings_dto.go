package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsRequest entrada para guardar la configuración del taller.
// HoursPerMonth debe ser mayor que cero: es el divisor de ambas tarifas.
type SettingsRequest struct {
	ProLabore     decimal.Decimal `json:"pro_labore"`
	HoursPerMonth decimal.Decimal `json:"hours_per_month"`
	FixedCosts    decimal.Decimal `json:"fixed_costs"`
	Depreciation  decimal.Decimal `json:"depreciation"`
}

// SettingsResponse configuración vigente más las tarifas derivadas.
type SettingsResponse struct {
	ProLabore        decimal.Decimal `json:"pro_labore"`
	HoursPerMonth    decimal.Decimal `json:"hours_per_month"`
	FixedCosts       decimal.Decimal `json:"fixed_costs"`
	Depreciation     decimal.Decimal `json:"depreciation"`
	HourlyRate       decimal.Decimal `json:"hourly_rate"`
	FixedCostPerHour decimal.Decimal `json:"fixed_cost_per_hour"`
	UpdatedAt        *time.Time      `json:"updated_at,omitempty"`
}

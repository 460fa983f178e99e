package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings configuración única del taller: valores mensuales desde los que
// se derivan la tarifa horaria y el costo fijo por hora.
// Invariante: HoursPerMonth > 0 (la capa de aplicación rechaza otra cosa).
type Settings struct {
	ProLabore     decimal.Decimal
	HoursPerMonth decimal.Decimal
	FixedCosts    decimal.Decimal
	Depreciation  decimal.Decimal
	UpdatedAt     time.Time
}

// DefaultSettings valores iniciales antes de la primera configuración.
func DefaultSettings() *Settings {
	return &Settings{
		ProLabore:     decimal.NewFromInt(3000),
		HoursPerMonth: decimal.NewFromInt(160),
		FixedCosts:    decimal.NewFromInt(800),
		Depreciation:  decimal.NewFromInt(200),
	}
}

// CalculatorDraft borrador persistente de la calculadora: la ficha en curso
// del operador, para retomarla entre sesiones.
type CalculatorDraft struct {
	PieceName     string
	Materials     []RecipeMaterial
	LaborHours    decimal.Decimal
	PackagingCost decimal.Decimal
	ProfitMargin  decimal.Decimal
	UpdatedAt     time.Time
}

// DefaultDraft borrador vacío con margen de ganancia del 30%.
func DefaultDraft() *CalculatorDraft {
	return &CalculatorDraft{
		Materials:     []RecipeMaterial{},
		LaborHours:    decimal.Zero,
		PackagingCost: decimal.Zero,
		ProfitMargin:  decimal.NewFromInt(30),
	}
}

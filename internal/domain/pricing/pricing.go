// Package pricing implementa el motor de cálculo de precios del atelier:
// costo de producción de una pieza, precio sugerido con margen de ganancia,
// simulación de precio por canal de venta y derivación de tarifas horarias
// desde la configuración mensual del taller.
//
// Todas las funciones son puras y deterministas: no hay estado, I/O ni
// errores. Las precondiciones sobre divisores (horas mensuales > 0,
// comisión < 100%, costo de producción > 0 para el porcentaje neto) se
// validan en la capa de entrada; aquí los casos degenerados devuelven cero.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Line un renglón de la ficha técnica: cantidad ya denominada en la unidad
// de almacenamiento del material y costo por unidad de esa misma unidad.
// La conversión de unidad de presentación ocurre al capturar el dato, nunca
// dentro del cálculo.
type Line struct {
	Quantity decimal.Decimal
	UnitCost decimal.Decimal
}

// Breakdown desglose completo del cálculo de precio de una pieza.
type Breakdown struct {
	MaterialsCost  decimal.Decimal
	LaborCost      decimal.Decimal
	FixedCosts     decimal.Decimal
	ProductionCost decimal.Decimal
	ProfitAmount   decimal.Decimal
	SuggestedPrice decimal.Decimal
}

// Rates tarifas horarias derivadas de la configuración mensual.
type Rates struct {
	HourlyRate       decimal.Decimal
	FixedCostPerHour decimal.Decimal
}

// ChannelQuote resultado de simular una pieza en un canal de venta.
type ChannelQuote struct {
	ChannelPrice     decimal.Decimal
	NetProfit        decimal.Decimal
	NetProfitPercent decimal.Decimal
}

// Compute calcula el desglose de costos y el precio sugerido de una pieza.
//
//	materiales  = Σ cantidad × costo unitario
//	mano de obra = horas × tarifa horaria
//	costos fijos = horas × costo fijo por hora (prorrateo por tiempo)
//	producción   = materiales + mano de obra + fijos + embalaje
//	ganancia     = producción × margen / 100
//	sugerido     = producción + ganancia
func Compute(lines []Line, laborHours, packagingCost, profitMargin, hourlyRate, fixedCostPerHour decimal.Decimal) Breakdown {
	materials := decimal.Zero
	for _, l := range lines {
		materials = materials.Add(l.Quantity.Mul(l.UnitCost))
	}
	labor := laborHours.Mul(hourlyRate)
	fixed := laborHours.Mul(fixedCostPerHour)
	production := materials.Add(labor).Add(fixed).Add(packagingCost)
	profit := production.Mul(profitMargin).Div(hundred)

	return Breakdown{
		MaterialsCost:  materials,
		LaborCost:      labor,
		FixedCosts:     fixed,
		ProductionCost: production,
		ProfitAmount:   profit,
		SuggestedPrice: production.Add(profit),
	}
}

// DeriveRates deriva las tarifas horarias de la configuración mensual:
// pro labore / horas y (costos fijos + depreciación) / horas.
// Precondición: hoursPerMonth > 0 (la capa de configuración la garantiza);
// con horas no positivas devuelve tarifas en cero.
func DeriveRates(proLabore, hoursPerMonth, fixedCosts, depreciation decimal.Decimal) Rates {
	if !hoursPerMonth.IsPositive() {
		return Rates{HourlyRate: decimal.Zero, FixedCostPerHour: decimal.Zero}
	}
	return Rates{
		HourlyRate:       proLabore.Div(hoursPerMonth),
		FixedCostPerHour: fixedCosts.Add(depreciation).Div(hoursPerMonth),
	}
}

// SimulateChannel calcula el precio a publicar en un canal para que, tras
// descontar la comisión porcentual y la tarifa fija, el taller reciba
// exactamente el costo de producción:
//
//	precio = (producción + tarifa fija) / (1 - comisión/100)
//	neto   = precio - producción
//	neto%  = neto / producción × 100
//
// Precondición: feePercent en [0, 100) — se valida al crear el canal; con
// comisión ≥ 100 devuelve cotización en cero. El porcentaje neto es cero
// cuando el costo de producción es cero.
func SimulateChannel(productionCost, feePercent, fixedFee decimal.Decimal) ChannelQuote {
	keep := decimal.NewFromInt(1).Sub(feePercent.Div(hundred))
	if !keep.IsPositive() {
		return ChannelQuote{ChannelPrice: decimal.Zero, NetProfit: decimal.Zero, NetProfitPercent: decimal.Zero}
	}
	price := productionCost.Add(fixedFee).Div(keep)
	net := price.Sub(productionCost)

	percent := decimal.Zero
	if productionCost.IsPositive() {
		percent = net.Div(productionCost).Mul(hundred)
	}
	return ChannelQuote{ChannelPrice: price, NetProfit: net, NetProfitPercent: percent}
}

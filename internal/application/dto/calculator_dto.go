package dto

import "github.com/shopspring/decimal"

// RecipeMaterialInput un renglón de la ficha técnica tal como lo captura el
// operador. Quantity viene en DisplayUnit; la aplicación la convierte a la
// unidad de almacenamiento antes de calcular o persistir.
//
// Con MaterialID presente, Unit y UnitCost se resuelven desde el inventario
// y los del cuerpo se ignoran. Sin MaterialID es un renglón manual: Unit y
// UnitCost son obligatorios. DisplayUnit ausente equivale a Unit.
type RecipeMaterialInput struct {
	MaterialID  *int64          `json:"material_id,omitempty"`
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	DisplayUnit string          `json:"display_unit"`
}

// QuoteRequest entrada de la calculadora: la ficha en curso.
// ProfitMargin ausente equivale al 30% por defecto.
type QuoteRequest struct {
	Materials     []RecipeMaterialInput `json:"materials"`
	LaborHours    decimal.Decimal       `json:"labor_hours"`
	PackagingCost decimal.Decimal       `json:"packaging_cost"`
	ProfitMargin  *decimal.Decimal      `json:"profit_margin"`
}

// BreakdownResponse desglose de costos y precio sugerido.
type BreakdownResponse struct {
	MaterialsCost  decimal.Decimal `json:"materials_cost"`
	LaborCost      decimal.Decimal `json:"labor_cost"`
	FixedCosts     decimal.Decimal `json:"fixed_costs"`
	PackagingCost  decimal.Decimal `json:"packaging_cost"`
	ProductionCost decimal.Decimal `json:"production_cost"`
	ProfitAmount   decimal.Decimal `json:"profit_amount"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
}

// ChannelQuoteResponse simulación de la pieza en un canal de venta.
type ChannelQuoteResponse struct {
	ChannelID        int64           `json:"channel_id"`
	ChannelName      string          `json:"channel_name"`
	FeePercent       decimal.Decimal `json:"fee_percent"`
	FixedFee         decimal.Decimal `json:"fixed_fee"`
	ChannelPrice     decimal.Decimal `json:"channel_price"`
	NetProfit        decimal.Decimal `json:"net_profit"`
	NetProfitPercent decimal.Decimal `json:"net_profit_percent"`
}

// QuoteResponse salida de la calculadora: desglose, tarifas aplicadas y la
// simulación sobre todos los canales registrados.
type QuoteResponse struct {
	Breakdown        BreakdownResponse      `json:"breakdown"`
	HourlyRate       decimal.Decimal        `json:"hourly_rate"`
	FixedCostPerHour decimal.Decimal        `json:"fixed_cost_per_hour"`
	Channels         []ChannelQuoteResponse `json:"channels"`
}

// DraftRequest borrador de la calculadora a persistir.
type DraftRequest struct {
	PieceName     string                `json:"piece_name"`
	Materials     []RecipeMaterialInput `json:"materials"`
	LaborHours    decimal.Decimal       `json:"labor_hours"`
	PackagingCost decimal.Decimal       `json:"packaging_cost"`
	ProfitMargin  *decimal.Decimal      `json:"profit_margin"`
}

// DraftResponse borrador persistido, con las cantidades de vuelta en la
// unidad de presentación del operador.
type DraftResponse struct {
	PieceName     string                   `json:"piece_name"`
	Materials     []RecipeMaterialResponse `json:"materials"`
	LaborHours    decimal.Decimal          `json:"labor_hours"`
	PackagingCost decimal.Decimal          `json:"packaging_cost"`
	ProfitMargin  decimal.Decimal          `json:"profit_margin"`
}

// UnitResponse unidad soportada con su etiqueta de presentación.
type UnitResponse struct {
	Unit  string `json:"unit"`
	Label string `json:"label"`
}

// UnitListResponse lista de unidades.
type UnitListResponse struct {
	Items []UnitResponse `json:"items"`
}

// ConvertRequest entrada de conversión de unidades.
type ConvertRequest struct {
	Value decimal.Decimal `json:"value"`
	From  string          `json:"from"`
	To    string          `json:"to"`
}

// ConvertResponse resultado de la conversión. Entre familias incompatibles
// el valor regresa sin cambios (contrato del módulo de medidas).
type ConvertResponse struct {
	Value     decimal.Decimal `json:"value"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Converted decimal.Decimal `json:"converted"`
}

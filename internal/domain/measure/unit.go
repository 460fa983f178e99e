// Package measure implementa las unidades de medida del atelier y la
// conversión entre unidades de una misma familia dimensional.
//
// Familias: longitud {cm, m}, área {cm², m²}, masa {g, kg}, volumen {ml, l}
// y conteo {un}. La conversión entre familias distintas no está definida y
// devuelve el valor sin cambios: la interfaz debe ofrecer solo unidades
// compatibles (ver Compatible).
package measure

import "github.com/shopspring/decimal"

// Unit unidad de medida soportada (etiqueta cerrada, no texto libre).
type Unit string

const (
	Centimeter       Unit = "cm"
	Meter            Unit = "m"
	SquareCentimeter Unit = "cm²"
	SquareMeter      Unit = "m²"
	Piece            Unit = "un"
	Kilogram         Unit = "kg"
	Gram             Unit = "g"
	Liter            Unit = "l"
	Milliliter       Unit = "ml"
)

// family familia dimensional de una unidad.
type family int

const (
	famLength family = iota
	famArea
	famMass
	famVolume
	famCount
)

// unitInfo familia y factor hacia la unidad canónica de esa familia
// (longitud → cm, área → cm², masa → g, volumen → ml).
type unitInfo struct {
	fam    family
	factor decimal.Decimal
}

var one = decimal.NewFromInt(1)

var units = map[Unit]unitInfo{
	Centimeter:       {famLength, one},
	Meter:            {famLength, decimal.NewFromInt(100)},
	SquareCentimeter: {famArea, one},
	SquareMeter:      {famArea, decimal.NewFromInt(10000)},
	Gram:             {famMass, one},
	Kilogram:         {famMass, decimal.NewFromInt(1000)},
	Milliliter:       {famVolume, one},
	Liter:            {famVolume, decimal.NewFromInt(1000)},
	Piece:            {famCount, one},
}

// families unidades por familia, ordenadas de menor a mayor para la interfaz.
var families = map[family][]Unit{
	famLength: {Centimeter, Meter},
	famArea:   {SquareCentimeter, SquareMeter},
	famMass:   {Gram, Kilogram},
	famVolume: {Milliliter, Liter},
	famCount:  {Piece},
}

// labels etiquetas para la interfaz del atelier (mercado brasileño).
var labels = map[Unit]string{
	Centimeter:       "cm (centímetros)",
	Meter:            "m (metros)",
	SquareCentimeter: "cm² (centímetros quadrados)",
	SquareMeter:      "m² (metros quadrados)",
	Piece:            "un (unidades)",
	Kilogram:         "kg (quilogramas)",
	Gram:             "g (gramas)",
	Liter:            "l (litros)",
	Milliliter:       "ml (mililitros)",
}

// All devuelve las unidades soportadas en orden estable de presentación.
func All() []Unit {
	return []Unit{
		Centimeter, Meter,
		SquareCentimeter, SquareMeter,
		Piece,
		Kilogram, Gram,
		Liter, Milliliter,
	}
}

// Valid indica si u es una de las unidades soportadas.
func Valid(u Unit) bool {
	_, ok := units[u]
	return ok
}

// Convert convierte value de la unidad from a la unidad to pasando por la
// unidad canónica de la familia. Si las unidades no pertenecen a la misma
// familia (o alguna es desconocida o de conteo) devuelve value sin cambios;
// por contrato nunca retorna error.
func Convert(value decimal.Decimal, from, to Unit) decimal.Decimal {
	if from == to {
		return value
	}
	f, okFrom := units[from]
	t, okTo := units[to]
	if !okFrom || !okTo || f.fam != t.fam || f.fam == famCount {
		return value
	}
	return value.Mul(f.factor).Div(t.factor)
}

// Compatible devuelve la familia completa de u en orden fijo (unidad menor
// primero), o solo {u} si u es de conteo o desconocida. Restringe las
// opciones de unidad que la interfaz puede ofrecer al operador.
func Compatible(u Unit) []Unit {
	info, ok := units[u]
	if !ok {
		return []Unit{u}
	}
	fam := families[info.fam]
	out := make([]Unit, len(fam))
	copy(out, fam)
	return out
}

// Label etiqueta de presentación de la unidad; si es desconocida devuelve
// el propio tag.
func Label(u Unit) string {
	if l, ok := labels[u]; ok {
		return l
	}
	return string(u)
}

// Package pdf implementa la ficha técnica de precios de una pieza en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la pieza  │  Fecha de guardado           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECETA: Cant | Material | Custo Unit | Subtotal             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUSTOS: producción / margen / precio sugerido               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CANAIS: Canal | Preço | Lucro líquido | Margem real         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/atelier-api/internal/application/calculator"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/measure"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 136, Green: 84, Blue: 208}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPriceSheet implementa calculator.PriceSheetGenerator usando Maroto v2.
type MarotoPriceSheet struct{}

// NewMarotoPriceSheet construye el generador.
func NewMarotoPriceSheet() *MarotoPriceSheet { return &MarotoPriceSheet{} }

var _ calculator.PriceSheetGenerator = (*MarotoPriceSheet)(nil)

// GeneratePriceSheet genera la ficha de la pieza y devuelve sus bytes.
func (g *MarotoPriceSheet) GeneratePriceSheet(
	_ context.Context,
	piece *entity.Piece,
	channels []calculator.ChannelSim,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de Preço - "+piece.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(piece))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Receta de materiales
	m.AddRows(recipeHeaderRow())
	for _, r := range recipeRows(piece.Materials) {
		m.AddRows(r)
	}

	// Resumen de costos
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(costSummaryRow(piece))

	// Simulación por canal
	if len(channels) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(channelHeaderRow())
		for _, r := range channelRows(channels) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la pieza (izq) y fecha de guardado (der).
func headerRow(piece *entity.Piece) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(piece.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ficha de Preço", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Salva em: "+piece.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// recipeHeaderRow: cabecera de la tabla de materiales.
func recipeHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 2, align.Center),
		h("Material", 5, align.Left),
		h("Custo Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// recipeRows: una fila por renglón de la receta, con la cantidad en la
// unidad en la que el operador la capturó.
func recipeRows(materials []entity.RecipeMaterial) []core.Row {
	result := make([]core.Row, 0, len(materials))
	for _, rm := range materials {
		displayQty := measure.Convert(rm.Quantity, rm.Unit, rm.DisplayUnit)
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				displayQty.String()+" "+string(rm.DisplayUnit),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				rm.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(rm.UnitCost.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+formatMoney(rm.Quantity.Mul(rm.UnitCost).StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// costSummaryRow: bloque de costos alineado a la derecha.
func costSummaryRow(piece *entity.Piece) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Custo de produção:"),
			label("Margem de lucro:"),
			grandLabel("PREÇO SUGERIDO:"),
		),
		col.New(4).Add(
			value("R$ "+formatMoney(piece.ProductionCost.StringFixed(2))),
			value(piece.ProfitMargin.String()+"%"),
			grandValue("R$ "+formatMoney(piece.SuggestedPrice.StringFixed(2))),
		),
		col.New(1),
	)
}

// channelHeaderRow: cabecera de la simulación por canal de venta.
func channelHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Canal de venda", 5, align.Left),
		h("Preço", 3, align.Right),
		h("Lucro líquido", 2, align.Right),
		h("Margem real", 2, align.Right),
	)
}

// channelRows: una fila por canal con su cotización.
func channelRows(channels []calculator.ChannelSim) []core.Row {
	result := make([]core.Row, 0, len(channels))
	for _, c := range channels {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				c.Channel.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+formatMoney(c.Quote.ChannelPrice.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(c.Quote.NetProfit.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				c.Quote.NetProfitPercent.StringFixed(1)+"%",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney convierte un string numérico con punto decimal al formato
// brasileño: "1234.56" → "1.234,56".
func formatMoney(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+4)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 && intPart[i-1] != '-' {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	if hasFrac {
		buf = append(buf, ',')
		buf = append(buf, fracPart...)
	}
	return string(buf)
}

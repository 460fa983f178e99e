package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/measure"
)

func ptr(v int64) *int64 { return &v }

// TestConsumptions agrupa por material de inventario y omite los renglones
// manuales; el orden sigue la primera aparición en la receta.
func TestConsumptions(t *testing.T) {
	piece := &entity.Piece{
		Materials: []entity.RecipeMaterial{
			{MaterialID: ptr(2), Quantity: decimal.NewFromInt(3), Unit: measure.Meter},
			{Name: "Botão avulso", Quantity: decimal.NewFromInt(4), Unit: measure.Piece},
			{MaterialID: ptr(5), Quantity: decimal.NewFromInt(1), Unit: measure.Meter},
			{MaterialID: ptr(2), Quantity: decimal.NewFromInt(2), Unit: measure.Meter},
		},
	}

	got := piece.Consumptions()
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].MaterialID)
	assert.Equal(t, "5", got[0].Quantity.String())
	assert.Equal(t, int64(5), got[1].MaterialID)
	assert.Equal(t, "1", got[1].Quantity.String())
}

func TestConsumptions_SinInventario(t *testing.T) {
	piece := &entity.Piece{
		Materials: []entity.RecipeMaterial{
			{Name: "Retalho", Quantity: decimal.NewFromInt(1), Unit: measure.Piece},
		},
	}
	assert.Empty(t, piece.Consumptions())
}

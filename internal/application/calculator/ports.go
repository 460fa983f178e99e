package calculator

import (
	"context"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/pricing"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que guardar la pieza y descontar
// el stock ocurran de forma atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		pieceRepo repository.PieceRepository,
		materialRepo repository.MaterialRepository,
	) error) error
}

// ChannelSim canal con su cotización simulada, para la ficha en PDF.
type ChannelSim struct {
	Channel *entity.SalesChannel
	Quote   pricing.ChannelQuote
}

// PriceSheetGenerator genera la ficha técnica de una pieza en PDF.
type PriceSheetGenerator interface {
	GeneratePriceSheet(ctx context.Context, piece *entity.Piece, channels []ChannelSim) ([]byte, error)
}

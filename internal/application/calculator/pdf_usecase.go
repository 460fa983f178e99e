package calculator

import (
	"context"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

// PDFUseCase genera la ficha técnica en PDF de una pieza guardada, con la
// simulación de canales calculada sobre los canales vigentes al momento de
// la descarga.
type PDFUseCase struct {
	pieceRepo   repository.PieceRepository
	channelRepo repository.ChannelRepository
	calc        *UseCase
	generator   PriceSheetGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(pieceRepo repository.PieceRepository, channelRepo repository.ChannelRepository, calc *UseCase, generator PriceSheetGenerator) *PDFUseCase {
	return &PDFUseCase{
		pieceRepo:   pieceRepo,
		channelRepo: channelRepo,
		calc:        calc,
		generator:   generator,
	}
}

// Generate devuelve los bytes del PDF de la pieza, o ErrNotFound.
func (uc *PDFUseCase) Generate(ctx context.Context, pieceID string) ([]byte, error) {
	piece, err := uc.pieceRepo.GetByID(pieceID)
	if err != nil {
		return nil, err
	}
	if piece == nil {
		return nil, domain.ErrNotFound
	}
	sims, err := uc.calc.simulateAll(piece.ProductionCost)
	if err != nil {
		return nil, err
	}
	return uc.generator.GeneratePriceSheet(ctx, piece, sims)
}

package calculator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/measure"
	"github.com/jhoicas/atelier-api/internal/domain/pricing"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var defaultMargin = decimal.NewFromInt(30)

// UseCase orquesta la calculadora de precios: cotiza fichas en curso,
// guarda piezas descontando stock de forma transaccional y administra el
// borrador persistente.
//
// La conversión de unidades ocurre una sola vez, al resolver la ficha:
// las cantidades entran en la unidad de presentación del operador y se
// almacenan siempre en la unidad de almacenamiento del material.
type UseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	channelRepo  repository.ChannelRepository
	pieceRepo    repository.PieceRepository
	settingsRepo repository.SettingsRepository
	draftRepo    repository.DraftRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	materialRepo repository.MaterialRepository,
	channelRepo repository.ChannelRepository,
	pieceRepo repository.PieceRepository,
	settingsRepo repository.SettingsRepository,
	draftRepo repository.DraftRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		materialRepo: materialRepo,
		channelRepo:  channelRepo,
		pieceRepo:    pieceRepo,
		settingsRepo: settingsRepo,
		draftRepo:    draftRepo,
	}
}

// resolveRecipe valida los renglones capturados y los lleva a la unidad de
// almacenamiento. Con MaterialID presente, la unidad y el costo unitario
// se toman del inventario; la unidad de presentación debe pertenecer a la
// misma familia dimensional que la de almacenamiento.
func (uc *UseCase) resolveRecipe(inputs []dto.RecipeMaterialInput) ([]entity.RecipeMaterial, error) {
	out := make([]entity.RecipeMaterial, 0, len(inputs))
	for _, in := range inputs {
		line := entity.RecipeMaterial{
			ID:       uuid.New().String(),
			Name:     in.Name,
			UnitCost: in.UnitCost,
		}
		if in.MaterialID != nil {
			material, err := uc.materialRepo.GetByID(*in.MaterialID)
			if err != nil {
				return nil, err
			}
			if material == nil {
				return nil, domain.ErrNotFound
			}
			id := *in.MaterialID
			line.MaterialID = &id
			line.Unit = material.Unit
			line.UnitCost = material.Cost
			line.FromInventory = true
			if line.Name == "" {
				line.Name = material.Name
			}
		} else {
			line.Unit = measure.Unit(in.Unit)
			if !measure.Valid(line.Unit) {
				return nil, domain.ErrInvalidInput
			}
		}

		line.DisplayUnit = measure.Unit(in.DisplayUnit)
		if line.DisplayUnit == "" {
			line.DisplayUnit = line.Unit
		}
		if !sameFamily(line.Unit, line.DisplayUnit) {
			return nil, domain.ErrInvalidInput
		}
		line.Quantity = measure.Convert(in.Quantity, line.DisplayUnit, line.Unit)
		out = append(out, line)
	}
	return out, nil
}

func sameFamily(a, b measure.Unit) bool {
	for _, u := range measure.Compatible(a) {
		if u == b {
			return true
		}
	}
	return false
}

func (uc *UseCase) currentRates() (pricing.Rates, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return pricing.Rates{}, err
	}
	if settings == nil {
		settings = entity.DefaultSettings()
	}
	return pricing.DeriveRates(settings.ProLabore, settings.HoursPerMonth, settings.FixedCosts, settings.Depreciation), nil
}

func marginOrDefault(m *decimal.Decimal) decimal.Decimal {
	if m == nil {
		return defaultMargin
	}
	return *m
}

func toLines(materials []entity.RecipeMaterial) []pricing.Line {
	lines := make([]pricing.Line, 0, len(materials))
	for _, m := range materials {
		lines = append(lines, pricing.Line{Quantity: m.Quantity, UnitCost: m.UnitCost})
	}
	return lines
}

// Quote cotiza la ficha en curso: desglose con las tarifas vigentes y
// simulación sobre todos los canales registrados.
func (uc *UseCase) Quote(in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	materials, err := uc.resolveRecipe(in.Materials)
	if err != nil {
		return nil, err
	}
	rates, err := uc.currentRates()
	if err != nil {
		return nil, err
	}
	margin := marginOrDefault(in.ProfitMargin)
	breakdown := pricing.Compute(toLines(materials), in.LaborHours, in.PackagingCost, margin, rates.HourlyRate, rates.FixedCostPerHour)

	sims, err := uc.simulateAll(breakdown.ProductionCost)
	if err != nil {
		return nil, err
	}
	return &dto.QuoteResponse{
		Breakdown:        toBreakdownResponse(breakdown, in.PackagingCost),
		HourlyRate:       rates.HourlyRate,
		FixedCostPerHour: rates.FixedCostPerHour,
		Channels:         toChannelQuoteResponses(sims),
	}, nil
}

func (uc *UseCase) simulateAll(productionCost decimal.Decimal) ([]ChannelSim, error) {
	channels, err := uc.channelRepo.List()
	if err != nil {
		return nil, err
	}
	sims := make([]ChannelSim, 0, len(channels))
	for _, c := range channels {
		sims = append(sims, ChannelSim{
			Channel: c,
			Quote:   pricing.SimulateChannel(productionCost, c.FeePercent, c.FixedFee),
		})
	}
	return sims, nil
}

// SavePiece calcula la pieza con las tarifas vigentes y la persiste junto
// con el descuento de stock en una sola transacción. El stock descontado
// queda acotado a cero; los renglones manuales no descuentan nada.
func (uc *UseCase) SavePiece(ctx context.Context, in dto.CreatePieceRequest) (*dto.PieceResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	materials, err := uc.resolveRecipe(in.Materials)
	if err != nil {
		return nil, err
	}
	rates, err := uc.currentRates()
	if err != nil {
		return nil, err
	}
	margin := marginOrDefault(in.ProfitMargin)
	breakdown := pricing.Compute(toLines(materials), in.LaborHours, in.PackagingCost, margin, rates.HourlyRate, rates.FixedCostPerHour)

	piece := &entity.Piece{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Materials:      materials,
		LaborHours:     in.LaborHours,
		PackagingCost:  in.PackagingCost,
		ProfitMargin:   margin,
		ProductionCost: breakdown.ProductionCost,
		SuggestedPrice: breakdown.SuggestedPrice,
		CreatedAt:      time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(pieceRepo repository.PieceRepository, materialRepo repository.MaterialRepository) error {
		if err := pieceRepo.Create(piece); err != nil {
			return err
		}
		return materialRepo.DeductStock(piece.Consumptions())
	})
	if err != nil {
		return nil, err
	}
	return toPieceResponse(piece), nil
}

// ListPieces lista las piezas guardadas, la más reciente primero.
func (uc *UseCase) ListPieces() (*dto.PieceListResponse, error) {
	list, err := uc.pieceRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PieceResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPieceResponse(p))
	}
	return &dto.PieceListResponse{Items: items}, nil
}

// GetPiece obtiene una pieza por id; nil si no existe.
func (uc *UseCase) GetPiece(id string) (*dto.PieceResponse, error) {
	piece, err := uc.pieceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if piece == nil {
		return nil, nil
	}
	return toPieceResponse(piece), nil
}

// DeletePiece elimina una pieza por id.
func (uc *UseCase) DeletePiece(id string) error {
	return uc.pieceRepo.Delete(id)
}

// ── Mappers ──────────────────────────────────────────────────────────────────

func toBreakdownResponse(b pricing.Breakdown, packagingCost decimal.Decimal) dto.BreakdownResponse {
	return dto.BreakdownResponse{
		MaterialsCost:  b.MaterialsCost,
		LaborCost:      b.LaborCost,
		FixedCosts:     b.FixedCosts,
		PackagingCost:  packagingCost,
		ProductionCost: b.ProductionCost,
		ProfitAmount:   b.ProfitAmount,
		SuggestedPrice: b.SuggestedPrice,
	}
}

func toChannelQuoteResponses(sims []ChannelSim) []dto.ChannelQuoteResponse {
	out := make([]dto.ChannelQuoteResponse, 0, len(sims))
	for _, s := range sims {
		out = append(out, dto.ChannelQuoteResponse{
			ChannelID:        s.Channel.ID,
			ChannelName:      s.Channel.Name,
			FeePercent:       s.Channel.FeePercent,
			FixedFee:         s.Channel.FixedFee,
			ChannelPrice:     s.Quote.ChannelPrice,
			NetProfit:        s.Quote.NetProfit,
			NetProfitPercent: s.Quote.NetProfitPercent,
		})
	}
	return out
}

// toRecipeMaterialResponses toda lectura hacia la interfaz devuelve la
// cantidad también en la unidad de presentación (conversión inversa).
func toRecipeMaterialResponses(materials []entity.RecipeMaterial) []dto.RecipeMaterialResponse {
	out := make([]dto.RecipeMaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, dto.RecipeMaterialResponse{
			ID:              m.ID,
			MaterialID:      m.MaterialID,
			Name:            m.Name,
			Quantity:        m.Quantity,
			Unit:            string(m.Unit),
			UnitCost:        m.UnitCost,
			DisplayUnit:     string(m.DisplayUnit),
			DisplayQuantity: measure.Convert(m.Quantity, m.Unit, m.DisplayUnit),
			FromInventory:   m.FromInventory,
		})
	}
	return out
}

func toPieceResponse(p *entity.Piece) *dto.PieceResponse {
	if p == nil {
		return nil
	}
	return &dto.PieceResponse{
		ID:             p.ID,
		Name:           p.Name,
		Materials:      toRecipeMaterialResponses(p.Materials),
		LaborHours:     p.LaborHours,
		PackagingCost:  p.PackagingCost,
		ProfitMargin:   p.ProfitMargin,
		ProductionCost: p.ProductionCost,
		SuggestedPrice: p.SuggestedPrice,
		CreatedAt:      p.CreatedAt,
	}
}

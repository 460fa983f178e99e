package calculator_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/application/calculator"
	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/measure"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ── Fakes en memoria ─────────────────────────────────────────────────────────

type fakeMaterialRepo struct {
	materials map[int64]*entity.Material
}

func (f *fakeMaterialRepo) Create(m *entity.Material) (*entity.Material, error) {
	f.materials[m.ID] = m
	return m, nil
}
func (f *fakeMaterialRepo) GetByID(id int64) (*entity.Material, error) {
	m, ok := f.materials[id]
	if !ok {
		return nil, nil
	}
	clone := *m
	return &clone, nil
}
func (f *fakeMaterialRepo) List() ([]*entity.Material, error) { return nil, nil }
func (f *fakeMaterialRepo) Update(m *entity.Material) error   { return nil }
func (f *fakeMaterialRepo) Delete(id int64) error             { return nil }
func (f *fakeMaterialRepo) DeductStock(consumptions []entity.StockConsumption) error {
	for _, c := range consumptions {
		m, ok := f.materials[c.MaterialID]
		if !ok {
			continue
		}
		m.Stock = m.Stock.Sub(c.Quantity)
		if m.Stock.IsNegative() {
			m.Stock = decimal.Zero
		}
	}
	return nil
}

type fakeChannelRepo struct {
	channels []*entity.SalesChannel
}

func (f *fakeChannelRepo) Create(c *entity.SalesChannel) (*entity.SalesChannel, error) {
	f.channels = append(f.channels, c)
	return c, nil
}
func (f *fakeChannelRepo) GetByID(id int64) (*entity.SalesChannel, error) { return nil, nil }
func (f *fakeChannelRepo) List() ([]*entity.SalesChannel, error)          { return f.channels, nil }
func (f *fakeChannelRepo) Update(c *entity.SalesChannel) error            { return nil }
func (f *fakeChannelRepo) Delete(id int64) error                          { return nil }

type fakePieceRepo struct {
	pieces []*entity.Piece
}

func (f *fakePieceRepo) Create(p *entity.Piece) error { f.pieces = append(f.pieces, p); return nil }
func (f *fakePieceRepo) GetByID(id string) (*entity.Piece, error) {
	for _, p := range f.pieces {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakePieceRepo) List() ([]*entity.Piece, error) { return f.pieces, nil }
func (f *fakePieceRepo) Delete(id string) error         { return nil }

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func (f *fakeSettingsRepo) Get() (*entity.Settings, error)  { return f.settings, nil }
func (f *fakeSettingsRepo) Upsert(s *entity.Settings) error { f.settings = s; return nil }

type fakeDraftRepo struct {
	draft *entity.CalculatorDraft
}

func (f *fakeDraftRepo) Get() (*entity.CalculatorDraft, error)  { return f.draft, nil }
func (f *fakeDraftRepo) Upsert(d *entity.CalculatorDraft) error { f.draft = d; return nil }
func (f *fakeDraftRepo) Delete() error                          { f.draft = nil; return nil }

type fakeTxRunner struct {
	pieceRepo    repository.PieceRepository
	materialRepo repository.MaterialRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.PieceRepository, repository.MaterialRepository) error) error {
	return fn(f.pieceRepo, f.materialRepo)
}

// ── Armado ───────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *calculator.UseCase
	materials *fakeMaterialRepo
	channels  *fakeChannelRepo
	pieces    *fakePieceRepo
	settings  *fakeSettingsRepo
	drafts    *fakeDraftRepo
}

func newFixture() *fixture {
	materials := &fakeMaterialRepo{materials: map[int64]*entity.Material{
		2: {ID: 2, Name: "Tecido de Algodão", Cost: d("2"), Unit: measure.Meter, Stock: d("15"), MinStock: d("5")},
	}}
	channels := &fakeChannelRepo{channels: []*entity.SalesChannel{
		{ID: 1, Name: "Venda Direta", FeePercent: d("0"), FixedFee: d("0")},
		{ID: 4, Name: "Mercado Livre", FeePercent: d("15"), FixedFee: d("0")},
	}}
	pieces := &fakePieceRepo{}
	settings := &fakeSettingsRepo{}
	drafts := &fakeDraftRepo{}
	tx := &fakeTxRunner{pieceRepo: pieces, materialRepo: materials}

	return &fixture{
		uc:        calculator.NewUseCase(tx, materials, channels, pieces, settings, drafts),
		materials: materials,
		channels:  channels,
		pieces:    pieces,
		settings:  settings,
		drafts:    drafts,
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

// TestQuote_EscenarioTaller la configuración por defecto deriva 18.75/6.25 y
// una cantidad capturada en centímetros se convierte a metros antes de
// costear: 300 cm de tela a 2 por metro son 6.
func TestQuote_EscenarioTaller(t *testing.T) {
	f := newFixture()
	materialID := int64(2)
	margin := d("50")

	out, err := f.uc.Quote(dto.QuoteRequest{
		Materials: []dto.RecipeMaterialInput{
			{MaterialID: &materialID, Quantity: d("300"), DisplayUnit: "cm"},
		},
		LaborHours:   d("2"),
		ProfitMargin: &margin,
	})
	require.NoError(t, err)

	assert.Equal(t, "6", out.Breakdown.MaterialsCost.String())
	assert.Equal(t, "37.5", out.Breakdown.LaborCost.String())
	assert.Equal(t, "12.5", out.Breakdown.FixedCosts.String())
	assert.Equal(t, "56", out.Breakdown.ProductionCost.String())
	assert.Equal(t, "84", out.Breakdown.SuggestedPrice.String())
	assert.Equal(t, "18.75", out.HourlyRate.String())

	require.Len(t, out.Channels, 2)
	directSale := out.Channels[0]
	assert.Equal(t, "Venda Direta", directSale.ChannelName)
	assert.True(t, directSale.ChannelPrice.Equal(d("56")), "canal directo es neutro")
	assert.Equal(t, "65.88", out.Channels[1].ChannelPrice.Round(2).String())
}

// TestQuote_MargenPorDefecto sin margen explícito aplica 30%.
func TestQuote_MargenPorDefecto(t *testing.T) {
	f := newFixture()
	out, err := f.uc.Quote(dto.QuoteRequest{
		Materials: []dto.RecipeMaterialInput{
			{Name: "Fita", Quantity: d("10"), Unit: "un", UnitCost: d("10")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "100", out.Breakdown.ProductionCost.String())
	assert.Equal(t, "30", out.Breakdown.ProfitAmount.String())
	assert.Equal(t, "130", out.Breakdown.SuggestedPrice.String())
}

// TestQuote_UnidadIncompatible la unidad de presentación debe pertenecer a
// la familia de la unidad de almacenamiento.
func TestQuote_UnidadIncompatible(t *testing.T) {
	f := newFixture()
	materialID := int64(2)
	_, err := f.uc.Quote(dto.QuoteRequest{
		Materials: []dto.RecipeMaterialInput{
			{MaterialID: &materialID, Quantity: d("1"), DisplayUnit: "kg"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestQuote_MaterialInexistente un renglón con referencia rota no cotiza.
func TestQuote_MaterialInexistente(t *testing.T) {
	f := newFixture()
	missing := int64(99)
	_, err := f.uc.Quote(dto.QuoteRequest{
		Materials: []dto.RecipeMaterialInput{{MaterialID: &missing, Quantity: d("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestSavePiece_DescuentaStock guardar la pieza persiste la receta en
// unidad de almacenamiento y descuenta el stock del inventario.
func TestSavePiece_DescuentaStock(t *testing.T) {
	f := newFixture()
	materialID := int64(2)

	out, err := f.uc.SavePiece(context.Background(), dto.CreatePieceRequest{
		Name: "Bolsa de Crochê Média",
		Materials: []dto.RecipeMaterialInput{
			{MaterialID: &materialID, Quantity: d("300"), DisplayUnit: "cm"},
			{Name: "Botão avulso", Quantity: d("4"), Unit: "un", UnitCost: d("0.8")},
		},
		LaborHours: d("2"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)

	// Receta persistida en metros (unidad de almacenamiento), 300 cm → 3 m.
	require.Len(t, out.Materials, 2)
	assert.Equal(t, "3", out.Materials[0].Quantity.String())
	assert.Equal(t, "m", out.Materials[0].Unit)
	assert.Equal(t, "300", out.Materials[0].DisplayQuantity.String())

	// Stock 15 - 3 = 12; el renglón manual no descuenta.
	material, _ := f.materials.GetByID(materialID)
	assert.Equal(t, "12", material.Stock.String())
	require.Len(t, f.pieces.pieces, 1)
}

// TestSavePiece_StockNuncaNegativo consumir más de lo disponible deja el
// stock en cero, no en negativo.
func TestSavePiece_StockNuncaNegativo(t *testing.T) {
	f := newFixture()
	materialID := int64(2)

	_, err := f.uc.SavePiece(context.Background(), dto.CreatePieceRequest{
		Name: "Manta Grande",
		Materials: []dto.RecipeMaterialInput{
			{MaterialID: &materialID, Quantity: d("40"), DisplayUnit: "m"},
		},
	})
	require.NoError(t, err)

	material, _ := f.materials.GetByID(materialID)
	assert.True(t, material.Stock.IsZero(), "stock quedó en %s", material.Stock)
}

// TestSavePiece_SinNombre el nombre es obligatorio.
func TestSavePiece_SinNombre(t *testing.T) {
	f := newFixture()
	_, err := f.uc.SavePiece(context.Background(), dto.CreatePieceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestDraft_CicloCompleto guardar, releer y reiniciar el borrador.
func TestDraft_CicloCompleto(t *testing.T) {
	f := newFixture()

	// Sin borrador: defecto con margen 30.
	draft, err := f.uc.GetDraft()
	require.NoError(t, err)
	assert.Equal(t, "30", draft.ProfitMargin.String())
	assert.Empty(t, draft.Materials)

	saved, err := f.uc.SaveDraft(dto.DraftRequest{
		PieceName: "Chaveiro",
		Materials: []dto.RecipeMaterialInput{
			{Name: "Feltro", Quantity: d("0.5"), Unit: "m²", UnitCost: d("45")},
		},
		LaborHours: d("1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Chaveiro", saved.PieceName)

	reread, err := f.uc.GetDraft()
	require.NoError(t, err)
	assert.Equal(t, "Chaveiro", reread.PieceName)
	require.Len(t, reread.Materials, 1)

	require.NoError(t, f.uc.ResetDraft())
	reset, err := f.uc.GetDraft()
	require.NoError(t, err)
	assert.Empty(t, reset.PieceName)
	assert.Equal(t, "30", reset.ProfitMargin.String())
}

package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

type fakeChannelRepo struct {
	channels []*entity.SalesChannel
	nextID   int64
}

func (f *fakeChannelRepo) Create(c *entity.SalesChannel) (*entity.SalesChannel, error) {
	// Mismo esquema que el repositorio real: max(ids) + 1.
	f.nextID++
	c.ID = f.nextID
	f.channels = append(f.channels, c)
	return c, nil
}
func (f *fakeChannelRepo) GetByID(id int64) (*entity.SalesChannel, error) {
	for _, c := range f.channels {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeChannelRepo) List() ([]*entity.SalesChannel, error) { return f.channels, nil }
func (f *fakeChannelRepo) Update(c *entity.SalesChannel) error   { return nil }
func (f *fakeChannelRepo) Delete(id int64) error                 { return nil }

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestChannelCreate_Valido(t *testing.T) {
	uc := usecase.NewChannelUseCase(&fakeChannelRepo{})

	out, err := uc.Create(dto.ChannelRequest{Name: "Elo7", FeePercent: dec("18"), FixedFee: dec("0.4")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "Elo7", out.Name)
}

// TestChannelCreate_ComisionFueraDeRango comisión ≥ 100 o negativa se
// rechaza: es la precondición del divisor del simulador de canales.
func TestChannelCreate_ComisionFueraDeRango(t *testing.T) {
	uc := usecase.NewChannelUseCase(&fakeChannelRepo{})

	for _, fee := range []string{"100", "120", "-1"} {
		_, err := uc.Create(dto.ChannelRequest{Name: "Canal", FeePercent: dec(fee)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "comisión %s", fee)
	}
}

func TestChannelCreate_SinNombre(t *testing.T) {
	uc := usecase.NewChannelUseCase(&fakeChannelRepo{})
	_, err := uc.Create(dto.ChannelRequest{FeePercent: dec("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChannelUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewChannelUseCase(&fakeChannelRepo{})
	out, err := uc.Update(99, dto.ChannelRequest{Name: "Shopee", FeePercent: dec("12")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func (f *fakeSettingsRepo) Get() (*entity.Settings, error)  { return f.settings, nil }
func (f *fakeSettingsRepo) Upsert(s *entity.Settings) error { f.settings = s; return nil }

// TestSettingsGet_Defecto sin configuración guardada responde los valores
// iniciales del taller con sus tarifas derivadas.
func TestSettingsGet_Defecto(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{})

	out, err := uc.Get()
	require.NoError(t, err)
	assert.Equal(t, "3000", out.ProLabore.String())
	assert.Equal(t, "160", out.HoursPerMonth.String())
	assert.Equal(t, "18.75", out.HourlyRate.String())
	assert.Equal(t, "6.25", out.FixedCostPerHour.String())
	assert.Nil(t, out.UpdatedAt)
}

func TestSettingsUpsert_DerivaTarifas(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := usecase.NewSettingsUseCase(repo)

	out, err := uc.Upsert(dto.SettingsRequest{
		ProLabore:     dec("4800"),
		HoursPerMonth: dec("120"),
		FixedCosts:    dec("600"),
		Depreciation:  dec("0"),
	})
	require.NoError(t, err)
	assert.Equal(t, "40", out.HourlyRate.String())
	assert.Equal(t, "5", out.FixedCostPerHour.String())
	require.NotNil(t, repo.settings)
	assert.NotNil(t, out.UpdatedAt)
}

// TestSettingsUpsert_HorasNoPositivas el divisor de las tarifas no puede
// ser cero ni negativo; se rechaza antes de llegar al cálculo.
func TestSettingsUpsert_HorasNoPositivas(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{})

	for _, hours := range []string{"0", "-160"} {
		_, err := uc.Upsert(dto.SettingsRequest{ProLabore: dec("3000"), HoursPerMonth: dec(hours)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "horas %s", hours)
	}
}

func TestSettingsRates_UsaConfiguracionGuardada(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &entity.Settings{
		ProLabore:     dec("3000"),
		HoursPerMonth: dec("160"),
		FixedCosts:    dec("800"),
		Depreciation:  dec("200"),
	}}
	uc := usecase.NewSettingsUseCase(repo)

	rates, err := uc.Rates()
	require.NoError(t, err)
	assert.Equal(t, "18.75", rates.HourlyRate.String())
	assert.Equal(t, "6.25", rates.FixedCostPerHour.String())
}

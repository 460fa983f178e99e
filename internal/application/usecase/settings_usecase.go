package usecase

import (
	"time"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/pricing"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

// SettingsUseCase lectura y guardado de la configuración única del taller.
// Antes del primer guardado, Get responde los valores por defecto.
// HoursPerMonth <= 0 se rechaza aquí: es la precondición del divisor de
// DeriveRates.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración vigente (o la de defecto) con las tarifas
// horarias derivadas.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings()
	}
	return toSettingsResponse(settings), nil
}

// Upsert valida y guarda la configuración, devolviéndola con tarifas.
func (uc *SettingsUseCase) Upsert(in dto.SettingsRequest) (*dto.SettingsResponse, error) {
	if !in.HoursPerMonth.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.ProLabore.IsNegative() || in.FixedCosts.IsNegative() || in.Depreciation.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	settings := &entity.Settings{
		ProLabore:     in.ProLabore,
		HoursPerMonth: in.HoursPerMonth,
		FixedCosts:    in.FixedCosts,
		Depreciation:  in.Depreciation,
		UpdatedAt:     time.Now(),
	}
	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// Rates devuelve las tarifas derivadas de la configuración vigente, para
// la calculadora.
func (uc *SettingsUseCase) Rates() (pricing.Rates, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return pricing.Rates{}, err
	}
	if settings == nil {
		settings = entity.DefaultSettings()
	}
	return pricing.DeriveRates(settings.ProLabore, settings.HoursPerMonth, settings.FixedCosts, settings.Depreciation), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	rates := pricing.DeriveRates(s.ProLabore, s.HoursPerMonth, s.FixedCosts, s.Depreciation)
	out := &dto.SettingsResponse{
		ProLabore:        s.ProLabore,
		HoursPerMonth:    s.HoursPerMonth,
		FixedCosts:       s.FixedCosts,
		Depreciation:     s.Depreciation,
		HourlyRate:       rates.HourlyRate,
		FixedCostPerHour: rates.FixedCostPerHour,
	}
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

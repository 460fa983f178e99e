package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository: una sola fila
// (id = 1) con la configuración del taller.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de configuración.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve la configuración guardada; nil si aún no existe.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `
		SELECT pro_labore, hours_per_month, fixed_costs, depreciation, updated_at
		FROM atelier_settings WHERE id = 1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ProLabore, &s.HoursPerMonth, &s.FixedCosts, &s.Depreciation, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert inserta o reemplaza la fila única de configuración.
func (r *SettingsRepo) Upsert(settings *entity.Settings) error {
	query := `
		INSERT INTO atelier_settings (id, pro_labore, hours_per_month, fixed_costs, depreciation, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			pro_labore = EXCLUDED.pro_labore,
			hours_per_month = EXCLUDED.hours_per_month,
			fixed_costs = EXCLUDED.fixed_costs,
			depreciation = EXCLUDED.depreciation,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.ProLabore, settings.HoursPerMonth, settings.FixedCosts,
		settings.Depreciation, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

package repository

import "github.com/jhoicas/atelier-api/internal/domain/entity"

// SettingsRepository define el puerto de persistencia para la configuración
// única del taller. Get devuelve nil si aún no se ha guardado nada.
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Upsert(settings *entity.Settings) error
}

// DraftRepository define el puerto de persistencia para el borrador único
// de la calculadora. Get devuelve nil si no hay borrador guardado.
type DraftRepository interface {
	Get() (*entity.CalculatorDraft, error)
	Upsert(draft *entity.CalculatorDraft) error
	Delete() error
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.DraftRepository = (*DraftRepo)(nil)

// DraftRepo implementación del puerto DraftRepository: una sola fila
// (id = 1) con el borrador de la calculadora, receta en JSONB.
type DraftRepo struct {
	q Querier
}

// NewDraftRepository construye el adaptador del borrador.
func NewDraftRepository(q Querier) *DraftRepo {
	return &DraftRepo{q: q}
}

// Get devuelve el borrador guardado; nil si no hay ninguno.
func (r *DraftRepo) Get() (*entity.CalculatorDraft, error) {
	query := `
		SELECT piece_name, materials, labor_hours, packaging_cost, profit_margin, updated_at
		FROM calculator_draft WHERE id = 1`
	var d entity.CalculatorDraft
	var materials []byte
	err := r.q.QueryRow(context.Background(), query).Scan(
		&d.PieceName, &materials, &d.LaborHours, &d.PackagingCost, &d.ProfitMargin, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}
	if err := json.Unmarshal(materials, &d.Materials); err != nil {
		return nil, fmt.Errorf("unmarshal draft recipe: %w", err)
	}
	return &d, nil
}

// Upsert inserta o reemplaza la fila única del borrador.
func (r *DraftRepo) Upsert(draft *entity.CalculatorDraft) error {
	materials, err := json.Marshal(draft.Materials)
	if err != nil {
		return fmt.Errorf("marshal draft recipe: %w", err)
	}
	query := `
		INSERT INTO calculator_draft (id, piece_name, materials, labor_hours, packaging_cost, profit_margin, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			piece_name = EXCLUDED.piece_name,
			materials = EXCLUDED.materials,
			labor_hours = EXCLUDED.labor_hours,
			packaging_cost = EXCLUDED.packaging_cost,
			profit_margin = EXCLUDED.profit_margin,
			updated_at = EXCLUDED.updated_at`
	_, err = r.q.Exec(context.Background(), query,
		draft.PieceName, materials, draft.LaborHours, draft.PackagingCost,
		draft.ProfitMargin, draft.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert draft: %w", err)
	}
	return nil
}

// Delete descarta el borrador; Get volverá a responder nil.
func (r *DraftRepo) Delete() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM calculator_draft WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

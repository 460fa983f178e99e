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

var _ repository.PieceRepository = (*PieceRepo)(nil)

// PieceRepo implementación del puerto PieceRepository sobre PostgreSQL.
// La receta se guarda como JSONB en la misma fila: una pieza es un
// documento inmutable, no una relación que se edite por renglón.
type PieceRepo struct {
	q Querier
}

// NewPieceRepository construye el adaptador de persistencia para piezas.
func NewPieceRepository(q Querier) *PieceRepo {
	return &PieceRepo{q: q}
}

// Create persiste una pieza calculada.
func (r *PieceRepo) Create(piece *entity.Piece) error {
	materials, err := json.Marshal(piece.Materials)
	if err != nil {
		return fmt.Errorf("marshal recipe: %w", err)
	}
	query := `
		INSERT INTO pieces (id, name, materials, labor_hours, packaging_cost, profit_margin, production_cost, suggested_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		piece.ID, piece.Name, materials, piece.LaborHours, piece.PackagingCost,
		piece.ProfitMargin, piece.ProductionCost, piece.SuggestedPrice, piece.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert piece: %w", err)
	}
	return nil
}

// GetByID obtiene una pieza por id; nil si no existe.
func (r *PieceRepo) GetByID(id string) (*entity.Piece, error) {
	query := `
		SELECT id, name, materials, labor_hours, packaging_cost, profit_margin, production_cost, suggested_price, created_at
		FROM pieces WHERE id = $1`
	piece, err := scanPiece(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get piece: %w", err)
	}
	return piece, nil
}

// List lista las piezas de la más reciente a la más antigua.
func (r *PieceRepo) List() ([]*entity.Piece, error) {
	query := `
		SELECT id, name, materials, labor_hours, packaging_cost, profit_margin, production_cost, suggested_price, created_at
		FROM pieces ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list pieces: %w", err)
	}
	defer rows.Close()
	var list []*entity.Piece
	for rows.Next() {
		piece, err := scanPiece(rows)
		if err != nil {
			return nil, fmt.Errorf("scan piece: %w", err)
		}
		list = append(list, piece)
	}
	return list, rows.Err()
}

// Delete elimina una pieza por id.
func (r *PieceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pieces WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete piece: %w", err)
	}
	return nil
}

func scanPiece(row pgx.Row) (*entity.Piece, error) {
	var p entity.Piece
	var materials []byte
	err := row.Scan(&p.ID, &p.Name, &materials, &p.LaborHours, &p.PackagingCost,
		&p.ProfitMargin, &p.ProductionCost, &p.SuggestedPrice, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(materials, &p.Materials); err != nil {
		return nil, fmt.Errorf("unmarshal recipe: %w", err)
	}
	return &p, nil
}

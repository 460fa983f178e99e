package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación del puerto MaterialRepository sobre
// PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de persistencia para
// materiales. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste un material nuevo; el id lo asigna la secuencia.
func (r *MaterialRepo) Create(material *entity.Material) (*entity.Material, error) {
	query := `
		INSERT INTO materials (name, cost, unit, stock, min_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		material.Name, material.Cost, material.Unit, material.Stock, material.MinStock,
		material.CreatedAt, material.UpdatedAt,
	).Scan(&material.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert material: %w", err)
	}
	return material, nil
}

// GetByID obtiene un material por id; nil si no existe.
func (r *MaterialRepo) GetByID(id int64) (*entity.Material, error) {
	query := `
		SELECT id, name, cost, unit, stock, min_stock, created_at, updated_at
		FROM materials WHERE id = $1`
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Cost, &m.Unit, &m.Stock, &m.MinStock, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// List lista el inventario completo, el más reciente primero.
func (r *MaterialRepo) List() ([]*entity.Material, error) {
	query := `
		SELECT id, name, cost, unit, stock, min_stock, created_at, updated_at
		FROM materials ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Cost, &m.Unit, &m.Stock, &m.MinStock, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update reemplaza los datos de un material existente.
func (r *MaterialRepo) Update(material *entity.Material) error {
	query := `
		UPDATE materials SET name = $2, cost = $3, unit = $4, stock = $5, min_stock = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.Cost, material.Unit, material.Stock,
		material.MinStock, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// Delete elimina un material por id.
func (r *MaterialRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

// DeductStock descuenta las cantidades consumidas al guardar una pieza.
// GREATEST acota el stock resultante a cero: nunca queda negativo.
func (r *MaterialRepo) DeductStock(consumptions []entity.StockConsumption) error {
	for _, c := range consumptions {
		_, err := r.q.Exec(context.Background(),
			`UPDATE materials SET stock = GREATEST(stock - $2, 0), updated_at = now() WHERE id = $1`,
			c.MaterialID, c.Quantity,
		)
		if err != nil {
			return fmt.Errorf("deduct stock material %d: %w", c.MaterialID, err)
		}
	}
	return nil
}

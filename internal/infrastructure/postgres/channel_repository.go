package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.ChannelRepository = (*ChannelRepo)(nil)

// ChannelRepo implementación del puerto ChannelRepository sobre PostgreSQL.
type ChannelRepo struct {
	q Querier
}

// NewChannelRepository construye el adaptador de persistencia para canales.
func NewChannelRepository(q Querier) *ChannelRepo {
	return &ChannelRepo{q: q}
}

// Create persiste un canal asignando id = max(ids existentes) + 1 en la
// misma sentencia, el mismo esquema de ids del almacén original.
func (r *ChannelRepo) Create(channel *entity.SalesChannel) (*entity.SalesChannel, error) {
	query := `
		INSERT INTO sales_channels (id, name, fee_percent, fixed_fee, created_at, updated_at)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5 FROM sales_channels
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		channel.Name, channel.FeePercent, channel.FixedFee, channel.CreatedAt, channel.UpdatedAt,
	).Scan(&channel.ID)
	if err != nil {
		return nil, fmt.Errorf("insert channel: %w", err)
	}
	return channel, nil
}

// GetByID obtiene un canal por id; nil si no existe.
func (r *ChannelRepo) GetByID(id int64) (*entity.SalesChannel, error) {
	query := `
		SELECT id, name, fee_percent, fixed_fee, created_at, updated_at
		FROM sales_channels WHERE id = $1`
	var c entity.SalesChannel
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.FeePercent, &c.FixedFee, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get channel: %w", err)
	}
	return &c, nil
}

// List lista los canales por id ascendente (orden de alta).
func (r *ChannelRepo) List() ([]*entity.SalesChannel, error) {
	query := `
		SELECT id, name, fee_percent, fixed_fee, created_at, updated_at
		FROM sales_channels ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesChannel
	for rows.Next() {
		var c entity.SalesChannel
		if err := rows.Scan(&c.ID, &c.Name, &c.FeePercent, &c.FixedFee, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan channel: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update reemplaza los datos de un canal existente.
func (r *ChannelRepo) Update(channel *entity.SalesChannel) error {
	query := `
		UPDATE sales_channels SET name = $2, fee_percent = $3, fixed_fee = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		channel.ID, channel.Name, channel.FeePercent, channel.FixedFee, channel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update channel: %w", err)
	}
	return nil
}

// Delete elimina un canal por id.
func (r *ChannelRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales_channels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete channel: %w", err)
	}
	return nil
}

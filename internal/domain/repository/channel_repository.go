package repository

import "github.com/jhoicas/atelier-api/internal/domain/entity"

// ChannelRepository define el puerto de persistencia para SalesChannel.
// El id se asigna al insertar como max(ids existentes) + 1.
type ChannelRepository interface {
	Create(channel *entity.SalesChannel) (*entity.SalesChannel, error)
	GetByID(id int64) (*entity.SalesChannel, error)
	List() ([]*entity.SalesChannel, error)
	Update(channel *entity.SalesChannel) error
	Delete(id int64) error
}

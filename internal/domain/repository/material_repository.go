package repository

import "github.com/jhoicas/atelier-api/internal/domain/entity"

// MaterialRepository define el puerto de persistencia para Material (DIP).
type MaterialRepository interface {
	Create(material *entity.Material) (*entity.Material, error)
	GetByID(id int64) (*entity.Material, error)
	List() ([]*entity.Material, error)
	Update(material *entity.Material) error
	Delete(id int64) error
	// DeductStock descuenta las cantidades consumidas, acotando cada stock
	// resultante a un mínimo de cero.
	DeductStock(consumptions []entity.StockConsumption) error
}

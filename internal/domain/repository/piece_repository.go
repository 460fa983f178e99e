package repository

import "github.com/jhoicas/atelier-api/internal/domain/entity"

// PieceRepository define el puerto de persistencia para Piece.
// No hay Update: editar una pieza es recalcularla y guardarla de nuevo.
type PieceRepository interface {
	Create(piece *entity.Piece) error
	GetByID(id string) (*entity.Piece, error)
	// List devuelve las piezas de la más reciente a la más antigua.
	List() ([]*entity.Piece, error)
	Delete(id string) error
}

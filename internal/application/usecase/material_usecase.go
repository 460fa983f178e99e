package usecase

import (
	"time"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/measure"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

// MaterialUseCase casos de uso CRUD para el inventario de materiales.
// El stock solo disminuye al guardar piezas (ver calculator.SavePiece);
// aquí se captura y corrige manualmente.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

func validateMaterial(in dto.MaterialRequest) error {
	if in.Name == "" || in.Unit == "" {
		return domain.ErrInvalidInput
	}
	if !measure.Valid(measure.Unit(in.Unit)) {
		return domain.ErrInvalidInput
	}
	if in.Cost.IsNegative() || in.Stock.IsNegative() || in.MinStock.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create registra un material nuevo. Stock y MinStock ausentes quedan en 0.
func (uc *MaterialUseCase) Create(in dto.MaterialRequest) (*dto.MaterialResponse, error) {
	if err := validateMaterial(in); err != nil {
		return nil, err
	}
	now := time.Now()
	material := &entity.Material{
		Name:      in.Name,
		Cost:      in.Cost,
		Unit:      measure.Unit(in.Unit),
		Stock:     in.Stock,
		MinStock:  in.MinStock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := uc.repo.Create(material)
	if err != nil {
		return nil, err
	}
	return toMaterialResponse(created), nil
}

// GetByID obtiene un material por id; nil si no existe.
func (uc *MaterialUseCase) GetByID(id int64) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	return toMaterialResponse(material), nil
}

// List lista el inventario completo.
func (uc *MaterialUseCase) List() (*dto.MaterialListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{Items: items}, nil
}

// Update reemplaza los datos de un material existente.
func (uc *MaterialUseCase) Update(id int64, in dto.MaterialRequest) (*dto.MaterialResponse, error) {
	if err := validateMaterial(in); err != nil {
		return nil, err
	}
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, nil
	}
	material.Name = in.Name
	material.Cost = in.Cost
	material.Unit = measure.Unit(in.Unit)
	material.Stock = in.Stock
	material.MinStock = in.MinStock
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// Delete elimina un material por id.
func (uc *MaterialUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.MaterialResponse{
		ID:        m.ID,
		Name:      m.Name,
		Cost:      m.Cost,
		Unit:      string(m.Unit),
		UnitLabel: measure.Label(m.Unit),
		Stock:     m.Stock,
		MinStock:  m.MinStock,
		LowStock:  m.LowStock(),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

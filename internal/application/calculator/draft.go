package calculator

import (
	"time"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// GetDraft devuelve el borrador persistido de la calculadora, o el borrador
// por defecto (ficha vacía, margen 30%) si nunca se ha guardado uno.
func (uc *UseCase) GetDraft() (*dto.DraftResponse, error) {
	draft, err := uc.draftRepo.Get()
	if err != nil {
		return nil, err
	}
	if draft == nil {
		draft = entity.DefaultDraft()
	}
	return toDraftResponse(draft), nil
}

// SaveDraft valida la ficha en curso y la persiste como borrador único.
func (uc *UseCase) SaveDraft(in dto.DraftRequest) (*dto.DraftResponse, error) {
	materials, err := uc.resolveRecipe(in.Materials)
	if err != nil {
		return nil, err
	}
	draft := &entity.CalculatorDraft{
		PieceName:     in.PieceName,
		Materials:     materials,
		LaborHours:    in.LaborHours,
		PackagingCost: in.PackagingCost,
		ProfitMargin:  marginOrDefault(in.ProfitMargin),
		UpdatedAt:     time.Now(),
	}
	if err := uc.draftRepo.Upsert(draft); err != nil {
		return nil, err
	}
	return toDraftResponse(draft), nil
}

// ResetDraft descarta el borrador; la siguiente lectura vuelve al defecto.
func (uc *UseCase) ResetDraft() error {
	return uc.draftRepo.Delete()
}

func toDraftResponse(d *entity.CalculatorDraft) *dto.DraftResponse {
	return &dto.DraftResponse{
		PieceName:     d.PieceName,
		Materials:     toRecipeMaterialResponses(d.Materials),
		LaborHours:    d.LaborHours,
		PackagingCost: d.PackagingCost,
		ProfitMargin:  d.ProfitMargin,
	}
}

package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var feeLimit = decimal.NewFromInt(100)

// ChannelUseCase casos de uso CRUD para canales de venta. Valida aquí la
// precondición del simulador: comisión en [0, 100), porque con 100% o más
// el precio del canal no tiene solución.
type ChannelUseCase struct {
	repo repository.ChannelRepository
}

// NewChannelUseCase construye el caso de uso.
func NewChannelUseCase(repo repository.ChannelRepository) *ChannelUseCase {
	return &ChannelUseCase{repo: repo}
}

func validateChannel(in dto.ChannelRequest) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	if in.FeePercent.IsNegative() || in.FeePercent.GreaterThanOrEqual(feeLimit) {
		return domain.ErrInvalidInput
	}
	if in.FixedFee.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create registra un canal; el repositorio asigna id = max(ids) + 1.
func (uc *ChannelUseCase) Create(in dto.ChannelRequest) (*dto.ChannelResponse, error) {
	if err := validateChannel(in); err != nil {
		return nil, err
	}
	now := time.Now()
	channel := &entity.SalesChannel{
		Name:       in.Name,
		FeePercent: in.FeePercent,
		FixedFee:   in.FixedFee,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := uc.repo.Create(channel)
	if err != nil {
		return nil, err
	}
	return toChannelResponse(created), nil
}

// List lista los canales registrados.
func (uc *ChannelUseCase) List() (*dto.ChannelListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ChannelResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toChannelResponse(c))
	}
	return &dto.ChannelListResponse{Items: items}, nil
}

// Update reemplaza los datos de un canal existente.
func (uc *ChannelUseCase) Update(id int64, in dto.ChannelRequest) (*dto.ChannelResponse, error) {
	if err := validateChannel(in); err != nil {
		return nil, err
	}
	channel, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, nil
	}
	channel.Name = in.Name
	channel.FeePercent = in.FeePercent
	channel.FixedFee = in.FixedFee
	channel.UpdatedAt = time.Now()
	if err := uc.repo.Update(channel); err != nil {
		return nil, err
	}
	return toChannelResponse(channel), nil
}

// Delete elimina un canal por id.
func (uc *ChannelUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toChannelResponse(c *entity.SalesChannel) *dto.ChannelResponse {
	if c == nil {
		return nil
	}
	return &dto.ChannelResponse{
		ID:         c.ID,
		Name:       c.Name,
		FeePercent: c.FeePercent,
		FixedFee:   c.FixedFee,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

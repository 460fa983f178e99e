package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

type fakeMaterialRepo struct {
	materials map[int64]*entity.Material
	nextID    int64
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{materials: make(map[int64]*entity.Material)}
}

func (f *fakeMaterialRepo) Create(m *entity.Material) (*entity.Material, error) {
	f.nextID++
	m.ID = f.nextID
	f.materials[m.ID] = m
	return m, nil
}
func (f *fakeMaterialRepo) GetByID(id int64) (*entity.Material, error) {
	m, ok := f.materials[id]
	if !ok {
		return nil, nil
	}
	return m, nil
}
func (f *fakeMaterialRepo) List() ([]*entity.Material, error) {
	out := make([]*entity.Material, 0, len(f.materials))
	for _, m := range f.materials {
		out = append(out, m)
	}
	return out, nil
}
func (f *fakeMaterialRepo) Update(m *entity.Material) error { f.materials[m.ID] = m; return nil }
func (f *fakeMaterialRepo) Delete(id int64) error           { delete(f.materials, id); return nil }
func (f *fakeMaterialRepo) DeductStock(consumptions []entity.StockConsumption) error {
	return nil
}

func TestMaterialCreate_Valido(t *testing.T) {
	uc := usecase.NewMaterialUseCase(newFakeMaterialRepo())

	out, err := uc.Create(dto.MaterialRequest{
		Name: "Fita de Cetim", Cost: dec("5.2"), Unit: "m", Stock: dec("3"), MinStock: dec("10"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "m (metros)", out.UnitLabel)
	assert.True(t, out.LowStock, "3 en stock con mínimo 10 es stock bajo")
}

// TestMaterialCreate_Invalido nombre y unidad son obligatorios y la unidad
// debe ser una de las soportadas; los montos no pueden ser negativos.
func TestMaterialCreate_Invalido(t *testing.T) {
	uc := usecase.NewMaterialUseCase(newFakeMaterialRepo())

	cases := []dto.MaterialRequest{
		{Cost: dec("1"), Unit: "m"},
		{Name: "Linha", Cost: dec("1")},
		{Name: "Linha", Cost: dec("1"), Unit: "km"},
		{Name: "Linha", Cost: dec("-1"), Unit: "m"},
		{Name: "Linha", Cost: dec("1"), Unit: "m", Stock: dec("-5")},
	}
	for i, in := range cases {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d", i)
	}
}

func TestMaterialUpdate_Reemplaza(t *testing.T) {
	repo := newFakeMaterialRepo()
	uc := usecase.NewMaterialUseCase(repo)

	created, err := uc.Create(dto.MaterialRequest{Name: "Zíper 30cm", Cost: dec("3.5"), Unit: "cm", Stock: dec("800"), MinStock: dec("150")})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.MaterialRequest{Name: "Zíper 40cm", Cost: dec("4"), Unit: "cm", Stock: dec("500"), MinStock: dec("150")})
	require.NoError(t, err)
	assert.Equal(t, "Zíper 40cm", out.Name)
	assert.Equal(t, "4", out.Cost.String())
	assert.False(t, out.LowStock)
}

func TestMaterialUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewMaterialUseCase(newFakeMaterialRepo())
	out, err := uc.Update(42, dto.MaterialRequest{Name: "X", Cost: dec("1"), Unit: "un"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

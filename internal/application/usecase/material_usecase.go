package usecase

import (
	"context"

	"github.com/jhoicas/recetario/internal/application/dto"
	"github.com/jhoicas/recetario/internal/application/store"
	"github.com/jhoicas/recetario/internal/domain/costing"
	"github.com/jhoicas/recetario/internal/domain/entity"
)

// MaterialUseCase casos de uso CRUD para materias primas.
type MaterialUseCase struct {
	store *store.Store
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(s *store.Store) *MaterialUseCase {
	return &MaterialUseCase{store: s}
}

// Create crea una nueva materia prima.
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	unit, err := entity.ParseUnit(in.Unit)
	if err != nil {
		return nil, err
	}
	m, err := uc.store.AddRawMaterial(ctx, entity.RawMaterial{
		Name:        in.Name,
		Price:       in.Price,
		PackageSize: in.PackageSize,
		Unit:        unit,
	})
	if err != nil {
		return nil, err
	}
	return toRawMaterialResponse(m), nil
}

// GetByID obtiene una materia prima por ID.
func (uc *MaterialUseCase) GetByID(id string) (*dto.RawMaterialResponse, error) {
	m, err := uc.store.RawMaterial(id)
	if err != nil {
		return nil, err
	}
	return toRawMaterialResponse(m), nil
}

// Update actualiza los campos informados. Las recetas que la usan se recostean en la siguiente lectura.
func (uc *MaterialUseCase) Update(ctx context.Context, id string, in dto.UpdateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	m, err := uc.store.RawMaterial(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Price != nil {
		m.Price = *in.Price
	}
	if in.PackageSize != nil {
		m.PackageSize = *in.PackageSize
	}
	if in.Unit != nil {
		unit, err := entity.ParseUnit(*in.Unit)
		if err != nil {
			return nil, err
		}
		m.Unit = unit
	}
	if err := uc.store.UpdateRawMaterial(ctx, m); err != nil {
		return nil, err
	}
	return toRawMaterialResponse(m), nil
}

// List lista las materias primas ordenadas por nombre.
func (uc *MaterialUseCase) List() *dto.RawMaterialListResponse {
	list := uc.store.RawMaterials()
	items := make([]dto.RawMaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toRawMaterialResponse(m))
	}
	return &dto.RawMaterialListResponse{Items: items}
}

// Delete elimina una materia prima. Las recetas conservan la referencia.
func (uc *MaterialUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.DeleteRawMaterial(ctx, id)
}

// toRawMaterialResponse arma la salida. Un dato guardado inválido no se oculta: se lista con
// el precio unitario no disponible.
func toRawMaterialResponse(m entity.RawMaterial) *dto.RawMaterialResponse {
	out := &dto.RawMaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		PackageSize: m.PackageSize,
		Unit:        m.Unit.String(),
	}
	unitPrice, err := costing.UnitPrice(m)
	if err != nil {
		out.Reason = UnavailableReason(err)
		return out
	}
	out.UnitPrice = &unitPrice
	return out
}

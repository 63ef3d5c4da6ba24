package usecase

import (
	"context"

	"github.com/jhoicas/recetario/internal/application/dto"
	"github.com/jhoicas/recetario/internal/application/store"
)

// FamilyUseCase casos de uso de gestión de familias.
type FamilyUseCase struct {
	store *store.Store
}

// NewFamilyUseCase construye el caso de uso.
func NewFamilyUseCase(s *store.Store) *FamilyUseCase {
	return &FamilyUseCase{store: s}
}

// Create crea una familia.
func (uc *FamilyUseCase) Create(ctx context.Context, name string) (*dto.FamilyResponse, error) {
	f, err := uc.store.AddFamily(ctx, name)
	if err != nil {
		return nil, err
	}
	return &dto.FamilyResponse{ID: f.ID, Name: f.Name}, nil
}

// Get obtiene una familia con su cantidad de recetas.
func (uc *FamilyUseCase) Get(id string) (*dto.FamilyResponse, error) {
	f, err := uc.store.Family(id)
	if err != nil {
		return nil, err
	}
	return &dto.FamilyResponse{ID: f.ID, Name: f.Name, RecipeCount: uc.store.RecipeCount(f.ID)}, nil
}

// Rename cambia el nombre de una familia.
func (uc *FamilyUseCase) Rename(ctx context.Context, id, name string) (*dto.FamilyResponse, error) {
	if err := uc.store.RenameFamily(ctx, id, name); err != nil {
		return nil, err
	}
	f, err := uc.store.Family(id)
	if err != nil {
		return nil, err
	}
	return &dto.FamilyResponse{ID: f.ID, Name: f.Name, RecipeCount: uc.store.RecipeCount(f.ID)}, nil
}

// Delete elimina la familia; sus recetas quedan sin familia.
func (uc *FamilyUseCase) Delete(ctx context.Context, id string) (*dto.DeleteFamilyResponse, error) {
	n, err := uc.store.DeleteFamily(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteFamilyResponse{ID: id, UnassignedCount: n}, nil
}

// List lista las familias con la cantidad de recetas de cada una.
func (uc *FamilyUseCase) List() *dto.FamilyListResponse {
	list := uc.store.Families()
	items := make([]dto.FamilyResponse, 0, len(list))
	for _, f := range list {
		items = append(items, dto.FamilyResponse{ID: f.ID, Name: f.Name, RecipeCount: uc.store.RecipeCount(f.ID)})
	}
	return &dto.FamilyListResponse{Items: items}
}

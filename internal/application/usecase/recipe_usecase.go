package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/recetario/internal/application/dto"
	"github.com/jhoicas/recetario/internal/application/store"
	"github.com/jhoicas/recetario/internal/domain"
	"github.com/jhoicas/recetario/internal/domain/costing"
	"github.com/jhoicas/recetario/internal/domain/entity"
	"github.com/jhoicas/recetario/pkg/logger"
)

// RecipeUseCase casos de uso de recetas. El costo se calcula en cada lectura con las
// materias primas actuales; no se guarda.
type RecipeUseCase struct {
	store *store.Store
	log   *logger.Logger
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(s *store.Store, log *logger.Logger) *RecipeUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RecipeUseCase{store: s, log: log.Named("recipes")}
}

// Save crea (ID vacío o desconocido) o reemplaza una receta. Si in.NewFamilyName viene
// informado se crea esa familia y se asigna a la receta.
func (uc *RecipeUseCase) Save(ctx context.Context, in dto.SaveRecipeRequest) (*dto.RecipeDetailResponse, error) {
	r := entity.Recipe{
		ID:           in.ID,
		Name:         in.Name,
		Description:  in.Description,
		FamilyID:     in.FamilyID,
		YieldAmount:  in.YieldAmount,
		YieldUnit:    strings.TrimSpace(in.YieldUnit),
		Instructions: nonEmptyLines(in.Instructions),
	}
	for i, ing := range in.Ingredients {
		unit, err := entity.ParseUnit(ing.Unit)
		if err != nil {
			return nil, fmt.Errorf("ingrediente %d: %w", i+1, err)
		}
		r.Ingredients = append(r.Ingredients, entity.Ingredient{
			RawMaterialID: ing.RawMaterialID,
			Quantity:      ing.Quantity,
			Unit:          unit,
		})
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.NewFamilyName); name != "" {
		saved, f, err := uc.store.UpsertRecipeInNewFamily(ctx, r, name)
		if err != nil {
			return nil, err
		}
		uc.log.Debug().Str("recipe_id", saved.ID).Str("family_id", f.ID).Msg("receta guardada en familia nueva")
		return uc.detail(saved), nil
	}
	if r.FamilyID != "" {
		if _, err := uc.store.Family(r.FamilyID); err != nil {
			return nil, err
		}
	}

	saved, err := uc.store.UpsertRecipe(ctx, r)
	if err != nil {
		return nil, err
	}
	return uc.detail(saved), nil
}

// GetByID obtiene la receta con su desglose de costos.
func (uc *RecipeUseCase) GetByID(id string) (*dto.RecipeDetailResponse, error) {
	r, err := uc.store.Recipe(id)
	if err != nil {
		return nil, err
	}
	return uc.detail(r), nil
}

// List lista todas las recetas con su resumen de costo.
func (uc *RecipeUseCase) List() *dto.RecipeListResponse {
	return uc.summaries(uc.store.Recipes())
}

// ListByFamily recetas de una familia; familyID vacío lista las que no tienen familia.
func (uc *RecipeUseCase) ListByFamily(familyID string) *dto.RecipeListResponse {
	return uc.summaries(uc.store.RecipesByFamily(familyID))
}

// Delete elimina una receta.
func (uc *RecipeUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.DeleteRecipe(ctx, id)
}

// Breakdown desglose de costos de la receta (para exportaciones).
func (uc *RecipeUseCase) Breakdown(id string) (entity.Recipe, costing.Breakdown, error) {
	r, err := uc.store.Recipe(id)
	if err != nil {
		return entity.Recipe{}, costing.Breakdown{}, err
	}
	return r, costing.RecipeCost(r, uc.store.MaterialIndex()), nil
}

func (uc *RecipeUseCase) summaries(list []entity.Recipe) *dto.RecipeListResponse {
	materials := uc.store.MaterialIndex()
	items := make([]dto.RecipeSummaryResponse, 0, len(list))
	for _, r := range list {
		b := costing.RecipeCost(r, materials)
		items = append(items, uc.summary(r, b))
	}
	return &dto.RecipeListResponse{Items: items}
}

func (uc *RecipeUseCase) summary(r entity.Recipe, b costing.Breakdown) dto.RecipeSummaryResponse {
	out := dto.RecipeSummaryResponse{
		ID:          r.ID,
		Name:        r.Name,
		YieldAmount: r.YieldAmount,
		YieldUnit:   r.YieldUnit,
		Cost:        ToCostSummary(b),
	}
	if f, ok := uc.store.FamilyOf(r); ok {
		out.FamilyID = f.ID
		out.FamilyName = f.Name
	}
	return out
}

func (uc *RecipeUseCase) detail(r entity.Recipe) *dto.RecipeDetailResponse {
	b := costing.RecipeCost(r, uc.store.MaterialIndex())
	if err := b.Err(); err != nil {
		uc.log.Debug().Err(err).Str("recipe_id", r.ID).Msg("costo incompleto")
	}
	lines := make([]dto.IngredientLineResponse, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, ToIngredientLine(l))
	}
	return &dto.RecipeDetailResponse{
		RecipeSummaryResponse: uc.summary(r, b),
		Description:           r.Description,
		Ingredients:           lines,
		Instructions:          append([]string{}, r.Instructions...),
	}
}

// ToCostSummary resume un desglose para la presentación.
func ToCostSummary(b costing.Breakdown) dto.CostSummary {
	return dto.CostSummary{
		Total:        b.Total,
		PerYieldUnit: b.PerYieldUnit,
		Complete:     b.Complete(),
		Unavailable:  b.Unavailable,
	}
}

// ToIngredientLine convierte una línea costeada; Cost queda nil si no está disponible.
func ToIngredientLine(l costing.Line) dto.IngredientLineResponse {
	out := dto.IngredientLineResponse{
		RawMaterialID: l.Ingredient.RawMaterialID,
		Quantity:      l.Ingredient.Quantity,
		Unit:          l.Ingredient.Unit.String(),
	}
	if l.Material != nil {
		out.MaterialName = l.Material.Name
	}
	if l.Available() {
		cost := l.Cost
		out.Cost = &cost
		return out
	}
	out.Reason = UnavailableReason(l.Err)
	return out
}

// UnavailableReason texto corto para un costo que no se pudo calcular.
func UnavailableReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnresolvedMaterialReference):
		return "materia prima eliminada"
	case errors.Is(err, domain.ErrIncompatibleUnits):
		return "unidad incompatible"
	case errors.Is(err, domain.ErrInvalidInput):
		return "tamaño de paquete inválido"
	case err != nil:
		return "no disponible"
	}
	return ""
}

func nonEmptyLines(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

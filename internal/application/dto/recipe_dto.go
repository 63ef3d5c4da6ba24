package dto

import "github.com/shopspring/decimal"

// IngredientRequest línea de ingrediente en el formulario de receta.
type IngredientRequest struct {
	RawMaterialID string          `json:"rawMaterialId"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
}

// SaveRecipeRequest entrada para crear (ID vacío) o editar una receta.
// Si NewFamilyName no está vacío se crea la familia y se asigna a la receta.
type SaveRecipeRequest struct {
	ID            string              `json:"id,omitempty"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	FamilyID      string              `json:"familyId,omitempty"`
	NewFamilyName string              `json:"newFamilyName,omitempty"`
	YieldAmount   decimal.Decimal     `json:"yieldAmount"`
	YieldUnit     string              `json:"yieldUnit"`
	Ingredients   []IngredientRequest `json:"ingredients"`
	Instructions  []string            `json:"instructions"`
}

// CostSummary costo agregado de una receta. Si Complete es false, Total solo suma los
// ingredientes con costo y no debe presentarse como el costo real.
type CostSummary struct {
	Total        decimal.Decimal  `json:"total"`
	PerYieldUnit *decimal.Decimal `json:"perYieldUnit,omitempty"`
	Complete     bool             `json:"complete"`
	Unavailable  int              `json:"unavailable"`
}

// IngredientLineResponse línea de ingrediente costeada.
type IngredientLineResponse struct {
	RawMaterialID string           `json:"rawMaterialId"`
	MaterialName  string           `json:"materialName,omitempty"`
	Quantity      decimal.Decimal  `json:"quantity"`
	Unit          string           `json:"unit"`
	Cost          *decimal.Decimal `json:"cost,omitempty"` // nil = no disponible
	Reason        string           `json:"reason,omitempty"`
}

// RecipeSummaryResponse elemento del listado de recetas.
type RecipeSummaryResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	FamilyID    string          `json:"familyId,omitempty"`
	FamilyName  string          `json:"familyName,omitempty"`
	YieldAmount decimal.Decimal `json:"yieldAmount"`
	YieldUnit   string          `json:"yieldUnit"`
	Cost        CostSummary     `json:"cost"`
}

// RecipeListResponse listado de recetas ordenado por nombre.
type RecipeListResponse struct {
	Items []RecipeSummaryResponse `json:"items"`
}

// RecipeDetailResponse receta completa con su desglose de costos.
type RecipeDetailResponse struct {
	RecipeSummaryResponse
	Description  string                   `json:"description"`
	Ingredients  []IngredientLineResponse `json:"ingredients"`
	Instructions []string                 `json:"instructions"`
}

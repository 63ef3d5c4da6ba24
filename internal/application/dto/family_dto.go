package dto

// FamilyResponse salida de una familia con la cantidad de recetas asignadas.
type FamilyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RecipeCount int    `json:"recipeCount"`
}

// FamilyListResponse lista de familias ordenada por nombre.
type FamilyListResponse struct {
	Items []FamilyResponse `json:"items"`
}

// DeleteFamilyResponse resultado de eliminar una familia.
type DeleteFamilyResponse struct {
	ID              string `json:"id"`
	UnassignedCount int    `json:"unassignedCount"` // recetas que quedaron sin familia
}

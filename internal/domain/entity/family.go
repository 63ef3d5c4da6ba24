package entity

// RecipeFamily agrupación de recetas definida por el usuario (ej. "Panes", "Salsas").
type RecipeFamily struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

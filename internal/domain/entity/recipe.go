package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/recetario/internal/domain"
	"github.com/shopspring/decimal"
)

// Ingredient línea de una receta. Referencia (no posee) a una materia prima;
// Unit puede diferir de la unidad de compra siempre que sea de la misma dimensión.
type Ingredient struct {
	RawMaterialID string          `json:"rawMaterialId"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          Unit            `json:"unit"`
}

// Recipe receta con su rendimiento. FamilyID vacío significa "sin familia".
// YieldUnit es una etiqueta descriptiva ("porciones", "panes"), no una Unit convertible.
type Recipe struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	FamilyID     string          `json:"familyId,omitempty"`
	YieldAmount  decimal.Decimal `json:"yieldAmount"`
	YieldUnit    string          `json:"yieldUnit"`
	Ingredients  []Ingredient    `json:"ingredients"`
	Instructions []string        `json:"instructions"`
}

// HasFamily indica si la receta está asignada a alguna familia.
func (r Recipe) HasFamily() bool { return r.FamilyID != "" }

// Clone devuelve una copia profunda (los slices no se comparten).
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	out.Instructions = append([]string(nil), r.Instructions...)
	return out
}

// Validate verifica los campos obligatorios. No valida que las materias primas existan:
// las referencias colgantes se toleran y se resuelven al calcular el costo.
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name es requerido: %w", domain.ErrInvalidInput)
	}
	if !r.YieldAmount.IsPositive() {
		return fmt.Errorf("yieldAmount debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	for i, in := range r.Ingredients {
		if in.RawMaterialID == "" {
			return fmt.Errorf("ingrediente %d sin materia prima: %w", i+1, domain.ErrInvalidInput)
		}
		if !in.Quantity.IsPositive() {
			return fmt.Errorf("ingrediente %d: quantity debe ser mayor que cero: %w", i+1, domain.ErrInvalidInput)
		}
		if !in.Unit.Valid() {
			return fmt.Errorf("ingrediente %d: unidad %q: %w", i+1, in.Unit, domain.ErrInvalidInput)
		}
	}
	return nil
}

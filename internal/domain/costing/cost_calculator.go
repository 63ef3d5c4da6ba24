// Package costing calcula el costo de los ingredientes y de las recetas a partir
// del estado actual de las materias primas (servicio de dominio, sin caché).
//
// Política de costo incompleto: un ingrediente cuya materia prima no existe o cuya
// unidad no es convertible queda "no disponible". Eso no aborta el cálculo de la
// receta: Total suma solo las líneas disponibles y Breakdown lo marca como
// incompleto (Complete() == false, Unavailable > 0, Err() envuelve ErrIncompleteCost).
// Nunca se informa un total parcial como si fuera completo.
package costing

import (
	"errors"
	"fmt"

	"github.com/jhoicas/recetario/internal/domain"
	"github.com/jhoicas/recetario/internal/domain/entity"
	"github.com/jhoicas/recetario/internal/domain/units"
	"github.com/shopspring/decimal"
)

// MaterialIndex materias primas indexadas por ID.
type MaterialIndex map[string]entity.RawMaterial

// NewMaterialIndex construye el índice a partir de la colección actual.
func NewMaterialIndex(materials []entity.RawMaterial) MaterialIndex {
	idx := make(MaterialIndex, len(materials))
	for _, m := range materials {
		idx[m.ID] = m
	}
	return idx
}

// UnitPrice costo de una unidad de material.Unit: Price / PackageSize.
func UnitPrice(material entity.RawMaterial) (decimal.Decimal, error) {
	if !material.PackageSize.IsPositive() {
		return decimal.Zero, fmt.Errorf("materia prima %s: packageSize debe ser mayor que cero: %w", material.ID, domain.ErrInvalidInput)
	}
	return material.Price.Div(material.PackageSize), nil
}

// Line resultado del costeo de un ingrediente.
type Line struct {
	Ingredient entity.Ingredient
	// Material es nil cuando la referencia no se pudo resolver.
	Material *entity.RawMaterial
	// Quantity cantidad expresada en la unidad de compra del material.
	Quantity decimal.Decimal
	Cost     decimal.Decimal
	Err      error
}

// Available indica si el costo de la línea pudo calcularse.
func (l Line) Available() bool { return l.Err == nil }

// IngredientCost costea una línea: resuelve el material, convierte la cantidad a su
// unidad de compra y multiplica por el precio unitario.
func IngredientCost(in entity.Ingredient, materials MaterialIndex) Line {
	line := Line{Ingredient: in}
	m, ok := materials[in.RawMaterialID]
	if !ok {
		line.Err = fmt.Errorf("ingrediente %s: %w", in.RawMaterialID, domain.ErrUnresolvedMaterialReference)
		return line
	}
	line.Material = &m
	qty, err := units.Convert(in.Quantity, in.Unit, m.Unit)
	if err != nil {
		line.Err = fmt.Errorf("ingrediente %s (%s): %w", m.Name, m.ID, err)
		return line
	}
	if !m.PackageSize.IsPositive() {
		line.Err = fmt.Errorf("ingrediente %s (%s): packageSize inválido: %w", m.Name, m.ID, domain.ErrInvalidInput)
		return line
	}
	line.Quantity = qty
	// qty * price / size: se multiplica antes de dividir para no arrastrar el redondeo del precio unitario.
	line.Cost = qty.Mul(m.Price).Div(m.PackageSize)
	return line
}

// Breakdown costo agregado de una receta.
type Breakdown struct {
	Lines       []Line
	Total       decimal.Decimal // suma de las líneas disponibles, en el orden de la receta
	Unavailable int
	// PerYieldUnit Total / YieldAmount; nil si YieldAmount <= 0.
	// Si la receta está incompleta hereda esa condición del Total.
	PerYieldUnit *decimal.Decimal
}

// Complete indica si todas las líneas tienen costo.
func (b Breakdown) Complete() bool { return b.Unavailable == 0 }

// Err nil si el costo es completo; si no, ErrIncompleteCost unido a los errores de cada línea.
func (b Breakdown) Err() error {
	if b.Complete() {
		return nil
	}
	errs := []error{fmt.Errorf("%d de %d ingredientes sin costo: %w", b.Unavailable, len(b.Lines), domain.ErrIncompleteCost)}
	for _, l := range b.Lines {
		if l.Err != nil {
			errs = append(errs, l.Err)
		}
	}
	return errors.Join(errs...)
}

// RecipeCost costea todos los ingredientes de la receta y agrega el total y el costo por unidad de rendimiento.
func RecipeCost(r entity.Recipe, materials MaterialIndex) Breakdown {
	b := Breakdown{
		Lines: make([]Line, 0, len(r.Ingredients)),
		Total: decimal.Zero,
	}
	for _, in := range r.Ingredients {
		line := IngredientCost(in, materials)
		if line.Available() {
			b.Total = b.Total.Add(line.Cost)
		} else {
			b.Unavailable++
		}
		b.Lines = append(b.Lines, line)
	}
	if r.YieldAmount.IsPositive() {
		per := b.Total.Div(r.YieldAmount)
		b.PerYieldUnit = &per
	}
	return b
}

// Package units convierte cantidades entre unidades de la misma dimensión física.
//
// Dimensiones:
//
//	masa    g, kg
//	volumen ml, l
//	conteo  unit
//
// La conversión entre dimensiones distintas siempre falla con domain.ErrIncompatibleUnits.
// No se redondea: la aritmética es decimal exacta y el redondeo queda para la presentación.
package units

import (
	"fmt"

	"github.com/jhoicas/recetario/internal/domain"
	"github.com/jhoicas/recetario/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Dimension categoría física de una unidad.
type Dimension string

const (
	Mass   Dimension = "mass"
	Volume Dimension = "volume"
	Count  Dimension = "count"
)

// base unidad de referencia de cada dimensión y factor de cada unidad hacia ella.
var (
	dimensions = map[entity.Unit]Dimension{
		entity.UnitGram:       Mass,
		entity.UnitKilogram:   Mass,
		entity.UnitMillilitre: Volume,
		entity.UnitLitre:      Volume,
		entity.UnitPiece:      Count,
	}
	toBase = map[entity.Unit]decimal.Decimal{
		entity.UnitGram:       decimal.NewFromInt(1),
		entity.UnitKilogram:   decimal.NewFromInt(1000),
		entity.UnitMillilitre: decimal.NewFromInt(1),
		entity.UnitLitre:      decimal.NewFromInt(1000),
		entity.UnitPiece:      decimal.NewFromInt(1),
	}
)

// DimensionOf devuelve la dimensión de u; ok es false si la unidad no es conocida.
func DimensionOf(u entity.Unit) (Dimension, bool) {
	d, ok := dimensions[u]
	return d, ok
}

// Compatible indica si se puede convertir de a hacia b.
func Compatible(a, b entity.Unit) bool {
	da, okA := dimensions[a]
	db, okB := dimensions[b]
	return okA && okB && da == db
}

// CompatibleUnits unidades a las que se puede convertir u (incluida u), en el orden de entity.Units.
func CompatibleUnits(u entity.Unit) []entity.Unit {
	var out []entity.Unit
	for _, c := range entity.Units {
		if Compatible(u, c) {
			out = append(out, c)
		}
	}
	return out
}

// Factor devuelve el multiplicador para pasar una cantidad de from a to.
// g→kg = 0.001, kg→g = 1000, ml→l = 0.001, l→ml = 1000, misma unidad = 1.
func Factor(from, to entity.Unit) (decimal.Decimal, error) {
	if !Compatible(from, to) {
		return decimal.Zero, fmt.Errorf("%s → %s: %w", from, to, domain.ErrIncompatibleUnits)
	}
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	// Los factores hacia la base son potencias de 10, así que la división es exacta.
	return toBase[from].Div(toBase[to]), nil
}

// Convert expresa quantity (en from) en la unidad to.
func Convert(quantity decimal.Decimal, from, to entity.Unit) (decimal.Decimal, error) {
	f, err := Factor(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return quantity.Mul(f), nil
}

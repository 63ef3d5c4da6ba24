package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/recetario/internal/domain"
)

// Unit unidad de compra o de uso de una materia prima.
type Unit string

const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitMillilitre Unit = "ml"
	UnitLitre      Unit = "l"
	UnitPiece      Unit = "unit" // unidad discreta (huevos, latas, ...)
)

// Units todas las unidades soportadas, en el orden en que se ofrecen al usuario.
var Units = []Unit{UnitGram, UnitKilogram, UnitMillilitre, UnitLitre, UnitPiece}

var unitAliases = map[string]Unit{
	"g": UnitGram, "gr": UnitGram, "gram": UnitGram, "grams": UnitGram, "gramo": UnitGram, "gramos": UnitGram,
	"kg": UnitKilogram, "kilogram": UnitKilogram, "kilograms": UnitKilogram, "kilo": UnitKilogram, "kilos": UnitKilogram, "kilogramo": UnitKilogram, "kilogramos": UnitKilogram,
	"ml": UnitMillilitre, "millilitre": UnitMillilitre, "milliliter": UnitMillilitre, "mililitro": UnitMillilitre, "mililitros": UnitMillilitre,
	"l": UnitLitre, "lt": UnitLitre, "litre": UnitLitre, "liter": UnitLitre, "litro": UnitLitre, "litros": UnitLitre,
	"unit": UnitPiece, "u": UnitPiece, "und": UnitPiece, "unidad": UnitPiece, "unidades": UnitPiece, "pcs": UnitPiece,
}

// ParseUnit interpreta un código de unidad (sin distinguir mayúsculas).
func ParseUnit(s string) (Unit, error) {
	u, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unidad %q: %w", s, domain.ErrInvalidInput)
	}
	return u, nil
}

// Valid indica si u es una de las unidades soportadas.
func (u Unit) Valid() bool {
	switch u {
	case UnitGram, UnitKilogram, UnitMillilitre, UnitLitre, UnitPiece:
		return true
	}
	return false
}

func (u Unit) String() string { return string(u) }

package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/recetario/internal/domain"
	"github.com/shopspring/decimal"
)

// RawMaterial materia prima comprable: Price es el precio de un paquete de PackageSize unidades de Unit.
type RawMaterial struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	PackageSize decimal.Decimal `json:"packageSize"`
	Unit        Unit            `json:"unit"`
}

// Validate verifica las invariantes de la materia prima (PackageSize > 0, Price >= 0).
func (m RawMaterial) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name es requerido: %w", domain.ErrInvalidInput)
	}
	if m.Price.IsNegative() {
		return fmt.Errorf("price no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	if !m.PackageSize.IsPositive() {
		return fmt.Errorf("packageSize debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	if !m.Unit.Valid() {
		return fmt.Errorf("unidad %q: %w", m.Unit, domain.ErrInvalidInput)
	}
	return nil
}

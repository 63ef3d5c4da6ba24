package dto

import "github.com/shopspring/decimal"

// CreateRawMaterialRequest entrada para crear una materia prima.
type CreateRawMaterialRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	PackageSize decimal.Decimal `json:"packageSize"`
	Unit        string          `json:"unit"`
}

// UpdateRawMaterialRequest entrada para actualizar una materia prima (campos nil no cambian).
type UpdateRawMaterialRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	PackageSize *decimal.Decimal `json:"packageSize"`
	Unit        *string          `json:"unit"`
}

// RawMaterialResponse salida de una materia prima con su precio por unidad de compra.
// UnitPrice es nil si el dato guardado no permite calcularlo (ej. packageSize 0); Reason dice por qué.
type RawMaterialResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	PackageSize decimal.Decimal  `json:"packageSize"`
	Unit        string           `json:"unit"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	Reason      string           `json:"reason,omitempty"`
}

// RawMaterialListResponse lista de materias primas ordenada por nombre.
type RawMaterialListResponse struct {
	Items []RawMaterialResponse `json:"items"`
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrIncompatibleUnits las unidades de origen y destino no pertenecen a la misma dimensión.
	ErrIncompatibleUnits = errors.New("unidades incompatibles")
	// ErrUnresolvedMaterialReference un ingrediente apunta a una materia prima que ya no existe.
	ErrUnresolvedMaterialReference = errors.New("materia prima no encontrada")
	// ErrIncompleteCost el costo de la receta no pudo calcularse para todos sus ingredientes.
	ErrIncompleteCost = errors.New("costo incompleto")
)

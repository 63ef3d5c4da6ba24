package repository

import "context"

// Claves de las colecciones persistidas. Cada colección se guarda completa bajo su clave.
const (
	KeyRawMaterials = "rawMaterials"
	KeyRecipes      = "recipes"
	KeyFamilies     = "families"
)

// Entry par clave/valor serializado para escrituras en lote.
type Entry struct {
	Key   string
	Value []byte
}

// KVStore define el puerto de persistencia clave-valor (DIP).
// Load devuelve found=false si la clave no existe; el valor es opaco para el adaptador.
type KVStore interface {
	Load(ctx context.Context, key string) (value []byte, found bool, err error)
	Save(ctx context.Context, key string, value []byte) error
	// SaveBatch escribe varias claves. Los adaptadores con transacciones (sqlite, postgres)
	// las aplican de forma atómica; los demás las escriben en orden.
	SaveBatch(ctx context.Context, entries []Entry) error
	Close() error
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/recetario/internal/domain/entity"
	"github.com/jhoicas/recetario/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.KVStore = (*KVStore)(nil)

// querier lo comparten el pool y las transacciones.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// KVStore implementación del puerto KVStore sobre PostgreSQL.
//
// Cada clave se guarda en recetario_state (payload JSONB). La clave rawMaterials además se
// materializa en recetario_raw_material con precio y tamaño NUMERIC, y Load la lee desde ahí
// como decimal.Decimal (codec pgx-shopspring-decimal registrado en NewPool).
type KVStore struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewKVStore construye el adaptador y asegura la tabla.
func NewKVStore(ctx context.Context, pool *pgxpool.Pool) (*KVStore, error) {
	query := `
		CREATE TABLE IF NOT EXISTS recetario_state (
			key        TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := pool.Exec(ctx, query); err != nil {
		return nil, fmt.Errorf("create recetario_state: %w", err)
	}
	query = `
		CREATE TABLE IF NOT EXISTS recetario_raw_material (
			position     INT PRIMARY KEY,
			id           TEXT NOT NULL,
			name         TEXT NOT NULL,
			price        NUMERIC NOT NULL,
			package_size NUMERIC NOT NULL,
			unit         TEXT NOT NULL
		)`
	if _, err := pool.Exec(ctx, query); err != nil {
		return nil, fmt.Errorf("create recetario_raw_material: %w", err)
	}
	return &KVStore{pool: pool, tx: NewTxRunner(pool)}, nil
}

// Load obtiene el payload de key.
func (s *KVStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx, `SELECT payload FROM recetario_state WHERE key = $1`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get state %s: %w", key, err)
	}
	if key == repository.KeyRawMaterials {
		materials, err := s.rawMaterials(ctx)
		if err != nil {
			return nil, false, err
		}
		data, err := json.Marshal(materials)
		if err != nil {
			return nil, false, fmt.Errorf("serializar %s: %w", key, err)
		}
		return data, true, nil
	}
	return payload, true, nil
}

// Save reemplaza el payload de key.
func (s *KVStore) Save(ctx context.Context, key string, value []byte) error {
	if key != repository.KeyRawMaterials {
		return upsert(ctx, s.pool, key, value)
	}
	return s.tx.Run(ctx, func(tx pgx.Tx) error {
		return save(ctx, tx, key, value)
	})
}

// SaveBatch escribe todas las entradas dentro de una transacción.
func (s *KVStore) SaveBatch(ctx context.Context, entries []repository.Entry) error {
	return s.tx.Run(ctx, func(tx pgx.Tx) error {
		for _, e := range entries {
			if err := save(ctx, tx, e.Key, e.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

// rawMaterials lee el catálogo tipado en el orden guardado.
func (s *KVStore) rawMaterials(ctx context.Context) ([]entity.RawMaterial, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, price, package_size, unit
		FROM recetario_raw_material
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()

	out := []entity.RawMaterial{}
	for rows.Next() {
		var (
			m     entity.RawMaterial
			price decimal.Decimal
			size  decimal.Decimal
			unit  string
		)
		if err := rows.Scan(&m.ID, &m.Name, &price, &size, &unit); err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		m.Price, m.PackageSize, m.Unit = price, size, entity.Unit(unit)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	return out, nil
}

// Close cierra el pool.
func (s *KVStore) Close() error {
	s.pool.Close()
	return nil
}

// save escribe el payload y, para rawMaterials, reemplaza el catálogo tipado en la misma transacción.
func save(ctx context.Context, tx pgx.Tx, key string, value []byte) error {
	if err := upsert(ctx, tx, key, value); err != nil {
		return err
	}
	if key != repository.KeyRawMaterials {
		return nil
	}
	var materials []entity.RawMaterial
	if err := json.Unmarshal(value, &materials); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM recetario_raw_material`); err != nil {
		return fmt.Errorf("clear raw materials: %w", err)
	}
	query := `
		INSERT INTO recetario_raw_material (position, id, name, price, package_size, unit)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i, m := range materials {
		if _, err := tx.Exec(ctx, query, i, m.ID, m.Name, m.Price, m.PackageSize, string(m.Unit)); err != nil {
			return fmt.Errorf("insert raw material %s: %w", m.ID, err)
		}
	}
	return nil
}

func upsert(ctx context.Context, q querier, key string, value []byte) error {
	query := `
		INSERT INTO recetario_state (key, payload, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	if _, err := q.Exec(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("upsert state %s: %w", key, err)
	}
	return nil
}

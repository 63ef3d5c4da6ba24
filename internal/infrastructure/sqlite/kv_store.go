// Package sqlite implementa repository.KVStore sobre un archivo SQLite (driver puro Go).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/recetario/internal/domain/repository"
	_ "modernc.org/sqlite" // driver sqlite puro Go
)

var _ repository.KVStore = (*KVStore)(nil)

// KVStore guarda cada colección como un blob JSON en la tabla state.
type KVStore struct {
	db   *sql.DB
	path string
}

// NewKVStore abre (o crea) la base en path y asegura el esquema.
func NewKVStore(path string) (*KVStore, error) {
	if path == "" {
		path = "recetario.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("sqlite: crear directorios: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		key     TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: crear tabla state: %w", err)
	}
	return &KVStore{db: db, path: path}, nil
}

// Path ruta del archivo de base de datos.
func (s *KVStore) Path() string { return s.path }

// Load obtiene el payload de key.
func (s *KVStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("sqlite: leer %s: %w", key, err)
	}
	return payload, true, nil
}

const upsertState = `INSERT INTO state(key, payload) VALUES(?, ?)
	ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`

// Save reemplaza el payload de key.
func (s *KVStore) Save(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, upsertState, key, value); err != nil {
		return fmt.Errorf("sqlite: guardar %s: %w", key, err)
	}
	return nil
}

// SaveBatch escribe todas las entradas en una sola transacción.
func (s *KVStore) SaveBatch(ctx context.Context, entries []repository.Entry) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin transaction: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, upsertState, e.Key, e.Value); err != nil {
			return fmt.Errorf("sqlite: guardar %s: %w", e.Key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit transaction: %w", err)
	}
	return nil
}

// Close cierra la base.
func (s *KVStore) Close() error { return s.db.Close() }

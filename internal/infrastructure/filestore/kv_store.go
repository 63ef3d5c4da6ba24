// Package filestore implementa repository.KVStore como un archivo JSON por clave dentro de un directorio,
// el equivalente local del almacenamiento del navegador.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/jhoicas/recetario/internal/domain/repository"
)

var _ repository.KVStore = (*KVStore)(nil)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// KVStore guarda cada clave en <dir>/<key>.json.
type KVStore struct {
	dir string
}

// NewKVStore crea el directorio si no existe.
func NewKVStore(dir string) (*KVStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("filestore: directorio requerido")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("filestore: crear directorio: %w", err)
	}
	return &KVStore{dir: dir}, nil
}

// Dir directorio de datos.
func (s *KVStore) Dir() string { return s.dir }

func (s *KVStore) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("filestore: clave inválida %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Load lee el archivo de key; found=false si no existe.
func (s *KVStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("filestore: leer %s: %w", key, err)
	}
	return data, true, nil
}

// Save escribe en un archivo temporal y lo renombra, para no dejar un archivo a medio escribir.
func (s *KVStore) Save(_ context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("filestore: crear temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("filestore: escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: cerrar %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("filestore: renombrar %s: %w", key, err)
	}
	return nil
}

// SaveBatch escribe cada entrada en orden. No es atómico entre claves.
func (s *KVStore) SaveBatch(ctx context.Context, entries []repository.Entry) error {
	for _, e := range entries {
		if err := s.Save(ctx, e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// Close no hace nada.
func (s *KVStore) Close() error { return nil }

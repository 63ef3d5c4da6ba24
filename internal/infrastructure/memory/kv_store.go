// Package memory implementa repository.KVStore en memoria (tests y modo efímero).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/recetario/internal/domain/repository"
)

var _ repository.KVStore = (*KVStore)(nil)

// KVStore almacén en memoria; copia los valores al guardar y al leer.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKVStore construye un almacén vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string][]byte)}
}

// Load devuelve una copia del valor guardado bajo key.
func (s *KVStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Save reemplaza el valor de key.
func (s *KVStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

// SaveBatch escribe todas las entradas bajo un único lock.
func (s *KVStore) SaveBatch(_ context.Context, entries []repository.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.data[e.Key] = append([]byte(nil), e.Value...)
	}
	return nil
}

// Close no hace nada.
func (s *KVStore) Close() error { return nil }

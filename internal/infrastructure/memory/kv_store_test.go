package memory_test

import (
	"context"
	"testing"

	"github.com/jhoicas/recetario/internal/domain/repository"
	"github.com/jhoicas/recetario/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore_LoadSave(t *testing.T) {
	ctx := context.Background()
	s := memory.NewKVStore()

	_, found, err := s.Load(ctx, repository.KeyRecipes)
	require.NoError(t, err)
	assert.False(t, found)

	in := []byte(`[{"id":"a"}]`)
	require.NoError(t, s.Save(ctx, repository.KeyRecipes, in))
	in[0] = 'X' // el almacén no comparte el slice del llamador

	got, found, err := s.Load(ctx, repository.KeyRecipes)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"a"}]`, string(got))
}

func TestKVStore_SaveBatch(t *testing.T) {
	ctx := context.Background()
	s := memory.NewKVStore()
	require.NoError(t, s.SaveBatch(ctx, []repository.Entry{
		{Key: repository.KeyFamilies, Value: []byte(`[]`)},
		{Key: repository.KeyRecipes, Value: []byte(`[1]`)},
	}))
	v, _, _ := s.Load(ctx, repository.KeyRecipes)
	assert.Equal(t, "[1]", string(v))
	v, _, _ = s.Load(ctx, repository.KeyFamilies)
	assert.Equal(t, "[]", string(v))
	assert.NoError(t, s.Close())
}

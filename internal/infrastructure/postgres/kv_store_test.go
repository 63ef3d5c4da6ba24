package postgres_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/recetario/internal/domain/entity"
	"github.com/jhoicas/recetario/internal/domain/repository"
	"github.com/jhoicas/recetario/internal/infrastructure/postgres"
	"github.com/jhoicas/recetario/pkg/config"
)

// Requiere una base real: RECETARIO_TEST_DATABASE_URL=postgres://... go test ./...
func newTestKVStore(t *testing.T) *postgres.KVStore {
	t.Helper()
	url := os.Getenv("RECETARIO_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("RECETARIO_TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	kv, err := postgres.NewKVStore(ctx, pool)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestKVStore_LoadSave(t *testing.T) {
	kv := newTestKVStore(t)
	ctx := context.Background()
	key := "test_" + uuid.NewString()

	_, found, err := kv.Load(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Save(ctx, key, []byte(`[{"id":"f1","name":"Panes"}]`)))
	require.NoError(t, kv.Save(ctx, key, []byte(`[{"id":"f2","name":"Tortas"}]`)))

	got, found, err := kv.Load(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":"f2","name":"Tortas"}]`, string(got))
}

func TestKVStore_SaveBatchEsAtomico(t *testing.T) {
	kv := newTestKVStore(t)
	ctx := context.Background()
	a, b := "test_"+uuid.NewString(), "test_"+uuid.NewString()

	require.NoError(t, kv.SaveBatch(ctx, []repository.Entry{
		{Key: a, Value: []byte(`[]`)},
		{Key: b, Value: []byte(`["x"]`)},
	}))

	// la segunda entrada no es JSON válido: la primera no debe quedar escrita
	err := kv.SaveBatch(ctx, []repository.Entry{
		{Key: a, Value: []byte(`["cambiado"]`)},
		{Key: b, Value: []byte(`no es json`)},
	})
	require.Error(t, err)

	got, _, err := kv.Load(ctx, a)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))
}

func TestKVStore_RawMaterialsConDecimalesExactos(t *testing.T) {
	kv := newTestKVStore(t)
	ctx := context.Background()

	in := []entity.RawMaterial{
		{ID: "m1", Name: "Harina", Price: decimal.RequireFromString("10.125"), PackageSize: decimal.RequireFromString("1"), Unit: entity.UnitKilogram},
		{ID: "m2", Name: "Leche", Price: decimal.RequireFromString("0.99"), PackageSize: decimal.RequireFromString("0.333333333333333333"), Unit: entity.UnitLitre},
	}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	require.NoError(t, kv.Save(ctx, repository.KeyRawMaterials, raw))

	got, found, err := kv.Load(ctx, repository.KeyRawMaterials)
	require.NoError(t, err)
	require.True(t, found)

	var out []entity.RawMaterial
	require.NoError(t, json.Unmarshal(got, &out))
	require.Len(t, out, 2)
	assert.Equal(t, "m1", out[0].ID)
	assert.True(t, in[0].Price.Equal(out[0].Price), "precio %s", out[0].Price)
	assert.True(t, in[1].PackageSize.Equal(out[1].PackageSize), "tamaño %s", out[1].PackageSize)
	assert.Equal(t, entity.UnitLitre, out[1].Unit)

	// un lote que falla no toca el catálogo tipado
	err = kv.SaveBatch(ctx, []repository.Entry{
		{Key: repository.KeyRawMaterials, Value: []byte(`[]`)},
		{Key: "test_" + uuid.NewString(), Value: []byte(`no es json`)},
	})
	require.Error(t, err)
	got, _, err = kv.Load(ctx, repository.KeyRawMaterials)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(got, &out))
	assert.Len(t, out, 2)
}

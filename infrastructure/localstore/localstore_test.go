package localstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fintrak-api/infrastructure/database/sqlite"
	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/internal/usecases/reconciling"
)

type backend interface {
	KV
	reconciling.Transactor
	reconciling.DirtyTracker
}

func backends(t *testing.T) map[string]backend {
	t.Helper()

	conn, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "fintrak.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return map[string]backend{
		"sqlite":  NewSQLiteKV(conn),
		"memória": NewMemoryKV(),
	}
}

func TestKVGetPutDelete(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := kv.Get(ctx, "k")
			assert.ErrorIs(t, err, reconciling.ErrNotFound)

			require.NoError(t, kv.Put(ctx, "k", []byte(`{"a":1}`)))
			require.NoError(t, kv.Put(ctx, "k", []byte(`{"a":2}`)))

			got, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.JSONEq(t, `{"a":2}`, string(got))

			require.NoError(t, kv.Delete(ctx, "k"))
			require.NoError(t, kv.Delete(ctx, "k"))

			_, err = kv.Get(ctx, "k")
			assert.ErrorIs(t, err, reconciling.ErrNotFound)
		})
	}
}

func TestKVTransacao(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, kv.Put(ctx, "lotes", []byte(`[]`)))

			boom := errors.New("boom")
			err := kv.InTx(ctx, func(ctx context.Context) error {
				require.NoError(t, kv.Put(ctx, "lotes", []byte(`[1]`)))
				require.NoError(t, kv.Put(ctx, "vendas", []byte(`[1]`)))
				require.NoError(t, kv.MarkDirty(ctx, "lotes"))
				return boom
			})
			assert.ErrorIs(t, err, boom)

			got, err := kv.Get(ctx, "lotes")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got))
			_, err = kv.Get(ctx, "vendas")
			assert.ErrorIs(t, err, reconciling.ErrNotFound)
			dirty, err := kv.IsDirty(ctx, "lotes")
			require.NoError(t, err)
			assert.False(t, dirty)

			err = kv.InTx(ctx, func(ctx context.Context) error {
				if err := kv.Put(ctx, "lotes", []byte(`[2]`)); err != nil {
					return err
				}
				return kv.InTx(ctx, func(ctx context.Context) error {
					return kv.Put(ctx, "vendas", []byte(`[2]`))
				})
			})
			require.NoError(t, err)

			got, err = kv.Get(ctx, "vendas")
			require.NoError(t, err)
			assert.Equal(t, `[2]`, string(got))
		})
	}
}

func TestKVMarcasPendentes(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			dirty, err := kv.IsDirty(ctx, "snapshot:u1")
			require.NoError(t, err)
			assert.False(t, dirty)

			require.NoError(t, kv.MarkDirty(ctx, "snapshot:u1"))
			require.NoError(t, kv.MarkDirty(ctx, "snapshot:u1"))
			dirty, err = kv.IsDirty(ctx, "snapshot:u1")
			require.NoError(t, err)
			assert.True(t, dirty)

			require.NoError(t, kv.ClearDirty(ctx, "snapshot:u1"))
			dirty, err = kv.IsDirty(ctx, "snapshot:u1")
			require.NoError(t, err)
			assert.False(t, dirty)
		})
	}
}

func TestJSONStore(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	store := NewJSONStore[[]domain.InventoryBatch](kv, InventoryBatchesKey)

	assert.Equal(t, "fintrak-inventory-batches-u1", store.Key("u1"))

	_, err := store.Get(ctx, "u1")
	assert.ErrorIs(t, err, reconciling.ErrNotFound)

	batches := []domain.InventoryBatch{{ID: "batch_1", BatchName: "Lote 1", QtyInStock: 10, CostPerUnit: 2.5}}
	require.NoError(t, store.Put(ctx, "u1", batches))

	raw, err := kv.Get(ctx, "fintrak-inventory-batches-u1")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"batchName":"Lote 1"`)

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, batches, got)

	require.NoError(t, store.Delete(ctx, "u1"))
	_, err = store.Get(ctx, "u1")
	assert.ErrorIs(t, err, reconciling.ErrNotFound)
}

func TestJSONStoreDocumentoInvalido(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Put(ctx, "fintrak-financial-data-u1", []byte("não é json")))

	store := NewJSONStore[domain.FinancialSnapshot](kv, FinancialDataKey)
	_, err := store.Get(ctx, "u1")

	require.Error(t, err)
	assert.False(t, errors.Is(err, reconciling.ErrNotFound))
}

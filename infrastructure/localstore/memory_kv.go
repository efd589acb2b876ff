package localstore

import (
	"context"
	"sync"

	"github.com/vfg2006/fintrak-api/internal/usecases/reconciling"
)

type memTxKey struct{}

// MemoryKV mantém o cache em memória, usado quando não há arquivo local configurado
type MemoryKV struct {
	mu    sync.Mutex
	data  map[string][]byte
	dirty map[string]bool
	txMu  sync.Mutex
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		data:  make(map[string][]byte),
		dirty: make(map[string]bool),
	}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.data[key]
	if !ok {
		return nil, reconciling.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (m *MemoryKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

// InTx restaura os dados anteriores se fn falhar. Transações não concorrem entre si.
func (m *MemoryKV) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return fn(ctx)
	}

	m.txMu.Lock()
	defer m.txMu.Unlock()

	data, dirty := m.copyState()
	if err := fn(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		m.mu.Lock()
		m.data, m.dirty = data, dirty
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *MemoryKV) copyState() (map[string][]byte, map[string]bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data := make(map[string][]byte, len(m.data))
	for k, v := range m.data {
		data[k] = v
	}
	dirty := make(map[string]bool, len(m.dirty))
	for k, v := range m.dirty {
		dirty[k] = v
	}
	return data, dirty
}

func (m *MemoryKV) MarkDirty(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirty[key] = true
	return nil
}

func (m *MemoryKV) ClearDirty(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.dirty, key)
	return nil
}

func (m *MemoryKV) IsDirty(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirty[key], nil
}

var (
	_ KV                       = (*MemoryKV)(nil)
	_ reconciling.Transactor   = (*MemoryKV)(nil)
	_ reconciling.DirtyTracker = (*MemoryKV)(nil)
)

package reconciling

import (
	"context"
	"errors"
	"sync"
	"time"
)

type memoryStore[T any] struct {
	mu      sync.Mutex
	data    map[string]T
	getErr  error
	putErr  error
	delErr  error
	puts    []T
	deletes []string
	// onDelete é chamado antes de cada remoção remota
	onDelete func()
}

func newMemoryStore[T any]() *memoryStore[T] {
	return &memoryStore[T]{data: make(map[string]T)}
}

func (s *memoryStore[T]) Get(_ context.Context, key string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if s.getErr != nil {
		return zero, s.getErr
	}
	v, ok := s.data[key]
	if !ok {
		return zero, ErrNotFound
	}
	return v, nil
}

func (s *memoryStore[T]) Put(_ context.Context, key string, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.putErr != nil {
		return s.putErr
	}
	s.data[key] = value
	s.puts = append(s.puts, value)
	return nil
}

func (s *memoryStore[T]) Delete(_ context.Context, key string) error {
	if s.onDelete != nil {
		s.onDelete()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.delErr != nil {
		return s.delErr
	}
	s.deletes = append(s.deletes, key)
	if _, ok := s.data[key]; !ok {
		return ErrNotFound
	}
	delete(s.data, key)
	return nil
}

func (s *memoryStore[T]) value(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

type memoryDirty struct {
	mu   sync.Mutex
	keys map[string]bool
}

func newMemoryDirty() *memoryDirty {
	return &memoryDirty{keys: make(map[string]bool)}
}

func (d *memoryDirty) MarkDirty(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keys[key] = true
	return nil
}

func (d *memoryDirty) ClearDirty(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.keys, key)
	return nil
}

func (d *memoryDirty) IsDirty(_ context.Context, key string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.keys[key], nil
}

// fakeTx não isola nada; só registra commits e propaga o erro de fn
type fakeTx struct {
	commits int
	open    bool
}

func (tx *fakeTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.open = true
	defer func() { tx.open = false }()

	if err := fn(ctx); err != nil {
		return err
	}
	tx.commits++
	return nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var errOffline = errors.Join(ErrUnavailable, errors.New("dial tcp: connection refused"))

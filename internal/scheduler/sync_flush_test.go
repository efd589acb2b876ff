package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fintrak-api/internal/config"
	"github.com/vfg2006/fintrak-api/internal/usecases/reconciling"
)

func newQueueWithWrites(t *testing.T, results ...error) *reconciling.WriteQueue {
	t.Helper()
	q := reconciling.NewWriteQueue(reconciling.WithDebounceWindow(0))
	for i, err := range results {
		q.Enqueue(string(rune('a'+i)), func(context.Context) error { return err })
	}
	return q
}

func TestRunOnce_DrainsQueue(t *testing.T) {
	q := newQueueWithWrites(t, nil, errors.New("offline"))
	s := NewSyncFlushService(q, config.Sync{Enabled: true, CronSchedule: "*/1 * * * * *"})

	result := s.RunOnce(context.Background())

	assert.Equal(t, 1, result.Written)
	assert.Equal(t, 1, result.Failed)

	status := s.Status()
	assert.False(t, status.Running)
	assert.Equal(t, 0, status.Pending)
	assert.Equal(t, result, status.LastResult)
	assert.False(t, status.LastCompletedAt.Before(status.LastStartedAt))
}

func TestStart_DisabledDoesNothing(t *testing.T) {
	q := newQueueWithWrites(t, nil)
	s := NewSyncFlushService(q, config.Sync{Enabled: false, CronSchedule: "*/1 * * * * *"})

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, 1, q.Len())
}

func TestStart_InvalidSchedule(t *testing.T) {
	s := NewSyncFlushService(reconciling.NewWriteQueue(), config.Sync{Enabled: true, CronSchedule: "todo dia"})

	assert.Error(t, s.Start(context.Background()))
}

func TestStop_FlushesPendingWrites(t *testing.T) {
	var calls atomic.Int32
	q := reconciling.NewWriteQueue(reconciling.WithDebounceWindow(time.Hour))
	q.Enqueue("financial:u1", func(context.Context) error {
		calls.Add(1)
		return nil
	})

	s := NewSyncFlushService(q, config.Sync{Enabled: false})

	// a janela não expirou, então a drenagem não envia nada
	assert.Equal(t, 0, s.RunOnce(context.Background()).Written)

	result := s.Stop(context.Background())
	assert.Equal(t, 1, result.Written)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 0, q.Len())
}

func TestStart_DrainsOnSchedule(t *testing.T) {
	var calls atomic.Int32
	q := reconciling.NewWriteQueue(reconciling.WithDebounceWindow(0))
	q.Enqueue("batches:u1", func(context.Context) error {
		calls.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewSyncFlushService(q, config.Sync{Enabled: true, CronSchedule: "*/1 * * * * *"})
	require.NoError(t, s.Start(ctx))
	defer s.Stop(context.Background())

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 3*time.Second, 50*time.Millisecond)
}

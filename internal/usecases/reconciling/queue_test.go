package reconciling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriteQueueAgrupaPorChave(t *testing.T) {
	clock := newFakeClock()
	q := NewWriteQueue(WithClock(clock.Now))
	ctx := context.Background()

	var written []string
	writer := func(v string) WriteFunc {
		return func(context.Context) error {
			written = append(written, v)
			return nil
		}
	}

	q.Enqueue("a", writer("a1"))
	clock.Advance(500 * time.Millisecond)
	q.Enqueue("a", writer("a2"))
	q.Enqueue("b", writer("b1"))

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, DrainResult{}, q.Drain(ctx))

	clock.Advance(999 * time.Millisecond)
	assert.Equal(t, DrainResult{}, q.Drain(ctx))

	clock.Advance(time.Millisecond)
	assert.Equal(t, DrainResult{Written: 2}, q.Drain(ctx))
	assert.Equal(t, []string{"a2", "b1"}, written)
	assert.Equal(t, 0, q.Len())
}

func TestWriteQueueFlush(t *testing.T) {
	q := NewWriteQueue(WithClock(newFakeClock().Now))
	failing := func(context.Context) error { return errors.New("falhou") }
	ok := func(context.Context) error { return nil }

	q.Enqueue("x", failing)
	q.Enqueue("y", ok)

	assert.Equal(t, DrainResult{Written: 1, Failed: 1}, q.Flush(context.Background()))
	assert.False(t, q.Pending("x"))
	assert.Equal(t, 0, q.Len())
}

func TestWriteQueueCancelEPendente(t *testing.T) {
	q := NewWriteQueue(WithDebounceWindow(0))
	ctx := context.Background()

	q.Enqueue("k", func(context.Context) error { return nil })
	assert.True(t, q.Pending("k"))
	assert.True(t, q.Queued("k"))
	assert.True(t, q.Cancel("k"))
	assert.False(t, q.Cancel("k"))
	assert.False(t, q.Pending("k"))

	var duringWrite, queuedDuringWrite bool
	q.Enqueue("k", func(context.Context) error {
		duringWrite = q.Pending("k")
		queuedDuringWrite = q.Queued("k")
		return nil
	})
	q.Drain(ctx)

	assert.True(t, duringWrite)
	assert.False(t, queuedDuringWrite)
	assert.False(t, q.Pending("k"))
}

package reconciling

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/fintrak-api/pkg/log"
)

// DefaultDebounceWindow é a janela em que salvamentos da mesma chave se agrupam
const DefaultDebounceWindow = time.Second

// WriteFunc é uma escrita remota pendente
type WriteFunc func(ctx context.Context) error

type pendingWrite struct {
	key        string
	write      WriteFunc
	enqueuedAt time.Time
	seq        uint64
}

// DrainResult resume uma drenagem da fila
type DrainResult struct {
	Written int
	Failed  int
}

// WriteQueue guarda no máximo uma escrita remota pendente por chave.
// Um Enqueue substitui a escrita anterior da mesma chave e reinicia a janela.
type WriteQueue struct {
	mu       sync.Mutex
	pending  map[string]*pendingWrite
	inFlight map[string]int
	window   time.Duration
	now      func() time.Time
	seq      uint64
}

type QueueOption func(*WriteQueue)

// WithClock substitui o relógio, usado nos testes
func WithClock(now func() time.Time) QueueOption {
	return func(q *WriteQueue) {
		q.now = now
	}
}

// WithDebounceWindow altera a janela de agrupamento
func WithDebounceWindow(window time.Duration) QueueOption {
	return func(q *WriteQueue) {
		if window >= 0 {
			q.window = window
		}
	}
}

func NewWriteQueue(opts ...QueueOption) *WriteQueue {
	q := &WriteQueue{
		pending:  make(map[string]*pendingWrite),
		inFlight: make(map[string]int),
		window:   DefaultDebounceWindow,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue agenda a escrita para a chave, substituindo a pendente
func (q *WriteQueue) Enqueue(key string, write WriteFunc) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.seq++
	q.pending[key] = &pendingWrite{
		key:        key,
		write:      write,
		enqueuedAt: q.now(),
		seq:        q.seq,
	}
}

// Cancel descarta a escrita pendente da chave
func (q *WriteQueue) Cancel(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	_, ok := q.pending[key]
	delete(q.pending, key)
	return ok
}

// Pending informa se há escrita pendente ou em andamento para a chave
func (q *WriteQueue) Pending(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	_, ok := q.pending[key]
	return ok || q.inFlight[key] > 0
}

// Queued informa se há escrita aguardando drenagem, ignorando as em andamento
func (q *WriteQueue) Queued(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	_, ok := q.pending[key]
	return ok
}

// Len retorna o número de chaves com escrita pendente
func (q *WriteQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain executa as escritas cuja janela já expirou
func (q *WriteQueue) Drain(ctx context.Context) DrainResult {
	return q.run(ctx, false)
}

// Flush executa todas as escritas pendentes imediatamente
func (q *WriteQueue) Flush(ctx context.Context) DrainResult {
	return q.run(ctx, true)
}

func (q *WriteQueue) run(ctx context.Context, all bool) DrainResult {
	ready := q.take(all)

	var result DrainResult
	for _, pw := range ready {
		err := pw.write(ctx)
		q.done(pw.key)

		if err != nil {
			result.Failed++
			log.ForContext(ctx).WithField("key", pw.key).WithError(err).
				Warn("Escrita remota falhou, mantendo a cópia local")
			continue
		}
		result.Written++
	}

	return result
}

func (q *WriteQueue) take(all bool) []*pendingWrite {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	ready := make([]*pendingWrite, 0, len(q.pending))
	for key, pw := range q.pending {
		if !all && now.Sub(pw.enqueuedAt) < q.window {
			continue
		}
		ready = append(ready, pw)
		delete(q.pending, key)
		q.inFlight[key]++
	}

	sort.Slice(ready, func(i, j int) bool { return ready[i].seq < ready[j].seq })
	return ready
}

func (q *WriteQueue) done(key string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.inFlight[key]--
	if q.inFlight[key] <= 0 {
		delete(q.inFlight, key)
	}
}

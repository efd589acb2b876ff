package reconciling

import (
	"context"
	"errors"

	"github.com/vfg2006/fintrak-api/pkg/log"
)

// Reconciler combina um Store remoto e um local para um tipo de entidade.
// Leituras tentam o remoto primeiro; escritas vão para o local na hora e
// para o remoto pela WriteQueue.
type Reconciler[T any] struct {
	name   string
	remote Store[T]
	local  Store[T]
	queue  *WriteQueue
	dirty  DirtyTracker
	empty  func() T
}

type Option[T any] func(*Reconciler[T])

// WithEmpty define o valor retornado quando nada existe em nenhum dos lados
func WithEmpty[T any](empty func() T) Option[T] {
	return func(r *Reconciler[T]) {
		r.empty = empty
	}
}

// WithDirtyTracker ativa o reenvio de edições que não chegaram ao remoto
func WithDirtyTracker[T any](tracker DirtyTracker) Option[T] {
	return func(r *Reconciler[T]) {
		r.dirty = tracker
	}
}

func New[T any](name string, remote, local Store[T], queue *WriteQueue, opts ...Option[T]) *Reconciler[T] {
	r := &Reconciler[T]{
		name:   name,
		remote: remote,
		local:  local,
		queue:  queue,
		empty: func() T {
			var zero T
			return zero
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// QueueKey é a chave usada na fila e nas marcas de pendência
func (r *Reconciler[T]) QueueKey(key string) string {
	return r.name + ":" + key
}

// Load nunca retorna erro: se o remoto falhar, usa a cópia local ou o valor vazio.
func (r *Reconciler[T]) Load(ctx context.Context, key string) T {
	qkey := r.QueueKey(key)
	logger := log.ForContext(ctx).WithField("key", qkey)

	if r.queue.Pending(qkey) {
		logger.Debug("Escrita remota pendente, usando cópia local")
		return r.loadLocal(ctx, key)
	}

	if r.isDirty(ctx, qkey) {
		logger.Info("Cópia local mais recente que o remoto, reenviando")
		value := r.loadLocal(ctx, key)
		r.schedule(qkey, key, value)
		return value
	}

	value, err := r.remote.Get(ctx, key)
	switch {
	case err == nil:
		if err := r.local.Put(ctx, key, value); err != nil {
			logger.WithError(err).Warn("Erro ao espelhar valor remoto no cache local")
		}
		return value

	case errors.Is(err, ErrNotFound):
		if err := r.local.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
			logger.WithError(err).Warn("Erro ao limpar cache local")
		}
		return r.empty()

	default:
		logger.WithError(err).Info("Armazenamento remoto indisponível, usando cópia local")
		return r.loadLocal(ctx, key)
	}
}

// Save grava no cache local de forma síncrona e agenda a escrita remota.
// Somente erros locais são retornados.
func (r *Reconciler[T]) Save(ctx context.Context, key string, value T) error {
	qkey := r.QueueKey(key)

	if err := r.local.Put(ctx, key, value); err != nil {
		return err
	}
	if r.dirty != nil {
		if err := r.dirty.MarkDirty(ctx, qkey); err != nil {
			return err
		}
	}

	if staged := stagedFrom(ctx); staged != nil {
		staged.add(func() { r.schedule(qkey, key, value) })
		return nil
	}

	r.schedule(qkey, key, value)
	return nil
}

// Delete limpa o cache local e tenta remover no remoto; falhas remotas são ignoradas.
// Dentro de Atomic a remoção remota é adiada até o commit.
func (r *Reconciler[T]) Delete(ctx context.Context, key string) error {
	qkey := r.QueueKey(key)
	r.queue.Cancel(qkey)

	if err := r.local.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if r.dirty != nil {
		if err := r.dirty.ClearDirty(ctx, qkey); err != nil {
			return err
		}
	}

	remoteDelete := func() {
		if err := r.remote.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
			log.ForContext(ctx).WithField("key", qkey).WithError(err).
				Warn("Erro ao remover no armazenamento remoto, ignorando")
		}
	}

	if staged := stagedFrom(ctx); staged != nil {
		staged.add(remoteDelete)
		return nil
	}

	remoteDelete()
	return nil
}

// Local lê apenas o cache local
func (r *Reconciler[T]) Local(ctx context.Context, key string) T {
	return r.loadLocal(ctx, key)
}

func (r *Reconciler[T]) schedule(qkey, key string, value T) {
	r.queue.Enqueue(qkey, func(ctx context.Context) error {
		if err := r.remote.Put(ctx, key, value); err != nil {
			return err
		}
		// uma escrita mais nova da mesma chave mantém a marca
		if r.dirty == nil || r.queue.Queued(qkey) {
			return nil
		}
		return r.dirty.ClearDirty(ctx, qkey)
	})
}

func (r *Reconciler[T]) loadLocal(ctx context.Context, key string) T {
	value, err := r.local.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.ForContext(ctx).WithField("key", r.QueueKey(key)).WithError(err).
				Warn("Erro ao ler cache local")
		}
		return r.empty()
	}
	return value
}

func (r *Reconciler[T]) isDirty(ctx context.Context, qkey string) bool {
	if r.dirty == nil {
		return false
	}
	dirty, err := r.dirty.IsDirty(ctx, qkey)
	if err != nil {
		log.ForContext(ctx).WithField("key", qkey).WithError(err).Warn("Erro ao consultar pendências locais")
		return false
	}
	return dirty
}

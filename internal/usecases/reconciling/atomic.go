package reconciling

import (
	"context"
	"sync"
)

type stagedKey struct{}

type stagedWrites struct {
	mu     sync.Mutex
	writes []func()
}

func (s *stagedWrites) add(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, fn)
}

func stagedFrom(ctx context.Context) *stagedWrites {
	staged, _ := ctx.Value(stagedKey{}).(*stagedWrites)
	return staged
}

// Atomic executa fn em uma transação local. As escritas remotas agendadas por
// Save e as remoções feitas por Delete dentro de fn só acontecem depois do
// commit; em caso de erro são descartadas.
func Atomic(ctx context.Context, tx Transactor, fn func(ctx context.Context) error) error {
	if stagedFrom(ctx) != nil {
		return fn(ctx)
	}

	staged := &stagedWrites{}
	ctx = context.WithValue(ctx, stagedKey{}, staged)

	if err := tx.InTx(ctx, fn); err != nil {
		return err
	}

	for _, write := range staged.writes {
		write()
	}
	return nil
}

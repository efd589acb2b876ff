// Package reconciling concilia o armazenamento remoto, que é a fonte de verdade,
// com o cache local usado quando o remoto não responde.
package reconciling

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("registro não encontrado")
	ErrUnauthenticated = errors.New("não autenticado no armazenamento remoto")
	ErrUnavailable     = errors.New("armazenamento remoto indisponível")
)

// Store é o repositório tipado de um tipo de entidade, implementado uma vez
// para o backend local e outra para o remoto.
type Store[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Put(ctx context.Context, key string, value T) error
	Delete(ctx context.Context, key string) error
}

// Transactor executa fn em uma única transação local.
// Chamadas ao Store local feitas com o ctx recebido participam da transação.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DirtyTracker marca chaves cuja escrita remota ainda não foi confirmada.
// A marca sobrevive ao processo, permitindo reenviar edições feitas offline.
type DirtyTracker interface {
	MarkDirty(ctx context.Context, key string) error
	ClearDirty(ctx context.Context, key string) error
	IsDirty(ctx context.Context, key string) (bool, error)
}

// IsRemoteFailure informa se o erro deve acionar o fallback local
func IsRemoteFailure(err error) bool {
	return err != nil && !errors.Is(err, ErrNotFound)
}

// Package localstore implementa o cache local do cliente sobre um KV de documentos JSON.
package localstore

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/fintrak-api/internal/usecases/reconciling"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Chaves usadas no cache local
const (
	FinancialDataKey     = "fintrak-financial-data-%s"
	InventoryBatchesKey  = "fintrak-inventory-batches-%s"
	SalesRecordsKey      = "fintrak-sales-records-%s"
	CashOnHandKey        = "fintrak-cash-on-hand"
	Week1BalanceKey      = "fintrak-week1-balance"
	AdditionalBalanceKey = "fintrak-additional-balances"
	LastUpdateKey        = "fintrak-last-update"
)

// KV guarda documentos brutos por chave. Get de chave ausente retorna
// reconciling.ErrNotFound; Delete de chave ausente não é erro.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// PutJSON serializa v e grava na chave
func PutJSON(ctx context.Context, kv KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "erro ao serializar %s", key)
	}
	return kv.Put(ctx, key, raw)
}

// GetJSON lê a chave e desserializa em v
func GetJSON(ctx context.Context, kv KV, key string, v any) error {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrapf(err, "erro ao desserializar %s", key)
	}
	return nil
}

// JSONStore expõe um KV como reconciling.Store[T], montando a chave com format
type JSONStore[T any] struct {
	kv     KV
	format string
}

func NewJSONStore[T any](kv KV, format string) *JSONStore[T] {
	return &JSONStore[T]{kv: kv, format: format}
}

// Key retorna a chave física usada para o identificador
func (s *JSONStore[T]) Key(id string) string {
	return fmt.Sprintf(s.format, id)
}

func (s *JSONStore[T]) Get(ctx context.Context, id string) (T, error) {
	var value T
	if err := GetJSON(ctx, s.kv, s.Key(id), &value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

func (s *JSONStore[T]) Put(ctx context.Context, id string, value T) error {
	return PutJSON(ctx, s.kv, s.Key(id), value)
}

func (s *JSONStore[T]) Delete(ctx context.Context, id string) error {
	return s.kv.Delete(ctx, s.Key(id))
}

var _ reconciling.Store[int] = (*JSONStore[int])(nil)

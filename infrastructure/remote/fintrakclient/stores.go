package fintrakclient

import (
	"context"
	"errors"

	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/internal/usecases/reconciling"
)

// SnapshotStore é o snapshot financeiro no servidor. O usuário vem do token,
// então a chave só identifica a entrada no cache local.
type SnapshotStore struct {
	client *Client
}

func NewSnapshotStore(client *Client) *SnapshotStore {
	return &SnapshotStore{client: client}
}

func (s *SnapshotStore) Get(ctx context.Context, _ string) (domain.FinancialSnapshot, error) {
	return s.client.GetFinancialData(ctx)
}

func (s *SnapshotStore) Put(ctx context.Context, _ string, snapshot domain.FinancialSnapshot) error {
	return s.client.PutFinancialData(ctx, snapshot)
}

func (s *SnapshotStore) Delete(ctx context.Context, _ string) error {
	return s.client.DeleteFinancialData(ctx)
}

// BatchListStore é a lista de lotes do usuário. Put converge o servidor para
// a lista recebida: grava todos os lotes e remove os que não existem mais.
type BatchListStore struct {
	client *Client
}

func NewBatchListStore(client *Client) *BatchListStore {
	return &BatchListStore{client: client}
}

func (s *BatchListStore) Get(ctx context.Context, _ string) ([]domain.InventoryBatch, error) {
	return s.client.ListBatches(ctx)
}

func (s *BatchListStore) Put(ctx context.Context, _ string, batches []domain.InventoryBatch) error {
	remote, err := s.client.ListBatches(ctx)
	if err != nil {
		return err
	}

	keep := make(map[string]bool, len(batches))
	for _, b := range batches {
		keep[b.ID] = true
		if err := s.client.PutBatch(ctx, b); err != nil {
			return err
		}
	}

	for _, b := range remote {
		if keep[b.ID] {
			continue
		}
		if err := s.client.DeleteBatch(ctx, b.ID); ignoreNotFound(err) != nil {
			return err
		}
	}
	return nil
}

func (s *BatchListStore) Delete(ctx context.Context, key string) error {
	return s.Put(ctx, key, nil)
}

// SalesListStore é a lista de vendas de um lote, indexada pelo id do lote.
// Vendas não são editadas, então Put só cria as novas e remove as que sumiram.
type SalesListStore struct {
	client *Client
}

func NewSalesListStore(client *Client) *SalesListStore {
	return &SalesListStore{client: client}
}

func (s *SalesListStore) Get(ctx context.Context, batchID string) ([]domain.SalesRecord, error) {
	return s.client.ListSales(ctx, batchID)
}

func (s *SalesListStore) Put(ctx context.Context, batchID string, sales []domain.SalesRecord) error {
	remote, err := s.client.ListSales(ctx, batchID)
	if err != nil {
		return err
	}

	existing := make(map[string]bool, len(remote))
	for _, sale := range remote {
		existing[sale.ID] = true
	}

	keep := make(map[string]bool, len(sales))
	for _, sale := range sales {
		keep[sale.ID] = true
		if existing[sale.ID] {
			continue
		}
		if err := s.client.CreateSale(ctx, sale); err != nil {
			return err
		}
	}

	for _, sale := range remote {
		if keep[sale.ID] {
			continue
		}
		if err := s.client.DeleteSale(ctx, sale.ID); ignoreNotFound(err) != nil {
			return err
		}
	}
	return nil
}

func (s *SalesListStore) Delete(ctx context.Context, batchID string) error {
	return s.Put(ctx, batchID, nil)
}

func ignoreNotFound(err error) error {
	if errors.Is(err, reconciling.ErrNotFound) {
		return nil
	}
	return err
}

var (
	_ reconciling.Store[domain.FinancialSnapshot] = (*SnapshotStore)(nil)
	_ reconciling.Store[[]domain.InventoryBatch]  = (*BatchListStore)(nil)
	_ reconciling.Store[[]domain.SalesRecord]     = (*SalesListStore)(nil)
)

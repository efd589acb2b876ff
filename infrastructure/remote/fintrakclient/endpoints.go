package fintrakclient

import (
	"context"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/internal/usecases/reconciling"
)

// GetFinancialData retorna o snapshot do usuário; um objeto vazio vira ErrNotFound
func (c *Client) GetFinancialData(ctx context.Context) (domain.FinancialSnapshot, error) {
	var raw jsoniter.RawMessage
	if err := c.do(ctx, http.MethodGet, "/financial-data", nil, nil, &raw); err != nil {
		return domain.FinancialSnapshot{}, err
	}

	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		return domain.FinancialSnapshot{}, reconciling.ErrNotFound
	}

	var snapshot domain.FinancialSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return domain.FinancialSnapshot{}, err
	}
	return snapshot, nil
}

func (c *Client) PutFinancialData(ctx context.Context, snapshot domain.FinancialSnapshot) error {
	return c.do(ctx, http.MethodPut, "/financial-data", nil, snapshot, nil)
}

func (c *Client) DeleteFinancialData(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/financial-data", nil, nil, nil)
}

func (c *Client) ListBatches(ctx context.Context) ([]domain.InventoryBatch, error) {
	batches := []domain.InventoryBatch{}
	if err := c.do(ctx, http.MethodGet, "/inventory-batches", nil, nil, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

// PutBatch cria ou atualiza o lote pelo id
func (c *Client) PutBatch(ctx context.Context, batch domain.InventoryBatch) error {
	return c.do(ctx, http.MethodPut, "/inventory-batches/"+url.PathEscape(batch.ID), nil, batch, nil)
}

func (c *Client) DeleteBatch(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/inventory-batches/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) ListSales(ctx context.Context, batchID string) ([]domain.SalesRecord, error) {
	sales := []domain.SalesRecord{}
	query := url.Values{"batchId": []string{batchID}}
	if err := c.do(ctx, http.MethodGet, "/sales-records", query, nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (c *Client) CreateSale(ctx context.Context, sale domain.SalesRecord) error {
	return c.do(ctx, http.MethodPost, "/sales-records", nil, sale, nil)
}

func (c *Client) DeleteSale(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/sales-records/"+url.PathEscape(id), nil, nil, nil)
}

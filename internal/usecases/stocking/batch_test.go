package stocking

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fintrak-api/internal/domain"
)

var now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestBatch(t *testing.T, qty int, cost float64) *domain.InventoryBatch {
	t.Helper()
	b, err := NewBatch("batch_1", "user-1", domain.NewBatchInput{
		BatchName:                "Lote Junho",
		ProductName:              "Camiseta",
		QtyInStock:               qty,
		CostPerUnit:              cost,
		ProjectedSaleCostPerUnit: 9,
	}, now)
	require.NoError(t, err)
	return b
}

func TestNewBatch(t *testing.T) {
	b := newTestBatch(t, 100, 5)

	assert.Equal(t, 100, b.QtyInStock)
	assert.Equal(t, 0, b.QtySold)
	assert.Equal(t, 0.0, b.ActualSaleCostPerUnit)
	assert.Equal(t, "user-1", b.UserID)
	assert.Equal(t, &now, b.CreatedAt)

	tests := []struct {
		name  string
		input domain.NewBatchInput
	}{
		{name: "sem nome do lote", input: domain.NewBatchInput{ProductName: "x", QtyInStock: 1}},
		{name: "sem produto", input: domain.NewBatchInput{BatchName: "x", QtyInStock: 1}},
		{name: "quantidade negativa", input: domain.NewBatchInput{BatchName: "x", ProductName: "y", QtyInStock: -1}},
		{name: "custo negativo", input: domain.NewBatchInput{BatchName: "x", ProductName: "y", CostPerUnit: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBatch("b", "u", tt.input, now)
			assert.ErrorIs(t, err, ErrInvalidBatch)
		})
	}
}

func TestApplyAndReverseSale(t *testing.T) {
	b := newTestBatch(t, 100, 5)
	sale := domain.SalesRecord{ID: "sale_1", Qty: 10, TotalPrice: 80}

	require.NoError(t, ApplySale(b, 10, []domain.SalesRecord{sale}, now))
	assert.Equal(t, 90, b.QtyInStock)
	assert.Equal(t, 10, b.QtySold)
	assert.Equal(t, 8.0, b.ActualSaleCostPerUnit)

	ReverseSale(b, 10, nil, now)
	assert.Equal(t, 100, b.QtyInStock)
	assert.Equal(t, 0, b.QtySold)
	assert.Equal(t, 0.0, b.ActualSaleCostPerUnit)
}

func TestApplySaleMediaPonderada(t *testing.T) {
	b := newTestBatch(t, 50, 2)
	first := domain.SalesRecord{Qty: 10, TotalPrice: 100}
	second := domain.SalesRecord{Qty: 30, TotalPrice: 150}

	require.NoError(t, ApplySale(b, 10, []domain.SalesRecord{first}, now))
	require.NoError(t, ApplySale(b, 30, []domain.SalesRecord{first, second}, now))
	assert.Equal(t, 6.25, b.ActualSaleCostPerUnit)

	ReverseSale(b, 10, []domain.SalesRecord{second}, now)
	assert.Equal(t, 5.0, b.ActualSaleCostPerUnit)
	assert.Equal(t, 20, b.QtyInStock)
	assert.Equal(t, 30, b.QtySold)
}

func TestApplySaleSemEstoque(t *testing.T) {
	b := newTestBatch(t, 5, 1)
	before := *b

	err := ApplySale(b, 6, nil, now)

	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 6, stockErr.Requested)
	assert.Equal(t, 5, stockErr.Available)
	assert.Equal(t, before, *b)

	assert.ErrorIs(t, ApplySale(b, 0, nil, now), ErrInvalidQuantity)
}

func TestReverseSaleNaoPassaDoVendido(t *testing.T) {
	b := newTestBatch(t, 10, 1)
	require.NoError(t, ApplySale(b, 3, []domain.SalesRecord{{Qty: 3, TotalPrice: 9}}, now))

	ReverseSale(b, 7, nil, now)
	assert.Equal(t, 10, b.QtyInStock)
	assert.Equal(t, 0, b.QtySold)
}

func TestQuantidadeTotalInvariante(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := newTestBatch(t, 200, 3)
	var sales []domain.SalesRecord

	for i := 0; i < 500; i++ {
		if len(sales) > 0 && rng.Intn(3) == 0 {
			idx := rng.Intn(len(sales))
			removed := sales[idx]
			sales = append(sales[:idx:idx], sales[idx+1:]...)
			ReverseSale(b, removed.Qty, sales, now)
		} else {
			qty := rng.Intn(20) + 1
			sale := domain.SalesRecord{Qty: qty, TotalPrice: float64(qty * 4)}
			if err := ApplySale(b, qty, append(sales, sale), now); err == nil {
				sales = append(sales, sale)
			} else {
				assert.ErrorIs(t, err, ErrInsufficientStock)
			}
		}

		require.Equal(t, 200, b.QtyInStock+b.QtySold)
		require.GreaterOrEqual(t, b.QtyInStock, 0)
		require.GreaterOrEqual(t, b.QtySold, 0)
	}
}

func TestUpdateDetails(t *testing.T) {
	b := newTestBatch(t, 10, 1)
	name := "Lote Julho"
	cost := 2.345
	empty := " "

	require.NoError(t, UpdateDetails(b, domain.BatchPatch{BatchName: &name, CostPerUnit: &cost}, now))
	assert.Equal(t, "Lote Julho", b.BatchName)
	assert.Equal(t, 2.35, b.CostPerUnit)
	assert.Equal(t, 10, b.QtyInStock)

	err := UpdateDetails(b, domain.BatchPatch{BatchName: &name, ProductName: &empty}, now)
	assert.ErrorIs(t, err, ErrInvalidBatch)
	assert.Equal(t, "Camiseta", b.ProductName)
}

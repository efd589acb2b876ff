package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fintrak-api/internal/domain"
)

func TestMergeFinancialDataQuery(t *testing.T) {
	query, args, err := mergeFinancialDataQuery("46429020", []byte(`{"notes100":2}`))
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO financial_data")
	assert.Contains(t, query, "$2::jsonb")
	assert.Contains(t, query, "ON CONFLICT (user_id) DO UPDATE SET data = financial_data.data || EXCLUDED.data")
	assert.Contains(t, query, "RETURNING data")
	assert.Equal(t, []any{"46429020", `{"notes100":2}`}, args)
}

func TestUpsertBatchQuery(t *testing.T) {
	batch := domain.InventoryBatch{
		ID:                       "batch_1",
		UserID:                   "u1",
		BatchName:                "Lote A",
		ProductName:              "Caneca",
		QtyInStock:               8,
		QtySold:                  2,
		CostPerUnit:              2.345,
		ProjectedSaleCostPerUnit: 10,
	}

	query, args, err := upsertBatchQuery(batch)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO inventory_batches")
	assert.Contains(t, query, "COALESCE($10::timestamptz, NOW())")
	assert.Contains(t, query, "ON CONFLICT (id) DO UPDATE SET")
	assert.Contains(t, query, "qty_in_stock = EXCLUDED.qty_in_stock")
	assert.Contains(t, query, "WHERE inventory_batches.user_id = EXCLUDED.user_id")
	assert.Contains(t, query, "RETURNING id, user_id, batch_name")
	assert.NotContains(t, query, "$11")

	require.Len(t, args, 10)
	assert.Equal(t, "batch_1", args[0])
	assert.Equal(t, "u1", args[1])
	assert.Equal(t, 8, args[4])
	assert.Equal(t, 2, args[5])
	assert.True(t, args[6].(decimal.Decimal).Equal(decimal.RequireFromString("2.35")))
	assert.Nil(t, args[9])
}

func TestCreateSaleQuery(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	sale := domain.SalesRecord{
		ID:           "sale_1",
		UserID:       "u1",
		BatchID:      "batch_1",
		Qty:          3,
		PricePerUnit: 5,
		TotalPrice:   15,
		AmountPaid:   10,
		BalanceOwing: 5,
		Notes:        "fiado",
		CreatedAt:    createdAt,
	}

	query, args, err := createSaleQuery(sale)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO sales_records")
	assert.Contains(t, query, "ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id")
	assert.Contains(t, query, "WHERE sales_records.user_id = EXCLUDED.user_id")
	assert.Contains(t, query, "RETURNING id, user_id, batch_id")

	require.Len(t, args, 10)
	assert.Equal(t, "batch_1", args[2])
	assert.Equal(t, "fiado", args[8])
	assert.Equal(t, &sale.CreatedAt, args[9])
}

func TestCreateSaleQuery_ZeroCreatedAtUsesServerClock(t *testing.T) {
	_, args, err := createSaleQuery(domain.SalesRecord{ID: "sale_1", Qty: 1})
	require.NoError(t, err)

	require.Len(t, args, 10)
	assert.Nil(t, args[9])
}

func TestToNumeric(t *testing.T) {
	assert.Equal(t, "2.35", toNumeric(2.345).String())
	assert.Equal(t, "10", toNumeric(10).String())
	assert.Equal(t, "0.1", toNumeric(0.1).String())
}

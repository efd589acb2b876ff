package selling_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/internal/usecases/selling"
	"github.com/vfg2006/fintrak-api/internal/usecases/selling/mocks"
	"github.com/vfg2006/fintrak-api/internal/usecases/stocking"
	"go.uber.org/mock/gomock"
)

const userID = "u1"

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type passTx struct{}

func (passTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func sequentialIDs() func(prefix string) (string, error) {
	n := 0
	return func(prefix string) (string, error) {
		n++
		return fmt.Sprintf("%s%d", prefix, n), nil
	}
}

type fixture struct {
	ledger  *selling.Ledger
	batches *mocks.MockBatchStore
	sales   *mocks.MockSalesStore
}

// newFixture carrega o ledger com os lotes e vendas informados
func newFixture(t *testing.T, batches []domain.InventoryBatch, sales map[string][]domain.SalesRecord) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := fixture{
		batches: mocks.NewMockBatchStore(ctrl),
		sales:   mocks.NewMockSalesStore(ctrl),
	}
	f.ledger = selling.NewLedger(userID, f.batches, f.sales, passTx{},
		selling.WithClock(func() time.Time { return now }),
		selling.WithIDGenerator(sequentialIDs()),
	)

	f.batches.EXPECT().Load(gomock.Any(), userID).Return(batches)
	for _, b := range batches {
		f.sales.EXPECT().Load(gomock.Any(), b.ID).Return(sales[b.ID])
	}
	require.NoError(t, f.ledger.Load(context.Background()))
	return f
}

func stockBatch() domain.InventoryBatch {
	return domain.InventoryBatch{
		ID:          "batch_a",
		BatchName:   "Lote A",
		ProductName: "Caneca",
		QtyInStock:  100,
		CostPerUnit: 5,
		UserID:      userID,
	}
}

func TestLoadCarregaVendasDeCadaLote(t *testing.T) {
	b1 := stockBatch()
	b2 := stockBatch()
	b2.ID = "batch_b"
	sale := domain.SalesRecord{ID: "sale_1", BatchID: "batch_b", Qty: 2, TotalPrice: 20}

	f := newFixture(t, []domain.InventoryBatch{b1, b2}, map[string][]domain.SalesRecord{
		"batch_b": {sale},
	})

	assert.Len(t, f.ledger.Batches(), 2)

	sales, err := f.ledger.Sales("batch_b")
	require.NoError(t, err)
	assert.Equal(t, []domain.SalesRecord{sale}, sales)

	sales, err = f.ledger.Sales("batch_a")
	require.NoError(t, err)
	assert.Empty(t, sales)

	_, err = f.ledger.Sales("batch_x")
	assert.ErrorIs(t, err, selling.ErrBatchNotFound)
}

func TestBatchesRetornaCopia(t *testing.T) {
	f := newFixture(t, []domain.InventoryBatch{stockBatch()}, nil)

	batches := f.ledger.Batches()
	batches[0].QtyInStock = 0

	b, err := f.ledger.Batch("batch_a")
	require.NoError(t, err)
	assert.Equal(t, 100, b.QtyInStock)
}

func TestCreateBatch(t *testing.T) {
	tests := []struct {
		name     string
		input    domain.NewBatchInput
		setup    func(f fixture)
		validate func(t *testing.T, f fixture, b domain.InventoryBatch, err error)
	}{
		{
			name:  "cria lote no topo da lista",
			input: domain.NewBatchInput{BatchName: "Lote B", ProductName: "Prato", QtyInStock: 20, CostPerUnit: 3.5},
			setup: func(f fixture) {
				f.batches.EXPECT().Save(gomock.Any(), userID, gomock.Len(2)).Return(nil)
			},
			validate: func(t *testing.T, f fixture, b domain.InventoryBatch, err error) {
				require.NoError(t, err)
				assert.Equal(t, "batch_1", b.ID)
				assert.Equal(t, 20, b.QtyInStock)
				assert.Equal(t, 0, b.QtySold)
				assert.Equal(t, userID, b.UserID)
				assert.Equal(t, "batch_1", f.ledger.Batches()[0].ID)

				sales, err := f.ledger.Sales("batch_1")
				require.NoError(t, err)
				assert.Empty(t, sales)
			},
		},
		{
			name:  "dados inválidos não gravam",
			input: domain.NewBatchInput{BatchName: "", ProductName: "Prato", QtyInStock: 20},
			setup: func(f fixture) {},
			validate: func(t *testing.T, f fixture, b domain.InventoryBatch, err error) {
				assert.ErrorIs(t, err, stocking.ErrInvalidBatch)
				assert.True(t, selling.IsValidationError(err))
				assert.Len(t, f.ledger.Batches(), 1)
			},
		},
		{
			name:  "falha local mantém o estado",
			input: domain.NewBatchInput{BatchName: "Lote B", ProductName: "Prato", QtyInStock: 20},
			setup: func(f fixture) {
				f.batches.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(errors.New("disco cheio"))
			},
			validate: func(t *testing.T, f fixture, b domain.InventoryBatch, err error) {
				assert.EqualError(t, err, "disco cheio")
				assert.Len(t, f.ledger.Batches(), 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, []domain.InventoryBatch{stockBatch()}, nil)
			tt.setup(f)

			b, err := f.ledger.CreateBatch(context.Background(), tt.input)
			tt.validate(t, f, b, err)
		})
	}
}

func TestUpdateBatch(t *testing.T) {
	f := newFixture(t, []domain.InventoryBatch{stockBatch()}, nil)
	name := "Lote renomeado"
	cost := 6.0

	f.batches.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)

	b, err := f.ledger.UpdateBatch(context.Background(), "batch_a", domain.BatchPatch{BatchName: &name, CostPerUnit: &cost})
	require.NoError(t, err)
	assert.Equal(t, name, b.BatchName)
	assert.Equal(t, 6.0, b.CostPerUnit)
	assert.Equal(t, 100, b.QtyInStock)

	_, err = f.ledger.UpdateBatch(context.Background(), "batch_x", domain.BatchPatch{BatchName: &name})
	assert.ErrorIs(t, err, selling.ErrBatchNotFound)
}

func TestRecordSaleAtualizaEstoqueEResumo(t *testing.T) {
	f := newFixture(t, []domain.InventoryBatch{stockBatch()}, nil)
	ctx := context.Background()

	gomock.InOrder(
		f.batches.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil),
		f.sales.EXPECT().Save(gomock.Any(), "batch_a", gomock.Len(1)).Return(nil),
	)

	sale, err := f.ledger.RecordSale(ctx, "batch_a", domain.SaleInput{Qty: 10, TotalPrice: 80, AmountPaid: 50})
	require.NoError(t, err)

	assert.Equal(t, "sale_1", sale.ID)
	assert.Equal(t, 8.0, sale.PricePerUnit)
	assert.Equal(t, 30.0, sale.BalanceOwing)
	assert.Equal(t, now, sale.CreatedAt)

	b, err := f.ledger.Batch("batch_a")
	require.NoError(t, err)
	assert.Equal(t, 90, b.QtyInStock)
	assert.Equal(t, 10, b.QtySold)
	assert.Equal(t, 8.0, b.ActualSaleCostPerUnit)

	summary, err := f.ledger.Summary("batch_a")
	require.NoError(t, err)
	assert.Equal(t, 80.0, summary.TotalRevenue)
	assert.Equal(t, 10, summary.TotalSold)
	assert.Equal(t, 30.0, summary.Profit)
	assert.Equal(t, 37.5, summary.ProfitMargin)
	assert.Equal(t, 50.0, summary.TotalPaid)
	assert.Equal(t, 30.0, summary.TotalOwing)
	assert.Equal(t, 1, summary.SalesCount)
}

func TestRecordSaleComPrecoUnitarioInformado(t *testing.T) {
	f := newFixture(t, []domain.InventoryBatch{stockBatch()}, nil)
	price := 7.5

	f.batches.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)
	f.sales.EXPECT().Save(gomock.Any(), "batch_a", gomock.Any()).Return(nil)

	sale, err := f.ledger.RecordSale(context.Background(), "batch_a", domain.SaleInput{Qty: 2, PricePerUnit: &price, TotalPrice: 16})
	require.NoError(t, err)
	assert.Equal(t, 7.5, sale.PricePerUnit)
	assert.Equal(t, 16.0, sale.BalanceOwing)
}

func TestRecordSaleRejeitada(t *testing.T) {
	tests := []struct {
		name     string
		batchID  string
		input    domain.SaleInput
		validate func(t *testing.T, err error)
	}{
		{
			name:    "venda maior que o estoque",
			batchID: "batch_a",
			input:   domain.SaleInput{Qty: 101, TotalPrice: 500},
			validate: func(t *testing.T, err error) {
				var oversell *selling.OversellError
				require.ErrorAs(t, err, &oversell)
				assert.Equal(t, 101, oversell.Requested)
				assert.Equal(t, 100, oversell.Available)
				assert.ErrorIs(t, err, selling.ErrValidation)
				assert.ErrorIs(t, err, stocking.ErrInsufficientStock)
			},
		},
		{
			name:    "quantidade zero",
			batchID: "batch_a",
			input:   domain.SaleInput{Qty: 0, TotalPrice: 10},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, selling.ErrInvalidSale)
				assert.True(t, selling.IsValidationError(err))
			},
		},
		{
			name:    "valor negativo",
			batchID: "batch_a",
			input:   domain.SaleInput{Qty: 1, TotalPrice: -10},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, selling.ErrInvalidSale)
			},
		},
		{
			name:    "lote inexistente",
			batchID: "batch_x",
			input:   domain.SaleInput{Qty: 1, TotalPrice: 10},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, selling.ErrBatchNotFound)
				assert.False(t, selling.IsValidationError(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, []domain.InventoryBatch{stockBatch()}, nil)

			_, err := f.ledger.RecordSale(context.Background(), tt.batchID, tt.input)
			tt.validate(t, err)

			b, err := f.ledger.Batch("batch_a")
			require.NoError(t, err)
			assert.Equal(t, 100, b.QtyInStock)
			assert.Equal(t, 0, b.QtySold)
		})
	}
}

func TestRecordSaleFalhaLocalNaoAlteraEstado(t *testing.T) {
	f := newFixture(t, []domain.InventoryBatch{stockBatch()}, nil)

	f.batches.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)
	f.sales.EXPECT().Save(gomock.Any(), "batch_a", gomock.Any()).Return(errors.New("disco cheio"))

	_, err := f.ledger.RecordSale(context.Background(), "batch_a", domain.SaleInput{Qty: 10, TotalPrice: 80})
	require.Error(t, err)

	b, _ := f.ledger.Batch("batch_a")
	assert.Equal(t, 100, b.QtyInStock)
	sales, _ := f.ledger.Sales("batch_a")
	assert.Empty(t, sales)
}

func TestDeleteSaleDevolveEstoque(t *testing.T) {
	batch := stockBatch()
	batch.QtyInStock = 85
	batch.QtySold = 15
	batch.ActualSaleCostPerUnit = 8.67
	sales := []domain.SalesRecord{
		{ID: "sale_2", BatchID: "batch_a", Qty: 5, TotalPrice: 50},
		{ID: "sale_1", BatchID: "batch_a", Qty: 10, TotalPrice: 80},
	}
	f := newFixture(t, []domain.InventoryBatch{batch}, map[string][]domain.SalesRecord{"batch_a": sales})

	f.batches.EXPECT().Save(gomock.Any(), userID, gomock.Any()).Return(nil)
	f.sales.EXPECT().Save(gomock.Any(), "batch_a", gomock.Len(1)).Return(nil)

	require.NoError(t, f.ledger.DeleteSale(context.Background(), "sale_2"))

	b, _ := f.ledger.Batch("batch_a")
	assert.Equal(t, 90, b.QtyInStock)
	assert.Equal(t, 10, b.QtySold)
	assert.Equal(t, 8.0, b.ActualSaleCostPerUnit)

	err := f.ledger.DeleteSale(context.Background(), "sale_2")
	assert.ErrorIs(t, err, selling.ErrSaleNotFound)
}

func TestDeleteBatch(t *testing.T) {
	withSales := stockBatch()
	empty := stockBatch()
	empty.ID = "batch_b"
	f := newFixture(t, []domain.InventoryBatch{withSales, empty}, map[string][]domain.SalesRecord{
		"batch_a": {{ID: "sale_1", BatchID: "batch_a", Qty: 1, TotalPrice: 10}},
	})
	ctx := context.Background()

	err := f.ledger.DeleteBatch(ctx, "batch_a")
	assert.ErrorIs(t, err, selling.ErrBatchHasSales)

	f.batches.EXPECT().Save(gomock.Any(), userID, gomock.Len(1)).Return(nil)
	f.sales.EXPECT().Delete(gomock.Any(), "batch_b").Return(nil)

	require.NoError(t, f.ledger.DeleteBatch(ctx, "batch_b"))
	assert.Len(t, f.ledger.Batches(), 1)

	_, err = f.ledger.Batch("batch_b")
	assert.ErrorIs(t, err, selling.ErrBatchNotFound)
	assert.ErrorIs(t, f.ledger.DeleteBatch(ctx, "batch_b"), selling.ErrBatchNotFound)
}

func TestLoadCanceladoNaoAlteraEstado(t *testing.T) {
	ctrl := gomock.NewController(t)
	batches := mocks.NewMockBatchStore(ctrl)
	sales := mocks.NewMockSalesStore(ctrl)
	ledger := selling.NewLedger(userID, batches, sales, passTx{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batches.EXPECT().Load(gomock.Any(), userID).Return([]domain.InventoryBatch{stockBatch()})
	sales.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	assert.ErrorIs(t, ledger.Load(ctx), context.Canceled)
	assert.Empty(t, ledger.Batches())
}

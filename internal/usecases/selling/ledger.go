// Package selling mantém os lotes de um usuário e as vendas de cada lote.
package selling

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/internal/usecases/reconciling"
	"github.com/vfg2006/fintrak-api/internal/usecases/stocking"
	"github.com/vfg2006/fintrak-api/pkg/apiErrors"
	"github.com/vfg2006/fintrak-api/pkg/log"
	"github.com/vfg2006/fintrak-api/pkg/money"
	"github.com/vfg2006/fintrak-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLoads limita as leituras simultâneas de listas de vendas
const maxConcurrentLoads = 4

// BatchStore persiste a lista de lotes de um usuário
type BatchStore interface {
	Load(ctx context.Context, userID string) []domain.InventoryBatch
	Save(ctx context.Context, userID string, batches []domain.InventoryBatch) error
}

// SalesStore persiste a lista de vendas de um lote
type SalesStore interface {
	Load(ctx context.Context, batchID string) []domain.SalesRecord
	Save(ctx context.Context, batchID string, sales []domain.SalesRecord) error
	Delete(ctx context.Context, batchID string) error
}

// Ledger é a única porta de alteração de lotes e vendas.
// Leituras devolvem cópias; o estado só muda depois da gravação local.
type Ledger struct {
	mu      sync.RWMutex
	userID  string
	batches BatchStore
	sales   SalesStore
	tx      reconciling.Transactor
	now     func() time.Time
	newID   func(prefix string) (string, error)

	batchList    []domain.InventoryBatch
	salesByBatch map[string][]domain.SalesRecord
}

type Option func(*Ledger)

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

func WithIDGenerator(newID func(prefix string) (string, error)) Option {
	return func(l *Ledger) {
		l.newID = newID
	}
}

func NewLedger(userID string, batches BatchStore, sales SalesStore, tx reconciling.Transactor, opts ...Option) *Ledger {
	l := &Ledger{
		userID:       userID,
		batches:      batches,
		sales:        sales,
		tx:           tx,
		now:          time.Now,
		newID:        utils.NewID,
		salesByBatch: make(map[string][]domain.SalesRecord),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load lê a lista de lotes e, em paralelo, as vendas de cada lote
func (l *Ledger) Load(ctx context.Context) error {
	batches := l.batches.Load(ctx, l.userID)

	sales := make([][]domain.SalesRecord, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, b := range batches {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sales[i] = l.sales.Load(gctx, b.ID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	salesByBatch := make(map[string][]domain.SalesRecord, len(batches))
	for i, b := range batches {
		salesByBatch[b.ID] = sales[i]
	}

	l.mu.Lock()
	l.batchList = batches
	l.salesByBatch = salesByBatch
	l.mu.Unlock()

	log.ForContext(ctx).WithField("user_id", l.userID).
		Debugf("%d lotes carregados", len(batches))
	return nil
}

// Batches retorna os lotes, mais recentes primeiro
func (l *Ledger) Batches() []domain.InventoryBatch {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneBatches(l.batchList)
}

func (l *Ledger) Batch(id string) (domain.InventoryBatch, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.indexOfBatch(id)
	if i < 0 {
		return domain.InventoryBatch{}, newBatchError(ErrBatchNotFound, id)
	}
	return cloneBatches(l.batchList[i : i+1])[0], nil
}

// Sales retorna as vendas do lote, mais recentes primeiro
func (l *Ledger) Sales(batchID string) ([]domain.SalesRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.indexOfBatch(batchID) < 0 {
		return nil, newBatchError(ErrBatchNotFound, batchID)
	}
	return cloneSales(l.salesByBatch[batchID]), nil
}

func (l *Ledger) CreateBatch(ctx context.Context, in domain.NewBatchInput) (domain.InventoryBatch, error) {
	id, err := l.newID(utils.PrefixBatch)
	if err != nil {
		return domain.InventoryBatch{}, err
	}

	batch, err := stocking.NewBatch(id, l.userID, in, l.now())
	if err != nil {
		return domain.InventoryBatch{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := append([]domain.InventoryBatch{*batch}, cloneBatches(l.batchList)...)
	if err := l.batches.Save(ctx, l.userID, next); err != nil {
		return domain.InventoryBatch{}, err
	}

	l.batchList = next
	l.salesByBatch[batch.ID] = []domain.SalesRecord{}

	log.ForContext(ctx).WithField("batch_id", batch.ID).Info("Lote criado")
	return *batch, nil
}

func (l *Ledger) UpdateBatch(ctx context.Context, id string, patch domain.BatchPatch) (domain.InventoryBatch, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOfBatch(id)
	if i < 0 {
		return domain.InventoryBatch{}, newBatchError(ErrBatchNotFound, id)
	}

	next := cloneBatches(l.batchList)
	if err := stocking.UpdateDetails(&next[i], patch, l.now()); err != nil {
		return domain.InventoryBatch{}, err
	}

	if err := l.batches.Save(ctx, l.userID, next); err != nil {
		return domain.InventoryBatch{}, err
	}

	l.batchList = next
	return next[i], nil
}

// DeleteBatch remove um lote sem vendas. Lotes com vendas retornam ErrBatchHasSales.
func (l *Ledger) DeleteBatch(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOfBatch(id)
	if i < 0 {
		return newBatchError(ErrBatchNotFound, id)
	}
	if n := len(l.salesByBatch[id]); n > 0 {
		return &SaleError{
			Err:     ErrBatchHasSales,
			Code:    apiErrors.ErrConflict,
			BatchID: id,
			Details: "exclua as vendas antes de excluir o lote",
		}
	}

	next := append(cloneBatches(l.batchList[:i]), cloneBatches(l.batchList[i+1:])...)
	err := reconciling.Atomic(ctx, l.tx, func(ctx context.Context) error {
		if err := l.batches.Save(ctx, l.userID, next); err != nil {
			return err
		}
		return l.sales.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	l.batchList = next
	delete(l.salesByBatch, id)

	log.ForContext(ctx).WithField("batch_id", id).Info("Lote excluído")
	return nil
}

// RecordSale registra a venda e baixa o estoque do lote.
// Lista de vendas e lista de lotes são gravadas na mesma transação local.
func (l *Ledger) RecordSale(ctx context.Context, batchID string, in domain.SaleInput) (domain.SalesRecord, error) {
	if err := validateSale(in); err != nil {
		return domain.SalesRecord{}, err
	}

	id, err := l.newID(utils.PrefixSale)
	if err != nil {
		return domain.SalesRecord{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOfBatch(batchID)
	if i < 0 {
		return domain.SalesRecord{}, newBatchError(ErrBatchNotFound, batchID)
	}
	if in.Qty > l.batchList[i].QtyInStock {
		return domain.SalesRecord{}, &OversellError{
			BatchID:   batchID,
			Requested: in.Qty,
			Available: l.batchList[i].QtyInStock,
		}
	}

	now := l.now()
	sale := newSale(id, batchID, l.userID, in, now)
	sales := append([]domain.SalesRecord{sale}, cloneSales(l.salesByBatch[batchID])...)

	batches := cloneBatches(l.batchList)
	if err := stocking.ApplySale(&batches[i], sale.Qty, sales, now); err != nil {
		return domain.SalesRecord{}, err
	}

	if err := l.persist(ctx, batchID, batches, sales); err != nil {
		return domain.SalesRecord{}, err
	}

	log.ForContext(ctx).WithFields(log.Fields{"batch_id": batchID, "sale_id": sale.ID}).
		Info("Venda registrada")
	return sale, nil
}

// DeleteSale remove a venda e devolve a quantidade ao estoque do lote
func (l *Ledger) DeleteSale(ctx context.Context, saleID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	batchID, j := l.findSale(saleID)
	if j < 0 {
		return newSaleError(ErrSaleNotFound, apiErrors.ErrNotFound, saleID, "")
	}
	i := l.indexOfBatch(batchID)
	if i < 0 {
		return newBatchError(ErrBatchNotFound, batchID)
	}

	current := l.salesByBatch[batchID]
	removed := current[j]
	remaining := append(cloneSales(current[:j]), cloneSales(current[j+1:])...)

	batches := cloneBatches(l.batchList)
	stocking.ReverseSale(&batches[i], removed.Qty, remaining, l.now())

	if err := l.persist(ctx, batchID, batches, remaining); err != nil {
		return err
	}

	log.ForContext(ctx).WithFields(log.Fields{"batch_id": batchID, "sale_id": saleID}).
		Info("Venda excluída")
	return nil
}

// Summary calcula os totais de vendas do lote
func (l *Ledger) Summary(batchID string) (domain.SalesSummary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.indexOfBatch(batchID)
	if i < 0 {
		return domain.SalesSummary{}, newBatchError(ErrBatchNotFound, batchID)
	}
	return Summarize(l.batchList[i], l.salesByBatch[batchID]), nil
}

// persist grava lotes antes das vendas para que o servidor receba o lote primeiro
func (l *Ledger) persist(ctx context.Context, batchID string, batches []domain.InventoryBatch, sales []domain.SalesRecord) error {
	err := reconciling.Atomic(ctx, l.tx, func(ctx context.Context) error {
		if err := l.batches.Save(ctx, l.userID, batches); err != nil {
			return err
		}
		return l.sales.Save(ctx, batchID, sales)
	})
	if err != nil {
		return err
	}

	l.batchList = batches
	l.salesByBatch[batchID] = sales
	return nil
}

func (l *Ledger) indexOfBatch(id string) int {
	for i, b := range l.batchList {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) findSale(saleID string) (string, int) {
	for batchID, sales := range l.salesByBatch {
		for j, s := range sales {
			if s.ID == saleID {
				return batchID, j
			}
		}
	}
	return "", -1
}

func validateSale(in domain.SaleInput) error {
	if in.Qty <= 0 {
		return newSaleError(ErrInvalidSale, apiErrors.ErrInvalidFormat, "", "quantidade deve ser maior que zero")
	}
	if in.TotalPrice < 0 || in.AmountPaid < 0 || (in.PricePerUnit != nil && *in.PricePerUnit < 0) {
		return newSaleError(ErrInvalidSale, apiErrors.ErrInvalidFormat, "", "valores não podem ser negativos")
	}
	return nil
}

func newSale(id, batchID, userID string, in domain.SaleInput, now time.Time) domain.SalesRecord {
	total := money.Round(in.TotalPrice)
	paid := money.Round(in.AmountPaid)

	pricePerUnit := money.Div(total, float64(in.Qty))
	if in.PricePerUnit != nil {
		pricePerUnit = money.Round(*in.PricePerUnit)
	}

	return domain.SalesRecord{
		ID:           id,
		BatchID:      batchID,
		Qty:          in.Qty,
		PricePerUnit: pricePerUnit,
		TotalPrice:   total,
		AmountPaid:   paid,
		BalanceOwing: money.Sub(total, paid),
		Notes:        in.Notes,
		UserID:       userID,
		CreatedAt:    now,
	}
}

func cloneBatches(batches []domain.InventoryBatch) []domain.InventoryBatch {
	out := make([]domain.InventoryBatch, len(batches))
	copy(out, batches)
	return out
}

func cloneSales(sales []domain.SalesRecord) []domain.SalesRecord {
	out := make([]domain.SalesRecord, len(sales))
	copy(out, sales)
	return out
}

// Package persisting implementa as operações dos endpoints remotos sobre o PostgreSQL.
package persisting

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/fintrak-api/infrastructure/messaging"
	"github.com/vfg2006/fintrak-api/infrastructure/repository"
	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/pkg/apiErrors"
	"github.com/vfg2006/fintrak-api/pkg/log"
	"github.com/vfg2006/fintrak-api/pkg/money"
	"github.com/vfg2006/fintrak-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type FinancialDataService interface {
	GetFinancialData(ctx context.Context, userID string) ([]byte, error)
	SaveFinancialData(ctx context.Context, userID string, body []byte) ([]byte, error)
	DeleteFinancialData(ctx context.Context, userID string) error
}

type InventoryService interface {
	ListBatches(ctx context.Context, userID string) ([]domain.InventoryBatch, error)
	CreateBatch(ctx context.Context, userID string, req BatchRequest) (*domain.InventoryBatch, error)
	SaveBatch(ctx context.Context, userID, id string, req BatchRequest) (*domain.InventoryBatch, error)
	DeleteBatch(ctx context.Context, userID, id string) error
}

type SalesService interface {
	ListSales(ctx context.Context, userID, batchID string) ([]domain.SalesRecord, error)
	CreateSale(ctx context.Context, userID string, req SaleRequest) (*domain.SalesRecord, error)
	DeleteSale(ctx context.Context, userID, id string) error
}

type Service struct {
	financial repository.FinancialDataRepository
	batches   repository.InventoryBatchRepository
	sales     repository.SalesRecordRepository
	publisher messaging.Publisher
	newID     func(prefix string) (string, error)
}

func NewService(
	financial repository.FinancialDataRepository,
	batches repository.InventoryBatchRepository,
	sales repository.SalesRecordRepository,
	publisher messaging.Publisher,
) *Service {
	if publisher == nil {
		publisher = messaging.NoopPublisher{}
	}

	return &Service{
		financial: financial,
		batches:   batches,
		sales:     sales,
		publisher: publisher,
		newID:     utils.NewID,
	}
}

// GetFinancialData retorna o JSON do usuário ou {} quando ainda não existe
func (s *Service) GetFinancialData(ctx context.Context, userID string) ([]byte, error) {
	data, err := s.financial.Get(ctx, userID)
	if err != nil {
		return nil, databaseError(err)
	}
	if len(data) == 0 {
		return []byte("{}"), nil
	}
	return data, nil
}

// SaveFinancialData mescla os campos de topo do corpo com o registro armazenado
func (s *Service) SaveFinancialData(ctx context.Context, userID string, body []byte) ([]byte, error) {
	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, NewPersistError(ErrInvalidSnapshot, apiErrors.ErrInvalidRequest, "")
	}

	// o dono vem sempre do token
	delete(fields, "userId")

	normalized, err := json.Marshal(fields)
	if err != nil {
		return nil, NewPersistError(ErrInvalidSnapshot, apiErrors.ErrInvalidRequest, err.Error())
	}

	merged, err := s.financial.Merge(ctx, userID, normalized)
	if err != nil {
		return nil, databaseError(err)
	}

	s.publish(ctx, messaging.NewEvent(messaging.FinancialDataSaved, userID, userID, nil))
	return merged, nil
}

func (s *Service) DeleteFinancialData(ctx context.Context, userID string) error {
	if err := s.financial.Delete(ctx, userID); err != nil {
		return databaseError(err)
	}
	return nil
}

func (s *Service) ListBatches(ctx context.Context, userID string) ([]domain.InventoryBatch, error) {
	batches, err := s.batches.List(ctx, userID)
	if err != nil {
		return nil, databaseError(err)
	}
	return batches, nil
}

// CreateBatch grava um lote novo; o id é gerado quando não informado
func (s *Service) CreateBatch(ctx context.Context, userID string, req BatchRequest) (*domain.InventoryBatch, error) {
	if req.ID == "" {
		id, err := s.newID(utils.PrefixBatch)
		if err != nil {
			return nil, NewPersistError(err, apiErrors.ErrInternalServer, "falha ao gerar id")
		}
		req.ID = id
	}
	return s.SaveBatch(ctx, userID, req.ID, req)
}

// SaveBatch cria ou atualiza o lote com o id informado
func (s *Service) SaveBatch(ctx context.Context, userID, id string, req BatchRequest) (*domain.InventoryBatch, error) {
	batch := req.toBatch(userID)
	batch.ID = id

	if err := validateBatch(batch); err != nil {
		return nil, err
	}

	saved, err := s.batches.Upsert(ctx, batch)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewPersistError(ErrBatchNotFound, apiErrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, databaseError(err)
	}

	s.publish(ctx, messaging.NewEvent(messaging.BatchSaved, userID, saved.ID, saved))
	return saved, nil
}

// DeleteBatch recusa remover lotes que ainda têm vendas
func (s *Service) DeleteBatch(ctx context.Context, userID, id string) error {
	count, err := s.sales.CountByBatch(ctx, userID, id)
	if err != nil {
		return databaseError(err)
	}
	if count > 0 {
		return NewPersistError(ErrBatchHasSales, apiErrors.ErrConflict, id)
	}

	deleted, err := s.batches.Delete(ctx, userID, id)
	if err != nil {
		return databaseError(err)
	}
	if !deleted {
		return NewPersistError(ErrBatchNotFound, apiErrors.ErrNotFound, id)
	}

	s.publish(ctx, messaging.NewEvent(messaging.BatchDeleted, userID, id, nil))
	return nil
}

func (s *Service) ListSales(ctx context.Context, userID, batchID string) ([]domain.SalesRecord, error) {
	if batchID == "" {
		return nil, NewPersistError(ErrMissingBatchID, apiErrors.ErrMissingRequiredData, "")
	}

	sales, err := s.sales.ListByBatch(ctx, userID, batchID)
	if err != nil {
		return nil, databaseError(err)
	}
	return sales, nil
}

// CreateSale grava a venda. Reenviar o mesmo id não duplica o registro.
func (s *Service) CreateSale(ctx context.Context, userID string, req SaleRequest) (*domain.SalesRecord, error) {
	sale, err := s.buildSale(userID, req)
	if err != nil {
		return nil, err
	}

	saved, err := s.sales.Create(ctx, sale)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewPersistError(ErrSaleNotFound, apiErrors.ErrConflict, "id pertence a outro usuário")
	}
	if err != nil {
		return nil, databaseError(err)
	}

	s.publish(ctx, messaging.NewEvent(messaging.SaleCreated, userID, saved.ID, saved))
	return saved, nil
}

func (s *Service) DeleteSale(ctx context.Context, userID, id string) error {
	deleted, err := s.sales.Delete(ctx, userID, id)
	if err != nil {
		return databaseError(err)
	}
	if !deleted {
		return NewPersistError(ErrSaleNotFound, apiErrors.ErrNotFound, id)
	}

	s.publish(ctx, messaging.NewEvent(messaging.SaleDeleted, userID, id, nil))
	return nil
}

func (s *Service) buildSale(userID string, req SaleRequest) (domain.SalesRecord, error) {
	batchID := req.batchID()
	if batchID == "" {
		return domain.SalesRecord{}, NewPersistError(ErrMissingBatchID, apiErrors.ErrMissingRequiredData, "")
	}

	qty := req.qty()
	if qty <= 0 {
		return domain.SalesRecord{}, invalidInput("qty deve ser maior que zero")
	}

	total := firstFloat(req.TotalPrice, req.TotalPriceAlt)
	paid := firstFloat(req.AmountPaid, req.AmountPaidAlt)
	if total < 0 || paid < 0 {
		return domain.SalesRecord{}, invalidInput("valores não podem ser negativos")
	}

	price := firstFloat(req.PricePerUnit, req.PricePerUnitAlt)
	if price == 0 && total > 0 {
		price = money.Div(total, float64(qty))
	}
	if total == 0 && price > 0 {
		total = money.Mul(price, qty)
	}

	id := req.ID
	if id == "" {
		generated, err := s.newID(utils.PrefixSale)
		if err != nil {
			return domain.SalesRecord{}, NewPersistError(err, apiErrors.ErrInternalServer, "falha ao gerar id")
		}
		id = generated
	}

	var createdAt time.Time
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	return domain.SalesRecord{
		ID:           id,
		UserID:       userID,
		BatchID:      batchID,
		Qty:          qty,
		PricePerUnit: money.Round(price),
		TotalPrice:   money.Round(total),
		AmountPaid:   money.Round(paid),
		BalanceOwing: money.Sub(total, paid),
		Notes:        req.Notes,
		CreatedAt:    createdAt,
	}, nil
}

func validateBatch(batch domain.InventoryBatch) error {
	if batch.ID == "" {
		return invalidInput("id é obrigatório")
	}
	if batch.BatchName == "" || batch.ProductName == "" {
		return invalidInput("batchName e productName são obrigatórios")
	}
	if batch.QtyInStock < 0 || batch.QtySold < 0 {
		return invalidInput("quantidades não podem ser negativas")
	}
	if batch.CostPerUnit < 0 || batch.ProjectedSaleCostPerUnit < 0 || batch.ActualSaleCostPerUnit < 0 {
		return invalidInput("valores não podem ser negativos")
	}
	return nil
}

// publish só registra falhas; a gravação já foi confirmada
func (s *Service) publish(ctx context.Context, event messaging.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.ForContext(ctx).
			WithError(err).
			WithField("key", event.Type).
			Warn("Falha ao publicar evento")
	}
}

var (
	_ FinancialDataService = (*Service)(nil)
	_ InventoryService     = (*Service)(nil)
	_ SalesService         = (*Service)(nil)
)

package persisting

import (
	"time"

	"github.com/vfg2006/fintrak-api/internal/domain"
)

// BatchRequest aceita tanto unitCost quanto costPerUnit para o custo unitário
type BatchRequest struct {
	ID                       string     `json:"id"`
	BatchName                string     `json:"batchName"`
	ProductName              string     `json:"productName"`
	QtyInStock               int        `json:"qtyInStock"`
	QtySold                  int        `json:"qtySold"`
	UnitCost                 *float64   `json:"unitCost"`
	CostPerUnit              *float64   `json:"costPerUnit"`
	ProjectedSaleCostPerUnit float64    `json:"projectedSaleCostPerUnit"`
	ActualSaleCostPerUnit    float64    `json:"actualSaleCostPerUnit"`
	CreatedAt                *time.Time `json:"createdAt"`
}

func (r BatchRequest) toBatch(userID string) domain.InventoryBatch {
	return domain.InventoryBatch{
		ID:                       r.ID,
		UserID:                   userID,
		BatchName:                r.BatchName,
		ProductName:              r.ProductName,
		QtyInStock:               r.QtyInStock,
		QtySold:                  r.QtySold,
		CostPerUnit:              firstFloat(r.CostPerUnit, r.UnitCost),
		ProjectedSaleCostPerUnit: r.ProjectedSaleCostPerUnit,
		ActualSaleCostPerUnit:    r.ActualSaleCostPerUnit,
		CreatedAt:                r.CreatedAt,
	}
}

// SaleRequest aceita os nomes em camelCase e em snake_case
type SaleRequest struct {
	ID              string     `json:"id"`
	BatchID         *string    `json:"batchId"`
	BatchIDSnake    *string    `json:"batch_id"`
	Qty             *int       `json:"qty"`
	Quantity        *int       `json:"quantity"`
	PricePerUnit    *float64   `json:"pricePerUnit"`
	PricePerUnitAlt *float64   `json:"price_per_unit"`
	TotalPrice      *float64   `json:"totalPrice"`
	TotalPriceAlt   *float64   `json:"total_price"`
	AmountPaid      *float64   `json:"amountPaid"`
	AmountPaidAlt   *float64   `json:"amount_paid"`
	Notes           string     `json:"notes"`
	CreatedAt       *time.Time `json:"createdAt"`
}

func (r SaleRequest) batchID() string {
	if r.BatchID != nil && *r.BatchID != "" {
		return *r.BatchID
	}
	if r.BatchIDSnake != nil {
		return *r.BatchIDSnake
	}
	return ""
}

func (r SaleRequest) qty() int {
	if r.Qty != nil && *r.Qty != 0 {
		return *r.Qty
	}
	if r.Quantity != nil {
		return *r.Quantity
	}
	return 0
}

func firstFloat(values ...*float64) float64 {
	for _, v := range values {
		if v != nil && *v != 0 {
			return *v
		}
	}
	return 0
}

package domain

import "time"

// InventoryBatch é um lote de estoque. QtyInStock + QtySold é constante.
type InventoryBatch struct {
	ID                       string     `json:"id"`
	BatchName                string     `json:"batchName"`
	ProductName              string     `json:"productName"`
	QtyInStock               int        `json:"qtyInStock"`
	QtySold                  int        `json:"qtySold"`
	CostPerUnit              float64    `json:"costPerUnit"`
	ProjectedSaleCostPerUnit float64    `json:"projectedSaleCostPerUnit"`
	ActualSaleCostPerUnit    float64    `json:"actualSaleCostPerUnit"`
	UserID                   string     `json:"userId,omitempty"`
	CreatedAt                *time.Time `json:"createdAt,omitempty"`
	UpdatedAt                *time.Time `json:"updatedAt,omitempty"`
}

// TotalQty é a quantidade original do lote
func (b InventoryBatch) TotalQty() int {
	return b.QtyInStock + b.QtySold
}

// NewBatchInput são os dados informados na criação de um lote
type NewBatchInput struct {
	BatchName                string  `json:"batchName"`
	ProductName              string  `json:"productName"`
	QtyInStock               int     `json:"qtyInStock"`
	CostPerUnit              float64 `json:"costPerUnit"`
	ProjectedSaleCostPerUnit float64 `json:"projectedSaleCostPerUnit"`
}

// BatchPatch altera os campos editáveis de um lote.
// As quantidades só mudam através das vendas.
type BatchPatch struct {
	BatchName                *string  `json:"batchName,omitempty"`
	ProductName              *string  `json:"productName,omitempty"`
	CostPerUnit              *float64 `json:"costPerUnit,omitempty"`
	ProjectedSaleCostPerUnit *float64 `json:"projectedSaleCostPerUnit,omitempty"`
}

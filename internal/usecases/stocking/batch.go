// Package stocking mantém os números de estoque e custo de um lote.
// As quantidades só são alteradas por ApplySale e ReverseSale.
package stocking

import (
	"strings"
	"time"

	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/pkg/money"
)

// NewBatch cria um lote sem vendas
func NewBatch(id, userID string, in domain.NewBatchInput, now time.Time) (*domain.InventoryBatch, error) {
	if strings.TrimSpace(in.BatchName) == "" {
		return nil, invalidBatch("nome do lote é obrigatório")
	}
	if strings.TrimSpace(in.ProductName) == "" {
		return nil, invalidBatch("nome do produto é obrigatório")
	}
	if in.QtyInStock < 0 {
		return nil, invalidBatch("quantidade inicial não pode ser negativa")
	}
	if in.CostPerUnit < 0 || in.ProjectedSaleCostPerUnit < 0 {
		return nil, invalidBatch("valores não podem ser negativos")
	}

	return &domain.InventoryBatch{
		ID:                       id,
		BatchName:                strings.TrimSpace(in.BatchName),
		ProductName:              strings.TrimSpace(in.ProductName),
		QtyInStock:               in.QtyInStock,
		QtySold:                  0,
		CostPerUnit:              money.Round(in.CostPerUnit),
		ProjectedSaleCostPerUnit: money.Round(in.ProjectedSaleCostPerUnit),
		UserID:                   userID,
		CreatedAt:                &now,
		UpdatedAt:                &now,
	}, nil
}

// CheckStock falha com *StockError quando qty excede o estoque
func CheckStock(b *domain.InventoryBatch, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > b.QtyInStock {
		return &StockError{BatchID: b.ID, Requested: qty, Available: b.QtyInStock}
	}
	return nil
}

// ApplySale move qty do estoque para vendido.
// sales são todas as vendas do lote, já incluindo a nova.
func ApplySale(b *domain.InventoryBatch, qty int, sales []domain.SalesRecord, now time.Time) error {
	if err := CheckStock(b, qty); err != nil {
		return err
	}

	b.QtyInStock -= qty
	b.QtySold += qty
	b.ActualSaleCostPerUnit = ActualSalePrice(sales)
	b.UpdatedAt = &now
	return nil
}

// ReverseSale devolve qty ao estoque ao excluir uma venda.
// remaining são as vendas que continuam no lote.
// Nunca devolve mais do que foi vendido, preservando QtyInStock + QtySold.
func ReverseSale(b *domain.InventoryBatch, qty int, remaining []domain.SalesRecord, now time.Time) {
	returned := qty
	if returned > b.QtySold {
		returned = b.QtySold
	}
	if returned < 0 {
		returned = 0
	}

	b.QtyInStock += returned
	b.QtySold -= returned
	b.ActualSaleCostPerUnit = ActualSalePrice(remaining)
	b.UpdatedAt = &now
}

// ActualSalePrice é a média ponderada realizada: receita total / unidades vendidas
func ActualSalePrice(sales []domain.SalesRecord) float64 {
	revenue := make([]float64, 0, len(sales))
	units := 0
	for _, s := range sales {
		revenue = append(revenue, s.TotalPrice)
		units += s.Qty
	}
	return money.Div(money.Sum(revenue...), float64(units))
}

// UpdateDetails altera os campos editáveis do lote; nada muda se algum campo for inválido
func UpdateDetails(b *domain.InventoryBatch, patch domain.BatchPatch, now time.Time) error {
	c := *b

	if patch.BatchName != nil {
		if strings.TrimSpace(*patch.BatchName) == "" {
			return invalidBatch("nome do lote é obrigatório")
		}
		c.BatchName = strings.TrimSpace(*patch.BatchName)
	}
	if patch.ProductName != nil {
		if strings.TrimSpace(*patch.ProductName) == "" {
			return invalidBatch("nome do produto é obrigatório")
		}
		c.ProductName = strings.TrimSpace(*patch.ProductName)
	}
	if patch.CostPerUnit != nil {
		if *patch.CostPerUnit < 0 {
			return invalidBatch("custo não pode ser negativo")
		}
		c.CostPerUnit = money.Round(*patch.CostPerUnit)
	}
	if patch.ProjectedSaleCostPerUnit != nil {
		if *patch.ProjectedSaleCostPerUnit < 0 {
			return invalidBatch("preço projetado não pode ser negativo")
		}
		c.ProjectedSaleCostPerUnit = money.Round(*patch.ProjectedSaleCostPerUnit)
	}

	c.UpdatedAt = &now
	*b = c
	return nil
}

package selling

import (
	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/pkg/money"
)

// Summarize calcula receita, lucro e margem do lote a partir das vendas.
// O lucro usa o custo das unidades vendidas; a margem é 0 sem receita.
func Summarize(batch domain.InventoryBatch, sales []domain.SalesRecord) domain.SalesSummary {
	summary := domain.SalesSummary{
		BatchID:    batch.ID,
		SalesCount: len(sales),
	}

	revenue := make([]float64, 0, len(sales))
	paid := make([]float64, 0, len(sales))
	owing := make([]float64, 0, len(sales))
	for _, s := range sales {
		revenue = append(revenue, s.TotalPrice)
		paid = append(paid, s.AmountPaid)
		owing = append(owing, s.BalanceOwing)
		summary.TotalSold += s.Qty
	}

	summary.TotalRevenue = money.Sum(revenue...)
	summary.TotalPaid = money.Sum(paid...)
	summary.TotalOwing = money.Sum(owing...)
	summary.AveragePrice = money.Div(summary.TotalRevenue, float64(summary.TotalSold))
	summary.Profit = money.Sub(summary.TotalRevenue, money.Mul(batch.CostPerUnit, summary.TotalSold))
	summary.ProfitMargin = money.Percent(summary.Profit, summary.TotalRevenue)

	return summary
}

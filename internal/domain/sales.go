package domain

import "time"

// SalesRecord é uma venda de um lote. BalanceOwing = TotalPrice - AmountPaid,
// negativo quando o cliente pagou a mais.
type SalesRecord struct {
	ID           string     `json:"id"`
	BatchID      string     `json:"batchId"`
	Qty          int        `json:"qty"`
	PricePerUnit float64    `json:"pricePerUnit"`
	TotalPrice   float64    `json:"totalPrice"`
	AmountPaid   float64    `json:"amountPaid"`
	BalanceOwing float64    `json:"balanceOwing"`
	Notes        string     `json:"notes"`
	UserID       string     `json:"userId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// SaleInput são os dados informados ao registrar uma venda.
// PricePerUnit é calculado a partir de TotalPrice/Qty quando nil.
type SaleInput struct {
	Qty          int      `json:"qty"`
	PricePerUnit *float64 `json:"pricePerUnit,omitempty"`
	TotalPrice   float64  `json:"totalPrice"`
	AmountPaid   float64  `json:"amountPaid"`
	Notes        string   `json:"notes"`
}

// SalesSummary é derivado das vendas de um lote sob demanda
type SalesSummary struct {
	BatchID      string  `json:"batchId"`
	SalesCount   int     `json:"salesCount"`
	TotalRevenue float64 `json:"totalRevenue"`
	TotalPaid    float64 `json:"totalPaid"`
	TotalOwing   float64 `json:"totalOwing"`
	TotalSold    int     `json:"totalSold"`
	AveragePrice float64 `json:"averagePrice"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
}

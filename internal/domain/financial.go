package domain

import "time"

// FinancialRow é uma linha de receita, despesa ou conta bancária.
// O sinal é dado pelo conjunto em que a linha está; Amount nunca é negativo.
type FinancialRow struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Date   *string `json:"date,omitempty"`
}

// AdditionalWeek é uma semana após a semana 2. WeekNumber é sempre 3 + índice.
type AdditionalWeek struct {
	ID          string         `json:"id"`
	WeekNumber  int            `json:"weekNumber"`
	Name        string         `json:"name"`
	IncomeRows  []FinancialRow `json:"incomeRows"`
	ExpenseRows []FinancialRow `json:"expenseRows"`
}

// FinancialSnapshot é o registro financeiro único de cada usuário
type FinancialSnapshot struct {
	UserID string `json:"userId,omitempty"`
	Denominations
	BankAccountRows  []FinancialRow   `json:"bankAccountRows"`
	Week1IncomeRows  []FinancialRow   `json:"week1IncomeRows"`
	Week1ExpenseRows []FinancialRow   `json:"week1ExpenseRows"`
	Week2IncomeRows  []FinancialRow   `json:"week2IncomeRows"`
	Week2ExpenseRows []FinancialRow   `json:"week2ExpenseRows"`
	AdditionalWeeks  []AdditionalWeek `json:"additionalWeeks"`
	UpdatedAt        *time.Time       `json:"updatedAt,omitempty"`
}

// Clone retorna uma cópia profunda do snapshot
func (s FinancialSnapshot) Clone() FinancialSnapshot {
	c := s
	c.BankAccountRows = cloneRows(s.BankAccountRows)
	c.Week1IncomeRows = cloneRows(s.Week1IncomeRows)
	c.Week1ExpenseRows = cloneRows(s.Week1ExpenseRows)
	c.Week2IncomeRows = cloneRows(s.Week2IncomeRows)
	c.Week2ExpenseRows = cloneRows(s.Week2ExpenseRows)
	if s.AdditionalWeeks != nil {
		c.AdditionalWeeks = make([]AdditionalWeek, len(s.AdditionalWeeks))
		for i, w := range s.AdditionalWeeks {
			w.IncomeRows = cloneRows(w.IncomeRows)
			w.ExpenseRows = cloneRows(w.ExpenseRows)
			c.AdditionalWeeks[i] = w
		}
	}
	if s.UpdatedAt != nil {
		t := *s.UpdatedAt
		c.UpdatedAt = &t
	}
	return c
}

func cloneRows(rows []FinancialRow) []FinancialRow {
	if rows == nil {
		return nil
	}
	out := make([]FinancialRow, len(rows))
	for i, r := range rows {
		if r.Date != nil {
			d := *r.Date
			r.Date = &d
		}
		out[i] = r
	}
	return out
}

// WeekBalance é o saldo derivado de uma semana na cascata
type WeekBalance struct {
	WeekID     string  `json:"weekId"`
	WeekNumber int     `json:"weekNumber"`
	Name       string  `json:"name"`
	Opening    float64 `json:"opening"`
	Income     float64 `json:"income"`
	Expenses   float64 `json:"expenses"`
	Closing    float64 `json:"closing"`
}

// LedgerView agrupa os valores derivados do snapshot. Nunca é persistido.
type LedgerView struct {
	Cash         CashTotals    `json:"cash"`
	BankTotal    float64       `json:"bankTotal"`
	Weeks        []WeekBalance `json:"weeks"`
	FinalBalance float64       `json:"finalBalance"`
}

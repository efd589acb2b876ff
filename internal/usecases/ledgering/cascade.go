// Package ledgering calcula a cascata de saldos semanais e concentra as mutações
// das linhas e semanas do snapshot financeiro.
package ledgering

import (
	"fmt"

	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/internal/usecases/cashing"
	"github.com/vfg2006/fintrak-api/pkg/money"
)

const (
	Week1ID = "1"
	Week2ID = "2"
	BankID  = "bank"

	// FirstAdditionalWeek é o número da primeira semana adicional
	FirstAdditionalWeek = 3
)

// SumRows soma os valores de um conjunto de linhas
func SumRows(rows []domain.FinancialRow) float64 {
	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = r.Amount
	}
	return money.Sum(values...)
}

// ClosingBalance = abertura + receitas - despesas
func ClosingBalance(opening float64, income, expense []domain.FinancialRow) float64 {
	return money.Sub(money.Sum(opening, SumRows(income)), SumRows(expense))
}

// WeekName é o nome padrão de uma semana
func WeekName(number int) string {
	return fmt.Sprintf("Week %d", number)
}

// Cascade recalcula toda a cadeia de saldos a partir da semana 1.
// A semana 1 abre em zero; o caixa é acompanhado à parte.
func Cascade(s *domain.FinancialSnapshot) domain.LedgerView {
	view := domain.LedgerView{
		Cash:      cashing.Aggregate(s.Denominations),
		BankTotal: SumRows(s.BankAccountRows),
		Weeks:     make([]domain.WeekBalance, 0, 2+len(s.AdditionalWeeks)),
	}

	opening := 0.0
	appendWeek := func(id string, number int, name string, income, expense []domain.FinancialRow) {
		wb := domain.WeekBalance{
			WeekID:     id,
			WeekNumber: number,
			Name:       name,
			Opening:    opening,
			Income:     SumRows(income),
			Expenses:   SumRows(expense),
		}
		wb.Closing = ClosingBalance(opening, income, expense)
		view.Weeks = append(view.Weeks, wb)
		opening = wb.Closing
	}

	appendWeek(Week1ID, 1, WeekName(1), s.Week1IncomeRows, s.Week1ExpenseRows)
	appendWeek(Week2ID, 2, WeekName(2), s.Week2IncomeRows, s.Week2ExpenseRows)
	for _, w := range s.AdditionalWeeks {
		appendWeek(w.ID, w.WeekNumber, w.Name, w.IncomeRows, w.ExpenseRows)
	}

	view.FinalBalance = opening
	return view
}

// BalanceOf busca o saldo de uma semana pelo id
func BalanceOf(view domain.LedgerView, weekID string) (domain.WeekBalance, bool) {
	for _, wb := range view.Weeks {
		if wb.WeekID == weekID {
			return wb, true
		}
	}
	return domain.WeekBalance{}, false
}

// AdditionalBalances retorna o fechamento de cada semana adicional indexado pelo id
func AdditionalBalances(view domain.LedgerView) map[string]float64 {
	out := make(map[string]float64)
	for _, wb := range view.Weeks {
		if wb.WeekNumber >= FirstAdditionalWeek {
			out[wb.WeekID] = wb.Closing
		}
	}
	return out
}

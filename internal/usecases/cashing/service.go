// Package cashing converte a contagem de notas e moedas no total em caixa.
package cashing

import (
	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/pkg/money"
)

// Clamp zera contagens negativas. Não há limite superior.
func Clamp(d domain.Denominations) domain.Denominations {
	return domain.Denominations{
		Notes100: nonNegative(d.Notes100),
		Notes50:  nonNegative(d.Notes50),
		Notes20:  nonNegative(d.Notes20),
		Notes10:  nonNegative(d.Notes10),
		Notes5:   nonNegative(d.Notes5),
		Coins2:   nonNegative(d.Coins2),
		Coins1:   nonNegative(d.Coins1),
		Coins050: nonNegative(d.Coins050),
		Coins020: nonNegative(d.Coins020),
		Coins010: nonNegative(d.Coins010),
		Coins005: nonNegative(d.Coins005),
	}
}

// Aggregate calcula os subtotais de notas e moedas e o total em caixa
func Aggregate(d domain.Denominations) domain.CashTotals {
	var notes, coins []float64
	for _, denom := range Clamp(d).List() {
		value := money.Mul(denom.FaceValue, denom.Count)
		if denom.IsNote {
			notes = append(notes, value)
		} else {
			coins = append(coins, value)
		}
	}

	notesTotal := money.Sum(notes...)
	coinsTotal := money.Sum(coins...)

	return domain.CashTotals{
		Notes: notesTotal,
		Coins: coinsTotal,
		Total: money.Sum(notesTotal, coinsTotal),
	}
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

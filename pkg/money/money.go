// Package money concentra a aritmética monetária do FinTrak.
// Todos os valores trafegam como float64 no JSON, mas as contas são feitas em
// decimal e arredondadas para duas casas.
package money

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	// DefaultCurrency é a moeda usada na formatação quando nenhuma é configurada
	DefaultCurrency = gomoney.AUD
	places          = 2
)

var currency = DefaultCurrency

// AUD é exibido com "$", como no restante do app
func init() {
	gomoney.AddCurrency(gomoney.AUD, "$", "$1", ".", ",", places)
}

// SetCurrency altera a moeda usada por Format
func SetCurrency(code string) {
	if code == "" || gomoney.GetCurrency(code) == nil {
		return
	}
	currency = code
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func out(d decimal.Decimal) float64 {
	return d.Round(places).InexactFloat64()
}

// Round arredonda para duas casas, metade para longe do zero
func Round(v float64) float64 {
	if v == 0 {
		return 0
	}
	return out(dec(v))
}

// Sum soma os valores sem acumular erro de ponto flutuante
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(dec(v))
	}
	return out(total)
}

// Sub retorna a - b
func Sub(a, b float64) float64 {
	return out(dec(a).Sub(dec(b)))
}

// Mul multiplica um valor unitário por uma quantidade
func Mul(v float64, qty int) float64 {
	return out(dec(v).Mul(decimal.NewFromInt(int64(qty))))
}

// Div retorna a / b, ou 0 quando b é zero
func Div(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return out(dec(a).Div(dec(b)))
}

// Percent retorna part / whole * 100, ou 0 quando whole é zero
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return out(dec(part).Div(dec(whole)).Mul(decimal.NewFromInt(100)))
}

// Cents converte o valor para a menor unidade da moeda
func Cents(v float64) int64 {
	return dec(v).Round(places).Shift(places).IntPart()
}

// Format formata o valor na moeda configurada, ex.: $1,234.50
func Format(v float64) string {
	return gomoney.New(Cents(v), currency).Display()
}

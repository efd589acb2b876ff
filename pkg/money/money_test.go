package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "já arredondado", in: 41.5, want: 41.5},
		{name: "meio para cima", in: 2.675, want: 2.68},
		{name: "negativo meio para longe do zero", in: -2.675, want: -2.68},
		{name: "trunca terceira casa", in: 10.001, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Round(tt.in))
		})
	}
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, 0.3, Sum(0.1, 0.2))
	assert.Equal(t, 0.0, Sum())
	assert.Equal(t, 41.5, Sum(40, 1.5))
	assert.Equal(t, -10.0, Sub(50, 60))
	assert.Equal(t, 50.0, Mul(5, 10))
	assert.Equal(t, 1.5, Mul(0.5, 3))
	assert.Equal(t, 8.0, Div(80, 10))
	assert.Equal(t, 0.0, Div(80, 0))
	assert.Equal(t, 37.5, Percent(30, 80))
	assert.Equal(t, 0.0, Percent(30, 0))
	assert.Equal(t, int64(4150), Cents(41.5))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1,234.50", Format(1234.5))
	assert.Equal(t, "$0.05", Format(0.05))
	assert.Equal(t, "-$10.00", Format(-10))
}

func TestSetCurrencyIgnoraCodigoDesconhecido(t *testing.T) {
	t.Cleanup(func() { SetCurrency(DefaultCurrency) })

	SetCurrency("XYZ")
	assert.Equal(t, "$1,234.50", Format(1234.5))

	SetCurrency("")
	assert.Equal(t, "$1,234.50", Format(1234.5))

	SetCurrency("EUR")
	assert.NotContains(t, Format(10), "$")
}

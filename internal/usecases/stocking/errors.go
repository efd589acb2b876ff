package stocking

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientStock = errors.New("quantidade maior que o estoque disponível")
	ErrInvalidQuantity   = errors.New("quantidade deve ser maior que zero")
	ErrInvalidBatch      = errors.New("dados do lote inválidos")
)

// StockError descreve uma tentativa de baixa maior que o estoque
type StockError struct {
	BatchID   string
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%s: lote %s, solicitado %d, disponível %d",
		ErrInsufficientStock.Error(), e.BatchID, e.Requested, e.Available)
}

func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}

func invalidBatch(details string) error {
	return fmt.Errorf("%w: %s", ErrInvalidBatch, details)
}

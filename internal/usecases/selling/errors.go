package selling

import (
	"errors"
	"fmt"

	"github.com/vfg2006/fintrak-api/internal/usecases/stocking"
	"github.com/vfg2006/fintrak-api/pkg/apiErrors"
)

var (
	// ErrValidation marca erros causados pelos dados informados pelo usuário
	ErrValidation = errors.New("dados inválidos")

	ErrBatchNotFound = errors.New("lote não encontrado")
	ErrSaleNotFound  = errors.New("venda não encontrada")
	ErrBatchHasSales = errors.New("lote possui vendas registradas")
	ErrInvalidSale   = fmt.Errorf("%w: venda inválida", ErrValidation)
)

// SaleError é um erro com contexto da venda ou do lote envolvido
type SaleError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	BatchID string
	SaleID  string
	Details string
}

func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SaleError) Unwrap() error {
	return e.Err
}

// OversellError é a tentativa de vender mais do que o estoque do lote.
// É um erro de validação; o estado não é alterado.
type OversellError struct {
	BatchID   string
	Requested int
	Available int
}

func (e *OversellError) Error() string {
	return fmt.Sprintf("quantidade %d maior que o estoque disponível %d no lote %s",
		e.Requested, e.Available, e.BatchID)
}

func (e *OversellError) Unwrap() []error {
	return []error{ErrValidation, stocking.ErrInsufficientStock}
}

// IsValidationError verifica se o erro deve ser mostrado ao usuário como dado inválido
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, stocking.ErrInvalidBatch)
}

func newBatchError(err error, batchID string) *SaleError {
	return &SaleError{Err: err, Code: apiErrors.ErrNotFound, BatchID: batchID}
}

func newSaleError(err error, code, saleID, details string) *SaleError {
	return &SaleError{Err: err, Code: code, SaleID: saleID, Details: details}
}

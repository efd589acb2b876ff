package persisting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/fintrak-api/pkg/apiErrors"
)

var (
	ErrInvalidInput    = errors.New("dados inválidos")
	ErrMissingBatchID  = errors.New("batchId é obrigatório")
	ErrBatchNotFound   = errors.New("lote não encontrado")
	ErrSaleNotFound    = errors.New("venda não encontrada")
	ErrBatchHasSales   = errors.New("lote possui vendas registradas")
	ErrDatabase        = errors.New("erro de banco de dados")
	ErrInvalidSnapshot = errors.New("dados financeiros devem ser um objeto JSON")
)

// PersistError carrega o código de API correspondente ao erro base
type PersistError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *PersistError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

func NewPersistError(baseErr error, code string, details string) *PersistError {
	return &PersistError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func invalidInput(details string) *PersistError {
	return NewPersistError(ErrInvalidInput, apiErrors.ErrMissingRequiredData, details)
}

func databaseError(err error) *PersistError {
	return NewPersistError(ErrDatabase, apiErrors.ErrDatabaseOperation, err.Error())
}

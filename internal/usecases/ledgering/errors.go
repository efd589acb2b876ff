package ledgering

import (
	"errors"
	"fmt"
)

var (
	ErrWeekNotFound    = errors.New("semana não encontrada")
	ErrRowNotFound     = errors.New("linha não encontrada")
	ErrMissingRowID    = errors.New("linha sem identificador")
	ErrDuplicateRowID  = errors.New("identificador de linha duplicado")
	ErrNegativeAmount  = errors.New("valor não pode ser negativo")
	ErrInvalidDate     = errors.New("data inválida, use AAAA-MM-DD")
	ErrInvalidRowSet   = errors.New("conjunto de linhas inválido")
	ErrPresetNotFound  = errors.New("atalho não encontrado")
	ErrInvalidWeekSpec = errors.New("semana deve ser 'bank', '1', '2' ou o id de uma semana adicional")
)

// RowError carrega o contexto da linha que falhou na validação
type RowError struct {
	Err     error
	RowID   string
	Details string
}

func (e *RowError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (linha %s): %s", e.Err.Error(), e.RowID, e.Details)
	}
	return fmt.Sprintf("%s (linha %s)", e.Err.Error(), e.RowID)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func newRowError(err error, rowID, details string) *RowError {
	return &RowError{Err: err, RowID: rowID, Details: details}
}

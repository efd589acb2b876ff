package ledgering

import (
	"strings"

	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/pkg/utils"
)

// RowKind diferencia receitas de despesas
type RowKind string

const (
	Income  RowKind = "income"
	Expense RowKind = "expense"
)

// RowSetRef identifica um conjunto de linhas do snapshot.
// Week é "bank", "1", "2" ou o id de uma semana adicional; Kind é ignorado para "bank".
type RowSetRef struct {
	Week string
	Kind RowKind
}

func (r RowSetRef) String() string {
	if r.Week == BankID {
		return BankID
	}
	return r.Week + "/" + string(r.Kind)
}

// ParseRowKind aceita "income" ou "expense" sem diferenciar maiúsculas
func ParseRowKind(s string) (RowKind, error) {
	switch RowKind(strings.ToLower(strings.TrimSpace(s))) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	}
	return "", ErrInvalidRowSet
}

// Rows retorna uma cópia das linhas do conjunto
func Rows(s *domain.FinancialSnapshot, ref RowSetRef) ([]domain.FinancialRow, error) {
	set, err := rowSet(s, ref)
	if err != nil {
		return nil, err
	}
	out := make([]domain.FinancialRow, len(*set))
	copy(out, *set)
	return out, nil
}

// AddRow valida e anexa uma linha ao conjunto
func AddRow(s *domain.FinancialSnapshot, ref RowSetRef, row domain.FinancialRow) error {
	set, err := rowSet(s, ref)
	if err != nil {
		return err
	}
	if err := validateRow(row); err != nil {
		return err
	}
	if indexOfRow(*set, row.ID) >= 0 {
		return newRowError(ErrDuplicateRowID, row.ID, ref.String())
	}

	*set = append(*set, row)
	return nil
}

// UpdateRow substitui a linha de mesmo id
func UpdateRow(s *domain.FinancialSnapshot, ref RowSetRef, row domain.FinancialRow) error {
	set, err := rowSet(s, ref)
	if err != nil {
		return err
	}
	if err := validateRow(row); err != nil {
		return err
	}

	idx := indexOfRow(*set, row.ID)
	if idx < 0 {
		return newRowError(ErrRowNotFound, row.ID, ref.String())
	}

	(*set)[idx] = row
	return nil
}

// RemoveRow remove a linha do conjunto
func RemoveRow(s *domain.FinancialSnapshot, ref RowSetRef, rowID string) error {
	set, err := rowSet(s, ref)
	if err != nil {
		return err
	}

	idx := indexOfRow(*set, rowID)
	if idx < 0 {
		return newRowError(ErrRowNotFound, rowID, ref.String())
	}

	rows := make([]domain.FinancialRow, 0, len(*set)-1)
	rows = append(rows, (*set)[:idx]...)
	rows = append(rows, (*set)[idx+1:]...)
	*set = rows
	return nil
}

func validateRow(row domain.FinancialRow) error {
	if row.ID == "" {
		return ErrMissingRowID
	}
	if row.Amount < 0 {
		return newRowError(ErrNegativeAmount, row.ID, "")
	}
	if row.Date != nil && !utils.ValidDate(*row.Date) {
		return newRowError(ErrInvalidDate, row.ID, *row.Date)
	}
	return nil
}

func rowSet(s *domain.FinancialSnapshot, ref RowSetRef) (*[]domain.FinancialRow, error) {
	if ref.Week == BankID {
		return &s.BankAccountRows, nil
	}
	if ref.Kind != Income && ref.Kind != Expense {
		return nil, ErrInvalidRowSet
	}

	switch ref.Week {
	case Week1ID:
		if ref.Kind == Income {
			return &s.Week1IncomeRows, nil
		}
		return &s.Week1ExpenseRows, nil
	case Week2ID:
		if ref.Kind == Income {
			return &s.Week2IncomeRows, nil
		}
		return &s.Week2ExpenseRows, nil
	case "":
		return nil, ErrInvalidWeekSpec
	}

	idx := indexOfWeek(s.AdditionalWeeks, ref.Week)
	if idx < 0 {
		return nil, ErrWeekNotFound
	}
	if ref.Kind == Income {
		return &s.AdditionalWeeks[idx].IncomeRows, nil
	}
	return &s.AdditionalWeeks[idx].ExpenseRows, nil
}

func indexOfRow(rows []domain.FinancialRow, id string) int {
	for i, r := range rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}

package ledgering

import (
	"github.com/vfg2006/fintrak-api/internal/domain"
)

// AddWeek anexa uma semana vazia numerada 3 + quantidade atual
func AddWeek(s *domain.FinancialSnapshot, id string) domain.AdditionalWeek {
	number := FirstAdditionalWeek + len(s.AdditionalWeeks)
	week := domain.AdditionalWeek{
		ID:          id,
		WeekNumber:  number,
		Name:        WeekName(number),
		IncomeRows:  []domain.FinancialRow{},
		ExpenseRows: []domain.FinancialRow{},
	}
	s.AdditionalWeeks = append(s.AdditionalWeeks, week)
	return week
}

// RemoveWeek remove a semana e renumera as restantes a partir de 3.
// Os ids e as linhas das semanas restantes são preservados.
func RemoveWeek(s *domain.FinancialSnapshot, id string) error {
	idx := indexOfWeek(s.AdditionalWeeks, id)
	if idx < 0 {
		return ErrWeekNotFound
	}

	weeks := make([]domain.AdditionalWeek, 0, len(s.AdditionalWeeks)-1)
	weeks = append(weeks, s.AdditionalWeeks[:idx]...)
	weeks = append(weeks, s.AdditionalWeeks[idx+1:]...)
	s.AdditionalWeeks = weeks

	Renumber(s)
	return nil
}

// Renumber garante WeekNumber = 3 + índice e o nome padrão correspondente
func Renumber(s *domain.FinancialSnapshot) {
	for i := range s.AdditionalWeeks {
		number := FirstAdditionalWeek + i
		s.AdditionalWeeks[i].WeekNumber = number
		s.AdditionalWeeks[i].Name = WeekName(number)
	}
}

func indexOfWeek(weeks []domain.AdditionalWeek, id string) int {
	for i, w := range weeks {
		if w.ID == id {
			return i
		}
	}
	return -1
}

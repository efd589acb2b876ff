package ledgering

import (
	"strings"

	"github.com/vfg2006/fintrak-api/internal/domain"
)

// Preset é um atalho de lançamento rápido
type Preset struct {
	Name   string
	Amount float64
	Kind   RowKind
}

var presets = []Preset{
	{Name: "Centrelink", Amount: 963.53, Kind: Income},
	{Name: "Sales", Amount: 100, Kind: Income},
	{Name: "Sales", Amount: 200, Kind: Income},
	{Name: "Sales", Amount: 450, Kind: Income},
	{Name: "D5", Amount: 500, Kind: Income},
	{Name: "Restock", Amount: 2000, Kind: Expense},
	{Name: "Rent", Amount: 1300, Kind: Expense},
	{Name: "Electricity", Amount: 50, Kind: Expense},
	{Name: "Phone", Amount: 225, Kind: Expense},
	{Name: "Internet", Amount: 85, Kind: Expense},
}

// Presets retorna os atalhos disponíveis
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// FindPreset busca um atalho pelo nome e, se informado, pelo valor
func FindPreset(name string, amount float64) (Preset, error) {
	for _, p := range presets {
		if !strings.EqualFold(p.Name, name) {
			continue
		}
		if amount == 0 || p.Amount == amount {
			return p, nil
		}
	}
	return Preset{}, ErrPresetNotFound
}

// ApplyPreset lança o atalho como uma nova linha na semana informada
func ApplyPreset(s *domain.FinancialSnapshot, week string, p Preset, rowID string) (domain.FinancialRow, error) {
	row := domain.FinancialRow{ID: rowID, Name: p.Name, Amount: p.Amount}
	if err := AddRow(s, RowSetRef{Week: week, Kind: p.Kind}, row); err != nil {
		return domain.FinancialRow{}, err
	}
	return row, nil
}

package domain

// Denominations é a contagem de notas e moedas em caixa
type Denominations struct {
	Notes100 int `json:"notes100"`
	Notes50  int `json:"notes50"`
	Notes20  int `json:"notes20"`
	Notes10  int `json:"notes10"`
	Notes5   int `json:"notes5"`
	Coins2   int `json:"coins2"`
	Coins1   int `json:"coins1"`
	Coins050 int `json:"coins050"`
	Coins020 int `json:"coins020"`
	Coins010 int `json:"coins010"`
	Coins005 int `json:"coins005"`
}

// Denomination associa uma contagem ao seu valor de face
type Denomination struct {
	Name      string
	FaceValue float64
	Count     int
	IsNote    bool
}

// List retorna as denominações na ordem de exibição, notas primeiro
func (d Denominations) List() []Denomination {
	return []Denomination{
		{Name: "notes100", FaceValue: 100, Count: d.Notes100, IsNote: true},
		{Name: "notes50", FaceValue: 50, Count: d.Notes50, IsNote: true},
		{Name: "notes20", FaceValue: 20, Count: d.Notes20, IsNote: true},
		{Name: "notes10", FaceValue: 10, Count: d.Notes10, IsNote: true},
		{Name: "notes5", FaceValue: 5, Count: d.Notes5, IsNote: true},
		{Name: "coins2", FaceValue: 2, Count: d.Coins2},
		{Name: "coins1", FaceValue: 1, Count: d.Coins1},
		{Name: "coins050", FaceValue: 0.5, Count: d.Coins050},
		{Name: "coins020", FaceValue: 0.2, Count: d.Coins020},
		{Name: "coins010", FaceValue: 0.1, Count: d.Coins010},
		{Name: "coins005", FaceValue: 0.05, Count: d.Coins005},
	}
}

// CashTotals é o resultado da agregação do caixa
type CashTotals struct {
	Notes float64 `json:"notes"`
	Coins float64 `json:"coins"`
	Total float64 `json:"total"`
}

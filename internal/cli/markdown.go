package cli

import (
	"fmt"
	"strings"

	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/pkg/money"
)

// table monta uma tabela markdown
type table struct {
	header []string
	rows   [][]string
}

func newTable(header ...string) *table {
	return &table{header: header}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) write(b *strings.Builder) {
	b.WriteString("| " + strings.Join(t.header, " | ") + " |\n")
	sep := make([]string, len(t.header))
	for i := range sep {
		sep[i] = "---"
	}
	b.WriteString("|" + strings.Join(sep, "|") + "|\n")
	for _, r := range t.rows {
		b.WriteString("| " + strings.Join(escapeCells(r), " | ") + " |\n")
	}
	b.WriteString("\n")
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}

func renderRows(title string, rows []domain.FinancialRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	if len(rows) == 0 {
		b.WriteString("Nenhuma linha.\n")
		return b.String()
	}

	t := newTable("ID", "Nome", "Valor", "Data")
	for _, r := range rows {
		date := ""
		if r.Date != nil {
			date = *r.Date
		}
		t.add(r.ID, r.Name, money.Format(r.Amount), date)
	}
	t.write(&b)
	return b.String()
}

func renderCash(d domain.Denominations, totals domain.CashTotals) string {
	var b strings.Builder
	b.WriteString("## Caixa\n\n")

	t := newTable("Denominação", "Quantidade", "Subtotal")
	for _, den := range d.List() {
		t.add(money.Format(den.FaceValue), fmt.Sprint(den.Count), money.Format(money.Mul(den.FaceValue, den.Count)))
	}
	t.write(&b)

	fmt.Fprintf(&b, "- Notas: **%s**\n", money.Format(totals.Notes))
	fmt.Fprintf(&b, "- Moedas: **%s**\n", money.Format(totals.Coins))
	fmt.Fprintf(&b, "- Total: **%s**\n", money.Format(totals.Total))
	return b.String()
}

func renderBalances(view domain.LedgerView) string {
	var b strings.Builder
	b.WriteString("## Saldos\n\n")
	fmt.Fprintf(&b, "- Caixa: **%s**\n", money.Format(view.Cash.Total))
	fmt.Fprintf(&b, "- Contas bancárias: **%s**\n\n", money.Format(view.BankTotal))

	t := newTable("Semana", "ID", "Abertura", "Receitas", "Despesas", "Fechamento")
	for _, w := range view.Weeks {
		t.add(w.Name, w.WeekID, money.Format(w.Opening), money.Format(w.Income),
			money.Format(w.Expenses), money.Format(w.Closing))
	}
	t.write(&b)

	fmt.Fprintf(&b, "Saldo final: **%s**\n", money.Format(view.FinalBalance))
	return b.String()
}

func renderBatches(batches []domain.InventoryBatch) string {
	var b strings.Builder
	b.WriteString("## Lotes\n\n")
	if len(batches) == 0 {
		b.WriteString("Nenhum lote cadastrado.\n")
		return b.String()
	}

	t := newTable("ID", "Lote", "Produto", "Estoque", "Vendidos", "Custo unit.", "Venda prevista", "Venda real")
	for _, batch := range batches {
		t.add(batch.ID, batch.BatchName, batch.ProductName,
			fmt.Sprint(batch.QtyInStock), fmt.Sprint(batch.QtySold),
			money.Format(batch.CostPerUnit),
			money.Format(batch.ProjectedSaleCostPerUnit),
			money.Format(batch.ActualSaleCostPerUnit))
	}
	t.write(&b)
	return b.String()
}

func renderSales(batch domain.InventoryBatch, sales []domain.SalesRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Vendas de %s\n\n", batch.BatchName)
	if len(sales) == 0 {
		b.WriteString("Nenhuma venda registrada.\n")
		return b.String()
	}

	t := newTable("ID", "Data", "Qtd", "Preço unit.", "Total", "Pago", "Saldo devedor", "Obs.")
	for _, s := range sales {
		t.add(s.ID, s.CreatedAt.Format("2006-01-02"), fmt.Sprint(s.Qty),
			money.Format(s.PricePerUnit), money.Format(s.TotalPrice),
			money.Format(s.AmountPaid), money.Format(s.BalanceOwing), s.Notes)
	}
	t.write(&b)
	return b.String()
}

func renderSummary(batch domain.InventoryBatch, s domain.SalesSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s (%s)\n\n", batch.BatchName, batch.ProductName)
	fmt.Fprintf(&b, "- Vendas: %d\n", s.SalesCount)
	fmt.Fprintf(&b, "- Unidades vendidas: %d de %d\n", s.TotalSold, batch.TotalQty())
	fmt.Fprintf(&b, "- Receita: **%s**\n", money.Format(s.TotalRevenue))
	fmt.Fprintf(&b, "- Recebido: %s\n", money.Format(s.TotalPaid))
	fmt.Fprintf(&b, "- A receber: %s\n", money.Format(s.TotalOwing))
	fmt.Fprintf(&b, "- Preço médio: %s\n", money.Format(s.AveragePrice))
	fmt.Fprintf(&b, "- Lucro: **%s** (%.2f%%)\n\n", money.Format(s.Profit), s.ProfitMargin)
	return b.String()
}

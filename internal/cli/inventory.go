package cli

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"
	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/pkg/money"
)

type batchCmd struct {
	app       *App
	id        string
	name      string
	product   string
	qty       int
	cost      float64
	projected float64
}

func (*batchCmd) Name() string     { return "batch" }
func (*batchCmd) Synopsis() string { return "cria, altera, remove ou lista lotes de estoque" }
func (*batchCmd) Usage() string {
	return `fintrak batch [-id <id>] [-name <lote>] [-product <produto>] [-qty N] [-cost <valor>] [-projected <valor>] <create|update|delete|list>

  Em update apenas os campos informados são alterados; as quantidades só
  mudam através das vendas. Lotes com vendas não podem ser removidos.
`
}

func (c *batchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "id do lote (update e delete)")
	f.StringVar(&c.name, "name", "", "nome do lote")
	f.StringVar(&c.product, "product", "", "nome do produto")
	f.IntVar(&c.qty, "qty", 0, "quantidade inicial em estoque")
	f.Float64Var(&c.cost, "cost", 0, "custo por unidade")
	f.Float64Var(&c.projected, "projected", 0, "preço de venda previsto por unidade")
}

func (c *batchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.run(ctx, func(ctx context.Context) error {
		switch f.Arg(0) {
		case "create":
			batch, err := c.app.ledger.CreateBatch(ctx, domain.NewBatchInput{
				BatchName:                c.name,
				ProductName:              c.product,
				QtyInStock:               c.qty,
				CostPerUnit:              c.cost,
				ProjectedSaleCostPerUnit: c.projected,
			})
			if err != nil {
				return err
			}
			c.app.printf("Lote %s criado (%s)\n", batch.BatchName, batch.ID)

		case "update":
			if c.id == "" {
				return usageError("informe -id")
			}
			var patch domain.BatchPatch
			f.Visit(func(fl *flag.Flag) {
				switch fl.Name {
				case "name":
					patch.BatchName = &c.name
				case "product":
					patch.ProductName = &c.product
				case "cost":
					patch.CostPerUnit = &c.cost
				case "projected":
					patch.ProjectedSaleCostPerUnit = &c.projected
				}
			})
			batch, err := c.app.ledger.UpdateBatch(ctx, c.id, patch)
			if err != nil {
				return err
			}
			c.app.printf("Lote %s atualizado\n", batch.ID)

		case "delete":
			if c.id == "" {
				return usageError("informe -id")
			}
			if err := c.app.ledger.DeleteBatch(ctx, c.id); err != nil {
				return err
			}
			c.app.printf("Lote %s removido\n", c.id)

		case "list", "":
			c.app.print(renderBatches(c.app.ledger.Batches()))

		default:
			return usageError("ação deve ser create, update, delete ou list")
		}
		return nil
	})
}

type saleCmd struct {
	app     *App
	batchID string
	id      string
	qty     int
	price   float64
	total   float64
	paid    float64
	notes   string
}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "registra, remove ou lista vendas de um lote" }
func (*saleCmd) Usage() string {
	return `fintrak sale [-batch <id>] [-id <id>] [-qty N] [-price <valor>] [-total <valor>] [-paid <valor>] [-notes <texto>] <record|delete|list>

  Sem -price, o preço unitário é o total dividido pela quantidade.
  Remover uma venda devolve as unidades ao estoque.
`
}

func (c *saleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.batchID, "batch", "", "id do lote")
	f.StringVar(&c.id, "id", "", "id da venda (delete)")
	f.IntVar(&c.qty, "qty", 0, "quantidade vendida")
	f.Float64Var(&c.price, "price", 0, "preço por unidade")
	f.Float64Var(&c.total, "total", 0, "valor total da venda")
	f.Float64Var(&c.paid, "paid", 0, "valor pago")
	f.StringVar(&c.notes, "notes", "", "observações")
}

func (c *saleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.run(ctx, func(ctx context.Context) error {
		switch f.Arg(0) {
		case "record":
			if c.batchID == "" {
				return usageError("informe -batch")
			}
			in := domain.SaleInput{
				Qty:        c.qty,
				TotalPrice: c.total,
				AmountPaid: c.paid,
				Notes:      strings.TrimSpace(c.notes),
			}
			f.Visit(func(fl *flag.Flag) {
				if fl.Name == "price" {
					in.PricePerUnit = &c.price
				}
			})
			sale, err := c.app.ledger.RecordSale(ctx, c.batchID, in)
			if err != nil {
				return err
			}
			c.app.printf("Venda %s registrada: %d un. por %s, saldo devedor %s\n",
				sale.ID, sale.Qty, money.Format(sale.TotalPrice), money.Format(sale.BalanceOwing))

		case "delete":
			if c.id == "" {
				return usageError("informe -id")
			}
			if err := c.app.ledger.DeleteSale(ctx, c.id); err != nil {
				return err
			}
			c.app.printf("Venda %s removida\n", c.id)

		case "list", "":
			if c.batchID == "" {
				return usageError("informe -batch")
			}
			batch, err := c.app.ledger.Batch(c.batchID)
			if err != nil {
				return err
			}
			sales, err := c.app.ledger.Sales(c.batchID)
			if err != nil {
				return err
			}
			c.app.print(renderSales(batch, sales))

		default:
			return usageError("ação deve ser record, delete ou list")
		}
		return nil
	})
}

type summaryCmd struct {
	app *App
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "exibe receita, lucro e margem dos lotes" }
func (*summaryCmd) Usage() string {
	return `fintrak summary [<id do lote>...]

  Sem argumentos, resume todos os lotes.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.run(ctx, func(context.Context) error {
		ids := f.Args()
		if len(ids) == 0 {
			for _, b := range c.app.ledger.Batches() {
				ids = append(ids, b.ID)
			}
		}
		if len(ids) == 0 {
			c.app.print("Nenhum lote cadastrado.\n")
			return nil
		}

		var b strings.Builder
		for _, id := range ids {
			batch, err := c.app.ledger.Batch(id)
			if err != nil {
				return err
			}
			summary, err := c.app.ledger.Summary(id)
			if err != nil {
				return err
			}
			b.WriteString(renderSummary(batch, summary))
		}
		c.app.print(b.String())
		return nil
	})
}

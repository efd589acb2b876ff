package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/internal/usecases/ledgering"
	"github.com/vfg2006/fintrak-api/pkg/money"
)

type cashCmd struct {
	app    *App
	counts map[string]*int
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "atualiza a contagem de notas e moedas do caixa" }
func (*cashCmd) Usage() string {
	return `fintrak cash [-notes100 N] [-notes50 N] ... [-coins005 N]

  Altera apenas as denominações informadas e exibe os totais do caixa.
  Quantidades negativas são gravadas como zero.
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	c.counts = make(map[string]*int)
	for _, d := range (domain.Denominations{}).List() {
		c.counts[d.Name] = f.Int(d.Name, 0, fmt.Sprintf("quantidade de %s", money.Format(d.FaceValue)))
	}
}

func (c *cashCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.run(ctx, func(ctx context.Context) error {
		next := c.app.tracker.Snapshot().Denominations
		fields := denominationFields(&next)

		changed := false
		f.Visit(func(fl *flag.Flag) {
			if p, ok := fields[fl.Name]; ok {
				*p = *c.counts[fl.Name]
				changed = true
			}
		})

		if changed {
			if err := c.app.tracker.UpdateCash(ctx, next); err != nil {
				return err
			}
		}

		c.app.print(renderCash(c.app.tracker.Snapshot().Denominations, c.app.tracker.View().Cash))
		return nil
	})
}

func denominationFields(d *domain.Denominations) map[string]*int {
	return map[string]*int{
		"notes100": &d.Notes100,
		"notes50":  &d.Notes50,
		"notes20":  &d.Notes20,
		"notes10":  &d.Notes10,
		"notes5":   &d.Notes5,
		"coins2":   &d.Coins2,
		"coins1":   &d.Coins1,
		"coins050": &d.Coins050,
		"coins020": &d.Coins020,
		"coins010": &d.Coins010,
		"coins005": &d.Coins005,
	}
}

type rowCmd struct {
	app    *App
	week   string
	kind   string
	id     string
	name   string
	amount float64
	date   string
}

func (*rowCmd) Name() string     { return "row" }
func (*rowCmd) Synopsis() string { return "adiciona, altera, remove ou lista linhas" }
func (*rowCmd) Usage() string {
	return `fintrak row -w <semana> [-k income|expense] [-id <id>] [-name <nome>] [-amount <valor>] [-date AAAA-MM-DD] <add|update|remove|list>

  A semana é "bank" para as contas bancárias, "1", "2" ou o id de uma semana adicional.
  Em update apenas os campos informados são alterados.
`
}

func (c *rowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.week, "w", ledgering.Week1ID, "semana: bank, 1, 2 ou id da semana adicional")
	f.StringVar(&c.kind, "k", string(ledgering.Income), "tipo da linha: income ou expense")
	f.StringVar(&c.id, "id", "", "id da linha (update e remove)")
	f.StringVar(&c.name, "name", "", "nome da linha")
	f.Float64Var(&c.amount, "amount", 0, "valor da linha")
	f.StringVar(&c.date, "date", "", "data da linha, AAAA-MM-DD")
}

func (c *rowCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.run(ctx, func(ctx context.Context) error {
		ref, err := parseRowSet(c.week, c.kind)
		if err != nil {
			return err
		}

		switch f.Arg(0) {
		case "add":
			row, err := c.app.tracker.AddRow(ctx, ref, c.name, c.amount, optionalString(c.date))
			if err != nil {
				return err
			}
			c.app.printf("Linha %s adicionada em %s\n", row.ID, ref)

		case "update":
			if c.id == "" {
				return usageError("informe -id")
			}
			snapshot := c.app.tracker.Snapshot()
			rows, err := ledgering.Rows(&snapshot, ref)
			if err != nil {
				return err
			}
			row, ok := findRow(rows, c.id)
			if !ok {
				return ledgering.ErrRowNotFound
			}
			f.Visit(func(fl *flag.Flag) {
				switch fl.Name {
				case "name":
					row.Name = strings.TrimSpace(c.name)
				case "amount":
					row.Amount = c.amount
				case "date":
					row.Date = optionalString(c.date)
				}
			})
			if err := c.app.tracker.UpdateRow(ctx, ref, row); err != nil {
				return err
			}
			c.app.printf("Linha %s atualizada\n", row.ID)

		case "remove":
			if c.id == "" {
				return usageError("informe -id")
			}
			if err := c.app.tracker.RemoveRow(ctx, ref, c.id); err != nil {
				return err
			}
			c.app.printf("Linha %s removida\n", c.id)

		case "list":
			snapshot := c.app.tracker.Snapshot()
			rows, err := ledgering.Rows(&snapshot, ref)
			if err != nil {
				return err
			}
			c.app.print(renderRows(ref.String(), rows))

		default:
			return usageError("ação deve ser add, update, remove ou list")
		}
		return nil
	})
}

func parseRowSet(week, kind string) (ledgering.RowSetRef, error) {
	ref := ledgering.RowSetRef{Week: strings.TrimSpace(week)}
	if ref.Week == "" {
		return ref, usageError("informe -w")
	}
	if ref.Week == ledgering.BankID {
		return ref, nil
	}

	k, err := ledgering.ParseRowKind(kind)
	if err != nil {
		return ref, usageError("tipo deve ser income ou expense")
	}
	ref.Kind = k
	return ref, nil
}

func findRow(rows []domain.FinancialRow, id string) (domain.FinancialRow, bool) {
	for _, r := range rows {
		if r.ID == id {
			return r, true
		}
	}
	return domain.FinancialRow{}, false
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

type presetCmd struct {
	app    *App
	week   string
	amount float64
}

func (*presetCmd) Name() string     { return "preset" }
func (*presetCmd) Synopsis() string { return "lança um atalho rápido em uma semana" }
func (*presetCmd) Usage() string {
	return `fintrak preset [-w <semana>] [-amount <valor>] [<nome>]

  Sem nome, lista os atalhos disponíveis. -amount escolhe entre atalhos
  de mesmo nome.
`
}

func (c *presetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.week, "w", ledgering.Week1ID, "semana: 1, 2 ou id da semana adicional")
	f.Float64Var(&c.amount, "amount", 0, "valor do atalho")
}

func (c *presetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		c.app.print(renderPresets(ledgering.Presets()))
		return subcommands.ExitSuccess
	}

	name := strings.Join(f.Args(), " ")
	return c.app.run(ctx, func(ctx context.Context) error {
		if c.week == ledgering.BankID {
			return usageError("atalhos não se aplicam às contas bancárias")
		}
		row, err := c.app.tracker.ApplyPreset(ctx, c.week, name, c.amount)
		if err != nil {
			return err
		}
		c.app.printf("%s de %s lançado na semana %s (%s)\n", row.Name, money.Format(row.Amount), c.week, row.ID)
		return nil
	})
}

func renderPresets(presets []ledgering.Preset) string {
	var b strings.Builder
	b.WriteString("## Atalhos\n\n")
	t := newTable("Nome", "Valor", "Tipo")
	for _, p := range presets {
		t.add(p.Name, money.Format(p.Amount), string(p.Kind))
	}
	t.write(&b)
	return b.String()
}

type weekCmd struct {
	app *App
}

func (*weekCmd) Name() string     { return "week" }
func (*weekCmd) Synopsis() string { return "adiciona ou remove semanas adicionais" }
func (*weekCmd) Usage() string {
	return `fintrak week <add|remove <id>|list>

  As semanas adicionais começam em 3 e são renumeradas após uma remoção.
`
}

func (*weekCmd) SetFlags(*flag.FlagSet) {}

func (c *weekCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.run(ctx, func(ctx context.Context) error {
		switch f.Arg(0) {
		case "add":
			week, err := c.app.tracker.AddWeek(ctx)
			if err != nil {
				return err
			}
			c.app.printf("%s adicionada (%s)\n", week.Name, week.ID)

		case "remove":
			id := f.Arg(1)
			if id == "" {
				return usageError("informe o id da semana")
			}
			if err := c.app.tracker.RemoveWeek(ctx, id); err != nil {
				return err
			}
			c.app.printf("Semana %s removida\n", id)

		case "list", "":
			var b strings.Builder
			b.WriteString("## Semanas adicionais\n\n")
			weeks := c.app.tracker.Snapshot().AdditionalWeeks
			if len(weeks) == 0 {
				b.WriteString("Nenhuma semana adicional.\n")
			} else {
				t := newTable("Número", "Nome", "ID", "Receitas", "Despesas")
				for _, w := range weeks {
					t.add(fmt.Sprint(w.WeekNumber), w.Name, w.ID,
						fmt.Sprint(len(w.IncomeRows)), fmt.Sprint(len(w.ExpenseRows)))
				}
				t.write(&b)
			}
			c.app.print(b.String())

		default:
			return usageError("ação deve ser add, remove ou list")
		}
		return nil
	})
}

type balancesCmd struct {
	app *App
}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "exibe a cascata de saldos semanais" }
func (*balancesCmd) Usage() string {
	return `fintrak balances
`
}

func (*balancesCmd) SetFlags(*flag.FlagSet) {}

func (c *balancesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.run(ctx, func(context.Context) error {
		c.app.print(renderBalances(c.app.tracker.View()))
		return nil
	})
}

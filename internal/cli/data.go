package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/vfg2006/fintrak-api/pkg/log"
)

type clearCmd struct {
	app   *App
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "apaga o registro financeiro local e remoto" }
func (*clearCmd) Usage() string {
	return `fintrak clear -force

  Remove caixa, contas, semanas e os saldos espelhados. O estoque e as
  vendas não são alterados.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "confirma a remoção")
}

func (c *clearCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.run(ctx, func(ctx context.Context) error {
		if !c.force {
			return usageError("use -force para confirmar")
		}
		if err := c.app.tracker.Clear(ctx); err != nil {
			return err
		}
		c.app.printf("Dados financeiros apagados\n")
		return nil
	})
}

type syncCmd struct {
	app   *App
	watch bool
}

func (*syncCmd) Name() string { return "sync" }
func (*syncCmd) Synopsis() string {
	return "carrega os dados do servidor e envia as alterações pendentes"
}
func (*syncCmd) Usage() string {
	return `fintrak sync [-watch]

  Com -watch, continua drenando a fila no agendamento configurado até
  receber um sinal de interrupção.
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.watch, "watch", false, "mantém a sincronização em segundo plano")
}

func (c *syncCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.run(ctx, func(ctx context.Context) error {
		pending := c.app.queue.Len()

		if c.watch {
			if c.app.sync == nil {
				return usageError("sincronização em segundo plano não configurada")
			}
			if err := c.app.sync.Start(ctx); err != nil {
				return err
			}
			log.ForContext(ctx).Info("Sincronização em segundo plano iniciada")
			<-ctx.Done()

			// o contexto do comando já foi cancelado
			result := c.app.sync.Stop(context.WithoutCancel(ctx))
			c.app.printf("%d alterações enviadas, %d falharam\n", result.Written, result.Failed)
			return nil
		}

		c.app.printf("%d alterações pendentes para envio\n", pending)
		return nil
	})
}

// Package cli implementa os subcomandos do cliente fintrak.
// Todo comando carrega o estado, executa e envia a fila de escritas antes de sair.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/vfg2006/fintrak-api/internal/scheduler"
	"github.com/vfg2006/fintrak-api/internal/usecases/reconciling"
	"github.com/vfg2006/fintrak-api/internal/usecases/selling"
	"github.com/vfg2006/fintrak-api/internal/usecases/tracking"
	"github.com/vfg2006/fintrak-api/pkg/log"
)

var errUsage = errors.New("uso inválido")

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// Flusher é a fila de escritas remotas enviada ao final de cada comando
type Flusher interface {
	Flush(ctx context.Context) reconciling.DrainResult
	Len() int
}

type App struct {
	tracker *tracking.Tracker
	ledger  *selling.Ledger
	queue   Flusher
	sync    *scheduler.SyncFlushService
	out     io.Writer
	errOut  io.Writer
	render  func(markdown string) (string, error)
}

type Option func(*App)

func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

// WithRenderer troca a renderização do markdown; os testes usam o texto puro
func WithRenderer(render func(markdown string) (string, error)) Option {
	return func(a *App) {
		a.render = render
	}
}

func WithSyncService(s *scheduler.SyncFlushService) Option {
	return func(a *App) {
		a.sync = s
	}
}

func New(tracker *tracking.Tracker, ledger *selling.Ledger, queue Flusher, opts ...Option) *App {
	a := &App{
		tracker: tracker,
		ledger:  ledger,
		queue:   queue,
		out:     os.Stdout,
		errOut:  os.Stderr,
		render:  renderTerminal,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Commands retorna os subcomandos na ordem de exibição da ajuda
func (a *App) Commands() []subcommands.Command {
	return []subcommands.Command{
		&cashCmd{app: a},
		&rowCmd{app: a},
		&presetCmd{app: a},
		&weekCmd{app: a},
		&balancesCmd{app: a},
		&batchCmd{app: a},
		&saleCmd{app: a},
		&summaryCmd{app: a},
		&clearCmd{app: a},
		&syncCmd{app: a},
	}
}

func (a *App) Register(commander *subcommands.Commander) {
	for _, c := range a.Commands() {
		commander.Register(c, groupOf(c.Name()))
	}
}

func groupOf(name string) string {
	switch name {
	case "batch", "sale", "summary":
		return "estoque"
	case "clear", "sync":
		return "dados"
	}
	return "finanças"
}

// run carrega o estado, executa fn e envia as escritas pendentes
func (a *App) run(ctx context.Context, fn func(ctx context.Context) error) subcommands.ExitStatus {
	ctx, _ = log.WithCorrelationID(ctx)

	err := a.load(ctx)
	if err == nil {
		err = fn(ctx)
	}
	// a fila é enviada mesmo após uma interrupção
	a.flush(context.WithoutCancel(ctx))

	if err != nil {
		fmt.Fprintf(a.errOut, "Erro: %v\n", err)
		if errors.Is(err, errUsage) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (a *App) load(ctx context.Context) error {
	a.tracker.Load(ctx)
	if err := a.ledger.Load(ctx); err != nil {
		return fmt.Errorf("erro ao carregar estoque: %w", err)
	}
	return nil
}

func (a *App) flush(ctx context.Context) {
	if a.queue.Len() == 0 {
		return
	}

	result := a.queue.Flush(ctx)
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"written": result.Written,
		"failed":  result.Failed,
	})
	if result.Failed > 0 {
		logger.Warn("Escritas remotas falharam")
		fmt.Fprintf(a.errOut, "Aviso: %d alterações não chegaram ao servidor e serão reenviadas na próxima execução\n", result.Failed)
		return
	}
	logger.Debug("Fila de escritas enviada")
}

// print renderiza o markdown; se a renderização falhar escreve o texto puro
func (a *App) print(markdown string) {
	rendered, err := a.render(markdown)
	if err != nil {
		log.L.WithError(err).Debug("Erro ao renderizar markdown")
		rendered = markdown
	}
	fmt.Fprint(a.out, rendered)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func renderTerminal(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}

// PlainText devolve o markdown sem renderização
func PlainText(markdown string) (string, error) {
	return markdown, nil
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/subcommands"
	"github.com/vfg2006/fintrak-api/infrastructure/database/sqlite"
	"github.com/vfg2006/fintrak-api/infrastructure/localstore"
	"github.com/vfg2006/fintrak-api/infrastructure/remote/fintrakclient"
	"github.com/vfg2006/fintrak-api/internal/cli"
	"github.com/vfg2006/fintrak-api/internal/config"
	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/internal/scheduler"
	"github.com/vfg2006/fintrak-api/internal/usecases/reconciling"
	"github.com/vfg2006/fintrak-api/internal/usecases/selling"
	"github.com/vfg2006/fintrak-api/internal/usecases/tracking"
	"github.com/vfg2006/fintrak-api/pkg/log"
	"github.com/vfg2006/fintrak-api/pkg/money"
)

// cache é o armazenamento local usado pelos reconciliadores
type cache interface {
	localstore.KV
	reconciling.Transactor
	reconciling.DirtyTracker
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	log.SetOutput(os.Stderr)
	money.SetCurrency(cfg.App.Currency)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeCache := openCache(ctx, cfg.Local)
	defer closeCache()

	client := fintrakclient.NewClient(cfg.Remote)
	queue := reconciling.NewWriteQueue(reconciling.WithDebounceWindow(cfg.Sync.DebounceWindow))

	financial := reconciling.New[domain.FinancialSnapshot]("financial",
		fintrakclient.NewSnapshotStore(client),
		localstore.NewJSONStore[domain.FinancialSnapshot](kv, localstore.FinancialDataKey),
		queue,
		reconciling.WithDirtyTracker[domain.FinancialSnapshot](kv),
	)
	batches := reconciling.New[[]domain.InventoryBatch]("batches",
		fintrakclient.NewBatchListStore(client),
		localstore.NewJSONStore[[]domain.InventoryBatch](kv, localstore.InventoryBatchesKey),
		queue,
		reconciling.WithDirtyTracker[[]domain.InventoryBatch](kv),
		reconciling.WithEmpty(func() []domain.InventoryBatch { return []domain.InventoryBatch{} }),
	)
	sales := reconciling.New[[]domain.SalesRecord]("sales",
		fintrakclient.NewSalesListStore(client),
		localstore.NewJSONStore[[]domain.SalesRecord](kv, localstore.SalesRecordsKey),
		queue,
		reconciling.WithDirtyTracker[[]domain.SalesRecord](kv),
		reconciling.WithEmpty(func() []domain.SalesRecord { return []domain.SalesRecord{} }),
	)

	app := cli.New(
		tracking.NewTracker(cfg.Local.UserID, financial, kv),
		selling.NewLedger(cfg.Local.UserID, batches, sales, kv),
		queue,
		cli.WithSyncService(scheduler.NewSyncFlushService(queue, cfg.Sync)),
	)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	app.Register(commander)

	flag.Parse()
	status := commander.Execute(ctx)

	closeCache()
	os.Exit(int(status))
}

// openCache abre o banco local; sem caminho configurado o cache fica em memória
func openCache(ctx context.Context, cfg config.Local) (cache, func()) {
	if cfg.DBPath == "" {
		log.L.Debug("Cache local em memória")
		return localstore.NewMemoryKV(), func() {}
	}

	conn, err := sqlite.Open(ctx, cfg.DBPath)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao abrir cache local")
	}

	closed := false
	return localstore.NewSQLiteKV(conn), func() {
		if closed {
			return
		}
		closed = true
		if err := conn.Close(); err != nil {
			log.L.WithError(err).Warn("Erro ao fechar cache local")
		}
	}
}

package cli_test

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"testing"
	"time"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fintrak-api/infrastructure/localstore"
	"github.com/vfg2006/fintrak-api/internal/cli"
	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/internal/usecases/reconciling"
	"github.com/vfg2006/fintrak-api/internal/usecases/selling"
	"github.com/vfg2006/fintrak-api/internal/usecases/tracking"
)

const userID = "u1"

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func sequentialIDs() func(prefix string) (string, error) {
	n := 0
	return func(prefix string) (string, error) {
		n++
		return fmt.Sprintf("%s%d", prefix, n), nil
	}
}

// unavailableStore simula um servidor fora do ar
type unavailableStore[T any] struct{}

func (unavailableStore[T]) Get(context.Context, string) (T, error) {
	var zero T
	return zero, reconciling.ErrUnavailable
}

func (unavailableStore[T]) Put(context.Context, string, T) error {
	return reconciling.ErrUnavailable
}

func (unavailableStore[T]) Delete(context.Context, string) error {
	return reconciling.ErrUnavailable
}

type env struct {
	local  *localstore.MemoryKV
	remote *localstore.MemoryKV
	out    *bytes.Buffer
	errOut *bytes.Buffer
	app    *cli.App
}

func newEnv(t *testing.T, offline bool) *env {
	t.Helper()

	e := &env{
		local:  localstore.NewMemoryKV(),
		remote: localstore.NewMemoryKV(),
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
	}
	queue := reconciling.NewWriteQueue(reconciling.WithDebounceWindow(time.Hour))

	var (
		finRemote   reconciling.Store[domain.FinancialSnapshot] = localstore.NewJSONStore[domain.FinancialSnapshot](e.remote, localstore.FinancialDataKey)
		batchRemote reconciling.Store[[]domain.InventoryBatch]  = localstore.NewJSONStore[[]domain.InventoryBatch](e.remote, localstore.InventoryBatchesKey)
		salesRemote reconciling.Store[[]domain.SalesRecord]     = localstore.NewJSONStore[[]domain.SalesRecord](e.remote, localstore.SalesRecordsKey)
	)
	if offline {
		finRemote = unavailableStore[domain.FinancialSnapshot]{}
		batchRemote = unavailableStore[[]domain.InventoryBatch]{}
		salesRemote = unavailableStore[[]domain.SalesRecord]{}
	}

	financial := reconciling.New[domain.FinancialSnapshot]("financial", finRemote,
		localstore.NewJSONStore[domain.FinancialSnapshot](e.local, localstore.FinancialDataKey), queue,
		reconciling.WithDirtyTracker[domain.FinancialSnapshot](e.local))
	batches := reconciling.New[[]domain.InventoryBatch]("batches", batchRemote,
		localstore.NewJSONStore[[]domain.InventoryBatch](e.local, localstore.InventoryBatchesKey), queue,
		reconciling.WithDirtyTracker[[]domain.InventoryBatch](e.local))
	sales := reconciling.New[[]domain.SalesRecord]("sales", salesRemote,
		localstore.NewJSONStore[[]domain.SalesRecord](e.local, localstore.SalesRecordsKey), queue,
		reconciling.WithDirtyTracker[[]domain.SalesRecord](e.local))

	tracker := tracking.NewTracker(userID, financial, e.local,
		tracking.WithClock(func() time.Time { return now }),
		tracking.WithIDGenerator(sequentialIDs()),
	)
	ledger := selling.NewLedger(userID, batches, sales, e.local,
		selling.WithClock(func() time.Time { return now }),
		selling.WithIDGenerator(sequentialIDs()),
	)

	e.app = cli.New(tracker, ledger, queue,
		cli.WithOutput(e.out, e.errOut),
		cli.WithRenderer(cli.PlainText),
	)
	return e
}

func (e *env) exec(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	e.out.Reset()
	e.errOut.Reset()

	top := flag.NewFlagSet("fintrak", flag.ContinueOnError)
	commander := subcommands.NewCommander(top, "fintrak")
	commander.Output = e.out
	commander.Error = e.errOut
	e.app.Register(commander)

	require.NoError(t, top.Parse(args))
	return commander.Execute(context.Background())
}

func (e *env) remoteSnapshot(t *testing.T) domain.FinancialSnapshot {
	t.Helper()
	var s domain.FinancialSnapshot
	require.NoError(t, localstore.GetJSON(context.Background(), e.remote, fmt.Sprintf(localstore.FinancialDataKey, userID), &s))
	return s
}

func (e *env) remoteBatches(t *testing.T) []domain.InventoryBatch {
	t.Helper()
	var b []domain.InventoryBatch
	require.NoError(t, localstore.GetJSON(context.Background(), e.remote, fmt.Sprintf(localstore.InventoryBatchesKey, userID), &b))
	return b
}

func TestCashAlteraApenasDenominacoesInformadas(t *testing.T) {
	e := newEnv(t, false)

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "cash", "-notes50", "2", "-coins1", "3"))
	assert.Contains(t, e.out.String(), "$103.00")

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "cash", "-notes20", "1", "-coins2", "-4"))
	assert.Contains(t, e.out.String(), "$123.00")

	remote := e.remoteSnapshot(t)
	assert.Equal(t, 2, remote.Notes50)
	assert.Equal(t, 1, remote.Notes20)
	assert.Equal(t, 3, remote.Coins1)
	assert.Equal(t, 0, remote.Coins2)
}

func TestRowCicloCompleto(t *testing.T) {
	e := newEnv(t, false)

	require.Equal(t, subcommands.ExitSuccess,
		e.exec(t, "row", "-w", "1", "-k", "income", "-name", "Vendas", "-amount", "150", "add"))
	assert.Contains(t, e.out.String(), "row_1")

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "balances"))
	assert.Contains(t, e.out.String(), "$150.00")

	require.Equal(t, subcommands.ExitSuccess,
		e.exec(t, "row", "-w", "1", "-k", "income", "-id", "row_1", "-amount", "200", "update"))
	rows := e.remoteSnapshot(t).Week1IncomeRows
	require.Len(t, rows, 1)
	assert.Equal(t, "Vendas", rows[0].Name)
	assert.Equal(t, 200.0, rows[0].Amount)

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "row", "-w", "1", "-k", "income", "list"))
	assert.Contains(t, e.out.String(), "$200.00")

	require.Equal(t, subcommands.ExitSuccess,
		e.exec(t, "row", "-w", "1", "-k", "income", "-id", "row_1", "remove"))
	assert.Empty(t, e.remoteSnapshot(t).Week1IncomeRows)
}

func TestRowBancoIgnoraTipo(t *testing.T) {
	e := newEnv(t, false)

	require.Equal(t, subcommands.ExitSuccess,
		e.exec(t, "row", "-w", "bank", "-k", "qualquer", "-name", "Conta", "-amount", "1000", "add"))
	assert.Len(t, e.remoteSnapshot(t).BankAccountRows, 1)
}

func TestRowErrosDeUso(t *testing.T) {
	e := newEnv(t, false)

	assert.Equal(t, subcommands.ExitUsageError, e.exec(t, "row", "-w", "1", "-k", "outro", "add"))
	assert.Equal(t, subcommands.ExitUsageError, e.exec(t, "row", "-w", "1", "mover"))
	assert.Equal(t, subcommands.ExitUsageError, e.exec(t, "row", "-w", "1", "remove"))

	assert.Equal(t, subcommands.ExitFailure,
		e.exec(t, "row", "-w", "1", "-name", "Negativo", "-amount", "-5", "add"))
	assert.Contains(t, e.errOut.String(), "Erro:")
}

func TestPresetLancaAtalho(t *testing.T) {
	e := newEnv(t, false)

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "preset"))
	assert.Contains(t, e.out.String(), "Centrelink")

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "preset", "-w", "2", "Rent"))
	rows := e.remoteSnapshot(t).Week2ExpenseRows
	require.Len(t, rows, 1)
	assert.Equal(t, 1300.0, rows[0].Amount)

	assert.Equal(t, subcommands.ExitFailure, e.exec(t, "preset", "Inexistente"))
	assert.Equal(t, subcommands.ExitUsageError, e.exec(t, "preset", "-w", "bank", "Rent"))
}

func TestWeekAdicionaERemove(t *testing.T) {
	e := newEnv(t, false)

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "week", "add"))
	assert.Contains(t, e.out.String(), "Week 3")
	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "week", "add"))

	weeks := e.remoteSnapshot(t).AdditionalWeeks
	require.Len(t, weeks, 2)

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "week", "remove", weeks[0].ID))
	weeks = e.remoteSnapshot(t).AdditionalWeeks
	require.Len(t, weeks, 1)
	assert.Equal(t, 3, weeks[0].WeekNumber)

	assert.Equal(t, subcommands.ExitUsageError, e.exec(t, "week", "remove"))
}

func TestBatchESaleAtualizamEstoque(t *testing.T) {
	e := newEnv(t, false)

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "batch",
		"-name", "Lote A", "-product", "Caneca", "-qty", "10", "-cost", "5", "-projected", "12", "create"))
	batches := e.remoteBatches(t)
	require.Len(t, batches, 1)
	batchID := batches[0].ID

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "sale",
		"-batch", batchID, "-qty", "3", "-total", "30", "-paid", "20", "record"))
	assert.Contains(t, e.out.String(), "$10.00")

	batches = e.remoteBatches(t)
	assert.Equal(t, 7, batches[0].QtyInStock)
	assert.Equal(t, 3, batches[0].QtySold)

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "summary"))
	assert.Contains(t, e.out.String(), "$15.00")

	assert.Equal(t, subcommands.ExitFailure, e.exec(t, "sale", "-batch", batchID, "-qty", "8", "-total", "80", "record"))

	assert.Equal(t, subcommands.ExitFailure, e.exec(t, "batch", "-id", batchID, "delete"))
	assert.Contains(t, e.errOut.String(), "vendas")

	var sales []domain.SalesRecord
	require.NoError(t, localstore.GetJSON(context.Background(), e.remote, fmt.Sprintf(localstore.SalesRecordsKey, batchID), &sales))
	require.Len(t, sales, 1)

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "sale", "-id", sales[0].ID, "delete"))
	assert.Equal(t, 10, e.remoteBatches(t)[0].QtyInStock)

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "batch", "-id", batchID, "delete"))
	assert.Empty(t, e.remoteBatches(t))
}

func TestBatchUpdateAlteraApenasCamposInformados(t *testing.T) {
	e := newEnv(t, false)

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "batch",
		"-name", "Lote A", "-product", "Caneca", "-qty", "10", "-cost", "5", "create"))
	batchID := e.remoteBatches(t)[0].ID

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "batch", "-id", batchID, "-cost", "6", "update"))
	batch := e.remoteBatches(t)[0]
	assert.Equal(t, "Lote A", batch.BatchName)
	assert.Equal(t, 6.0, batch.CostPerUnit)
	assert.Equal(t, 10, batch.QtyInStock)
}

func TestOfflineMantemAlteracoesPendentes(t *testing.T) {
	e := newEnv(t, true)

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "cash", "-notes5", "1"))
	assert.Contains(t, e.errOut.String(), "Aviso: 1 alterações")

	dirty, err := e.local.IsDirty(context.Background(), "financial:"+userID)
	require.NoError(t, err)
	assert.True(t, dirty)

	// a próxima execução parte da cópia local
	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "cash"))
	assert.Contains(t, e.out.String(), "$5.00")
}

func TestClearExigeConfirmacao(t *testing.T) {
	e := newEnv(t, false)

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "cash", "-notes100", "1"))
	assert.Equal(t, subcommands.ExitUsageError, e.exec(t, "clear"))

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "clear", "-force"))
	_, err := e.remote.Get(context.Background(), fmt.Sprintf(localstore.FinancialDataKey, userID))
	assert.Error(t, err)
}

func TestSyncInformaPendencias(t *testing.T) {
	e := newEnv(t, false)

	require.Equal(t, subcommands.ExitSuccess, e.exec(t, "sync"))
	assert.Contains(t, e.out.String(), "0 alterações pendentes")

	assert.Equal(t, subcommands.ExitUsageError, e.exec(t, "sync", "-watch"))
}

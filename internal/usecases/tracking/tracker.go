// Package tracking mantém o snapshot financeiro do usuário em memória.
// Toda alteração passa pelo Tracker, que grava o snapshot e espelha os
// saldos derivados no cache local.
package tracking

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/fintrak-api/infrastructure/localstore"
	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/internal/usecases/cashing"
	"github.com/vfg2006/fintrak-api/internal/usecases/ledgering"
	"github.com/vfg2006/fintrak-api/pkg/log"
	"github.com/vfg2006/fintrak-api/pkg/utils"
)

// SnapshotStore persiste o snapshot de um usuário
type SnapshotStore interface {
	Load(ctx context.Context, userID string) domain.FinancialSnapshot
	Save(ctx context.Context, userID string, snapshot domain.FinancialSnapshot) error
	Delete(ctx context.Context, userID string) error
}

type Tracker struct {
	mu       sync.RWMutex
	userID   string
	store    SnapshotStore
	mirror   localstore.KV
	now      func() time.Time
	newID    func(prefix string) (string, error)
	snapshot domain.FinancialSnapshot
}

type Option func(*Tracker)

func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func WithIDGenerator(newID func(prefix string) (string, error)) Option {
	return func(t *Tracker) {
		t.newID = newID
	}
}

// NewTracker cria o tracker. mirror pode ser nil quando não há cache local.
func NewTracker(userID string, store SnapshotStore, mirror localstore.KV, opts ...Option) *Tracker {
	t := &Tracker{
		userID:   userID,
		store:    store,
		mirror:   mirror,
		now:      time.Now,
		newID:    utils.NewID,
		snapshot: domain.FinancialSnapshot{UserID: userID},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Load(ctx context.Context) {
	snapshot := t.store.Load(ctx, t.userID)
	snapshot.UserID = t.userID
	// documentos vindos de fora podem ter lacunas na numeração
	ledgering.Renumber(&snapshot)

	t.mu.Lock()
	t.snapshot = snapshot
	t.mu.Unlock()
}

// Snapshot retorna uma cópia do estado atual
func (t *Tracker) Snapshot() domain.FinancialSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshot.Clone()
}

// View recalcula caixa e cascata de saldos
func (t *Tracker) View() domain.LedgerView {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return ledgering.Cascade(&t.snapshot)
}

// UpdateCash substitui as contagens do caixa; negativos viram zero
func (t *Tracker) UpdateCash(ctx context.Context, d domain.Denominations) error {
	return t.mutate(ctx, func(s *domain.FinancialSnapshot) error {
		s.Denominations = cashing.Clamp(d)
		return nil
	})
}

func (t *Tracker) AddRow(ctx context.Context, ref ledgering.RowSetRef, name string, amount float64, date *string) (domain.FinancialRow, error) {
	id, err := t.newID(utils.PrefixRow)
	if err != nil {
		return domain.FinancialRow{}, err
	}

	row := domain.FinancialRow{ID: id, Name: strings.TrimSpace(name), Amount: amount, Date: date}
	err = t.mutate(ctx, func(s *domain.FinancialSnapshot) error {
		return ledgering.AddRow(s, ref, row)
	})
	if err != nil {
		return domain.FinancialRow{}, err
	}
	return row, nil
}

func (t *Tracker) UpdateRow(ctx context.Context, ref ledgering.RowSetRef, row domain.FinancialRow) error {
	return t.mutate(ctx, func(s *domain.FinancialSnapshot) error {
		return ledgering.UpdateRow(s, ref, row)
	})
}

func (t *Tracker) RemoveRow(ctx context.Context, ref ledgering.RowSetRef, rowID string) error {
	return t.mutate(ctx, func(s *domain.FinancialSnapshot) error {
		return ledgering.RemoveRow(s, ref, rowID)
	})
}

// ApplyPreset lança um atalho rápido na semana informada
func (t *Tracker) ApplyPreset(ctx context.Context, week, name string, amount float64) (domain.FinancialRow, error) {
	preset, err := ledgering.FindPreset(name, amount)
	if err != nil {
		return domain.FinancialRow{}, err
	}

	id, err := t.newID(utils.PrefixRow)
	if err != nil {
		return domain.FinancialRow{}, err
	}

	var row domain.FinancialRow
	err = t.mutate(ctx, func(s *domain.FinancialSnapshot) error {
		var err error
		row, err = ledgering.ApplyPreset(s, week, preset, id)
		return err
	})
	return row, err
}

func (t *Tracker) AddWeek(ctx context.Context) (domain.AdditionalWeek, error) {
	id, err := t.newID(utils.PrefixWeek)
	if err != nil {
		return domain.AdditionalWeek{}, err
	}

	var week domain.AdditionalWeek
	err = t.mutate(ctx, func(s *domain.FinancialSnapshot) error {
		week = ledgering.AddWeek(s, id)
		return nil
	})
	return week, err
}

func (t *Tracker) RemoveWeek(ctx context.Context, id string) error {
	return t.mutate(ctx, func(s *domain.FinancialSnapshot) error {
		return ledgering.RemoveWeek(s, id)
	})
}

// Clear apaga o snapshot local e remoto e zera os saldos espelhados
func (t *Tracker) Clear(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Delete(ctx, t.userID); err != nil {
		return err
	}
	t.snapshot = domain.FinancialSnapshot{UserID: t.userID}

	if t.mirror != nil {
		for _, key := range []string{
			localstore.CashOnHandKey,
			localstore.Week1BalanceKey,
			localstore.AdditionalBalanceKey,
			localstore.LastUpdateKey,
		} {
			if err := t.mirror.Delete(ctx, key); err != nil {
				log.ForContext(ctx).WithField("key", key).WithError(err).Warn("Erro ao limpar chave auxiliar")
			}
		}
	}

	log.ForContext(ctx).WithField("user_id", t.userID).Info("Dados financeiros apagados")
	return nil
}

// mutate aplica fn em uma cópia e só publica o novo estado após gravar localmente
func (t *Tracker) mutate(ctx context.Context, fn func(s *domain.FinancialSnapshot) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.snapshot.Clone()
	if err := fn(&next); err != nil {
		return err
	}

	now := t.now().UTC()
	next.UpdatedAt = &now

	if err := t.store.Save(ctx, t.userID, next); err != nil {
		return err
	}
	t.snapshot = next

	t.mirrorBalances(ctx, now)
	return nil
}

// mirrorBalances grava os saldos derivados; falhas só são registradas
func (t *Tracker) mirrorBalances(ctx context.Context, now time.Time) {
	if t.mirror == nil {
		return
	}

	view := ledgering.Cascade(&t.snapshot)
	week1, _ := ledgering.BalanceOf(view, ledgering.Week1ID)

	values := map[string]any{
		localstore.CashOnHandKey:        view.Cash.Total,
		localstore.Week1BalanceKey:      week1.Closing,
		localstore.AdditionalBalanceKey: ledgering.AdditionalBalances(view),
		localstore.LastUpdateKey:        now.Format(time.RFC3339),
	}
	for key, value := range values {
		if err := localstore.PutJSON(ctx, t.mirror, key, value); err != nil {
			log.ForContext(ctx).WithField("key", key).WithError(err).Warn("Erro ao espelhar saldo no cache local")
		}
	}
}

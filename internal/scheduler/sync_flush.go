// Package scheduler contém os serviços de agendamento em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/fintrak-api/internal/config"
	"github.com/vfg2006/fintrak-api/internal/usecases/reconciling"
	"github.com/vfg2006/fintrak-api/pkg/log"
)

// Drainer é a fila de escritas remotas drenada pelo agendador
type Drainer interface {
	Drain(ctx context.Context) reconciling.DrainResult
	Flush(ctx context.Context) reconciling.DrainResult
	Len() int
}

type SyncFlushConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SyncStatus é o estado exposto pelo comando sync
type SyncStatus struct {
	Running         bool
	Pending         int
	LastStartedAt   time.Time
	LastCompletedAt time.Time
	LastResult      reconciling.DrainResult
}

// SyncFlushService drena periodicamente as escritas cuja janela expirou
type SyncFlushService struct {
	scheduler           *gocron.Scheduler
	queue               Drainer
	config              SyncFlushConfig
	started             bool
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          reconciling.DrainResult
}

func NewSyncFlushService(queue Drainer, cfg config.Sync) *SyncFlushService {
	flushConfig := SyncFlushConfig{
		CronSchedule: cfg.CronSchedule,
		SyncEnabled:  cfg.Enabled,
	}

	log.L.WithField("key", flushConfig.CronSchedule).Debug("Configuração do agendador de sincronização carregada")

	return &SyncFlushService{
		scheduler: gocron.NewScheduler(time.Local),
		queue:     queue,
		config:    flushConfig,
	}
}

func (s *SyncFlushService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Sincronização em segundo plano desabilitada por configuração")
		return nil
	}

	// expressões com seis campos incluem os segundos
	_, err := s.scheduler.CronWithSeconds(s.config.CronSchedule).SingletonMode().Do(func() {
		s.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização: %w", err)
	}

	s.scheduler.StartAsync()
	s.started = true

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()

	return nil
}

// Stop para o agendador e envia tudo o que ainda está na fila
func (s *SyncFlushService) Stop(ctx context.Context) reconciling.DrainResult {
	if s.started {
		s.scheduler.Stop()
		s.started = false
	}

	result := s.queue.Flush(ctx)
	if result.Failed > 0 {
		log.ForContext(ctx).Warnf("%d escritas não chegaram ao servidor, ficam pendentes no cache local", result.Failed)
	}
	return result
}

// RunOnce drena a fila uma vez; execuções sobrepostas são ignoradas
func (s *SyncFlushService) RunOnce(ctx context.Context) reconciling.DrainResult {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Debug("Sincronização já está em execução")
		return reconciling.DrainResult{}
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	result := s.queue.Drain(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastResult = result
	s.syncMutex.Unlock()

	if result.Written > 0 || result.Failed > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"written": result.Written,
			"failed":  result.Failed,
		}).Info("Fila de sincronização drenada")
	}
	return result
}

func (s *SyncFlushService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return SyncStatus{
		Running:         s.syncRunning,
		Pending:         s.queue.Len(),
		LastStartedAt:   s.lastSyncStartedAt,
		LastCompletedAt: s.lastSyncCompletedAt,
		LastResult:      s.lastResult,
	}
}

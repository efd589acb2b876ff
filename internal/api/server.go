package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/fintrak-api/internal/api/handler"
	"github.com/vfg2006/fintrak-api/internal/api/handler/router"
	"github.com/vfg2006/fintrak-api/internal/config"
	"github.com/vfg2006/fintrak-api/internal/usecases/authenticating"
	"github.com/vfg2006/fintrak-api/internal/usecases/persisting"
	"github.com/vfg2006/fintrak-api/pkg/log"
	"github.com/vfg2006/fintrak-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	onShutdown []func() error
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	FinancialData persisting.FinancialDataService
	Inventory     persisting.InventoryService
	Sales         persisting.SalesService
	DB            handler.Pinger
}

func New(cfg *config.Config, services Services, onShutdown ...func() error) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           NewHandler(services),
			ReadHeaderTimeout: 2 * time.Second,
		},
		onShutdown: onShutdown,
	}
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.FinancialData(services.FinancialData)...),
		router.WithRoutes(handler.InventoryBatches(services.Inventory)...),
		router.WithRoutes(handler.SalesRecords(services.Sales)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown para o HTTP e depois libera os recursos registrados
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	for _, fn := range s.onShutdown {
		if err := fn(); err != nil {
			log.L.WithError(err).Warn("Erro ao liberar recurso no desligamento")
		}
	}

	return nil
}

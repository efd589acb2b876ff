package main

import (
	"context"

	"github.com/vfg2006/fintrak-api/infrastructure/database/postgres"
	"github.com/vfg2006/fintrak-api/infrastructure/messaging"
	"github.com/vfg2006/fintrak-api/infrastructure/repository"
	"github.com/vfg2006/fintrak-api/internal/api"
	"github.com/vfg2006/fintrak-api/internal/config"
	"github.com/vfg2006/fintrak-api/internal/usecases/authenticating"
	"github.com/vfg2006/fintrak-api/internal/usecases/persisting"
	"github.com/vfg2006/fintrak-api/pkg/log"
	"github.com/vfg2006/fintrak-api/pkg/money"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	money.SetCurrency(cfg.App.Currency)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.RunMigrations(pgConn); err != nil {
			log.L.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		log.L.Info("Migrações aplicadas com sucesso")
	}

	publisher, err := messaging.New(cfg.Events)
	if err != nil {
		log.L.WithError(err).Warn("Mensageria indisponível, eventos serão descartados")
		publisher = messaging.NoopPublisher{}
	}

	authenticator, err := authenticating.NewService(cfg.Auth)
	if err != nil {
		log.L.Fatal(err)
	}

	service := persisting.NewService(
		repository.NewFinancialDataRepository(pgConn),
		repository.NewInventoryBatchRepository(pgConn),
		repository.NewSalesRecordRepository(pgConn),
		publisher,
	)

	server := api.New(cfg, api.Services{
		Authenticator: authenticator,
		FinancialData: service,
		Inventory:     service,
		Sales:         service,
		DB:            pgConn,
	}, publisher.Close)

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

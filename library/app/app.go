package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/config"
	"github.com/Astemirdum/library-lending/library/internal/events"
	"github.com/Astemirdum/library-lending/library/internal/handler"
	"github.com/Astemirdum/library-lending/library/internal/repository"
	"github.com/Astemirdum/library-lending/library/internal/server"
	"github.com/Astemirdum/library-lending/library/internal/service"
	"github.com/Astemirdum/library-lending/library/migrations"
	"github.com/Astemirdum/library-lending/pkg/auth"
	"github.com/Astemirdum/library-lending/pkg/kafka"
	"github.com/Astemirdum/library-lending/pkg/logger"
	"github.com/Astemirdum/library-lending/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library")
	defer func() { _ = log.Sync() }()

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repository")
	}

	publisher := events.NewNopPublisher()
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return errors.Wrap(err, "kafka.NewProducer")
		}
		defer func() {
			if err := producer.Close(); err != nil {
				log.Warn("kafka producer close", zap.Error(err))
			}
		}()
		publisher = events.NewKafkaPublisher(producer, cfg.Kafka.Topic, log)
		log.Info("lending events enabled", zap.Strings("brokers", cfg.Kafka.Addrs))
	}

	issuer := auth.NewIssuer(cfg.JWT)
	svc := service.NewService(repo, issuer, publisher, service.Options{
		AllowArchivedBorrow: cfg.Ledger.AllowArchived,
		BcryptCost:          cfg.JWT.BcryptCost,
	}, log)

	h := handler.New(svc, svc, svc, issuer, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ", zap.String("addr", srv.Addr()))

	runErr := make(chan error, 1)
	go func() {
		runErr <- srv.Run()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case termSig := <-sig:
		log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	case err := <-runErr:
		if err != nil {
			return errors.Wrap(err, "server run")
		}
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}

// Migrate runs a single goose command against the configured database.
func Migrate(cfg *config.Config, command string) error {
	log := logger.NewLogger(cfg.Log, "migrate")
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	db, err := postgres.Connect(ctx, &cfg.Database)
	if err != nil {
		return errors.Wrap(err, "db connect")
	}
	defer db.Close()

	if err := postgres.Migrate(db, migrations.MigrationFiles, command); err != nil {
		return err
	}
	log.Info("migration done", zap.String("command", command))
	return nil
}

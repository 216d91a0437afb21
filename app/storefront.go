package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/prency-hangers/rental-service/config"
	"github.com/prency-hangers/rental-service/internal/handler"
	"github.com/prency-hangers/rental-service/internal/repository"
	"github.com/prency-hangers/rental-service/internal/server"
	"github.com/prency-hangers/rental-service/internal/service"
	"github.com/prency-hangers/rental-service/migrations"
	"github.com/prency-hangers/rental-service/pkg/auth0"
	"github.com/prency-hangers/rental-service/pkg/kafka"
	"github.com/prency-hangers/rental-service/pkg/logger"
	"github.com/prency-hangers/rental-service/pkg/postgres"
)

// Run starts the storefront API: HTTP server, database, and the producer
// feeding the notifier.
func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "storefront")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	svc := service.NewService(repo, service.NewEnqueuer(producer), log)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter(auth0.MiddleWareWithConfig(cfg.Auth0)))
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	_ = producer.Close()
	db.Close()
	log.Info("Graceful shutdown finished")
}

package app

import (
	"context"
	"net"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ophelieturenne/cloud-bookshelf/config"
	"github.com/ophelieturenne/cloud-bookshelf/internal/handler"
	"github.com/ophelieturenne/cloud-bookshelf/internal/repository"
	"github.com/ophelieturenne/cloud-bookshelf/internal/server"
	"github.com/ophelieturenne/cloud-bookshelf/internal/service"
	"github.com/ophelieturenne/cloud-bookshelf/internal/worker"
	"github.com/ophelieturenne/cloud-bookshelf/migrations"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/auth"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/kafka"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/logger"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "bookshelf")
	if cfg.Auth.Secret != "" {
		auth.JWTKey = []byte(cfg.Auth.Secret)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
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
	svc := service.NewService(repo, producer, log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.NotificationConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	sweeper := worker.NewSweeper(svc, cfg.Sweeper.Interval, log)

	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		return sweeper.Run(gCtx)
	})
	g.Go(func() error {
		return kafka.Consume(gCtx, consumer, handler.NewConsumer(svc.SaveNotification, log), kafka.NotificationTopic)
	})
	g.Go(func() error {
		<-gCtx.Done()

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Error("shutdown", zap.Error(err))
	}
	if err := consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}

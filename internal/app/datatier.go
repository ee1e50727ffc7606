package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/SarAlbN1/AS-Catalogo-NET/internal/cfg"
	v1Grpc "github.com/SarAlbN1/AS-Catalogo-NET/internal/delivery/v1/grpc"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/infrastructure/kafka"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/repository/pgdb"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/repository/redis"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/usecase"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/clients"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/closer"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/postgres"
	"github.com/jimlawless/whereami"
)

const shutdownTimeout = 10 * time.Second

// RunDataTier поднимает слой данных: gRPC-сервис каталога,
// продюсер событий и кэш на чтение.
func RunDataTier(cfg *config.Config, log logger.Logger) error {
	cl := closer.NewCloser(0)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = redisClient.Ping(redisCtx)
	redisCancel()
	if err != nil {
		log.Errorf(err, "failed to connect to redis")
		return e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	if err := kafka.EnsureTopic(cfg.Kafka, 10*time.Second); err != nil {
		log.Errorf(err, "failed to ensure kafka topic")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		return e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	productRepo := pgdb.NewProductRepo(db.Pool)
	catalogRepo := pgdb.NewCatalogRepo(db.Pool)
	cacheRepo := redis.NewCacheRepo(redisClient, cfg.Redis, log)

	productUC := usecase.NewProductUC(productRepo, catalogRepo, db.Pool, producer, cacheRepo, log)

	grpcSrv := v1Grpc.NewGRPCServer(cfg.Grpc)
	grpcSrv.RegisterServices(productUC, log)

	grpcErrCh := make(chan error, 1)
	go func() {
		log.Infof("gRPC server starting on %s:%s", cfg.Grpc.NetworkMode, cfg.Grpc.Port)
		if err := grpcSrv.Start(); err != nil {
			log.Errorf(err, "gRPC server failed")
			grpcErrCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-grpcErrCh:
		log.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := grpcSrv.Stop(shutdownCtx); err != nil {
		log.Warnf("gRPC server shutdown: %v", err)
	} else {
		log.Infof("gRPC server stopped")
	}

	if err := cl.Close(shutdownCtx); err != nil {
		log.Warnf("resource shutdown: %v", err)
	}

	log.Infof("data tier shutdown complete")
	return appErr
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		log.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

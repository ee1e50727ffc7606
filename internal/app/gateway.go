package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	config "github.com/SarAlbN1/AS-Catalogo-NET/internal/cfg"
	v1Http "github.com/SarAlbN1/AS-Catalogo-NET/internal/delivery/v1/http"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/gateway"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/repository/pgdb"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/closer"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// RunGateway поднимает REST-шлюз. Источник данных выбирается конфигурацией:
// удаленный слой данных по gRPC либо собственная БД шлюза.
func RunGateway(cfg *config.Config, log logger.Logger) error {
	cl := closer.NewCloser(0)

	var gw gateway.ProductGateway
	if cfg.Gateway.UseGrpc {
		grpcGw, err := gateway.NewGrpcClient(log, cfg.Gateway)
		if err != nil {
			log.Errorf(err, "failed to initialize data tier client")
			return e.Wrap(whereami.WhereAmI(), err)
		}
		cl.Add(func(ctx context.Context) error {
			return grpcGw.Close()
		})
		gw = grpcGw
		log.Infof("gateway mode: grpc, data tier: %s", cfg.Gateway.DataTierAddr)
	} else {
		db, err := initPGDB(log, cfg)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		cl.Add(func(ctx context.Context) error {
			db.Close()
			return nil
		})

		gw = gateway.NewLocalGateway(
			pgdb.NewProductRepo(db.Pool),
			pgdb.NewCatalogRepo(db.Pool),
			db.Pool,
			log,
		)
		log.Infof("gateway mode: local database")
	}

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(gw)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		log.Warnf("HTTP server shutdown: %v", err)
	} else {
		log.Infof("HTTP server stopped")
	}

	if err := cl.Close(shutdownCtx); err != nil {
		log.Warnf("resource shutdown: %v", err)
	}

	log.Infof("gateway shutdown complete")
	return appErr
}

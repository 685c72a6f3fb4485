package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"talkerbase/internal/config"
	"talkerbase/internal/domain/talker"
	"talkerbase/internal/infrastructure/storage/file"
	"talkerbase/internal/infrastructure/storage/postgres"
	"talkerbase/internal/infrastructure/storage/sqlite"
	"talkerbase/internal/app/server/api"
	"talkerbase/internal/utils/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	repo, cleanup, err := newRepository(conf, log)
	if err != nil {
		log.Error("store init failed", "driver", conf.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	srv := &http.Server{
		Addr:    conf.Server.RunAddress,
		Handler: api.New(repo, log),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server listening", "address", conf.Server.RunAddress, "driver", conf.Store.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
	log.Info("server stopped")
}

func newRepository(conf *config.Config, log *slog.Logger) (talker.Repository, func(), error) {
	switch conf.Store.Driver {
	case config.DriverSQLite:
		store, err := sqlite.New(conf.Store.Path, log)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case config.DriverPostgres:
		store, err := postgres.New(conf, log)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return file.New(conf.Store.Path, log), func() {}, nil
	}
}

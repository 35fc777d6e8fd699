package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"multivendor/internal/config"
	"multivendor/internal/database"
	"multivendor/internal/handlers"
	"multivendor/internal/logger"
	"multivendor/internal/models"
	"multivendor/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}
	cfg := config.AppEnv

	if err := logger.Init(cfg.LogLevel, cfg.LogJSON); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handle, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "store setup failed", logger.ErrorF(err))
	}
	defer closeStore()

	gin.SetMode(cfg.GinMode)
	r := handlers.NewRouter(handlers.Deps{Store: handle, Config: cfg})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "server listening",
			logger.String("addr", srv.Addr),
			logger.Bool("store_available", handle.Available()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info(context.Background(), "shutdown signal received")
	case err := <-errCh:
		logger.Error(context.Background(), "server error", logger.ErrorF(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "server shutdown failed", logger.ErrorF(err))
	}
	logger.Info(shutdownCtx, "server stopped")
}

// openStore builds a store when both store variables are set. A server that is
// down at start-up only logs a warning: the handle stays connected and its
// errors surface per request while the driver reconnects.
func openStore(ctx context.Context, cfg config.Config) (store.Handle, func(), error) {
	noop := func() {}

	if !cfg.StoreConfigured() {
		logger.Warn(ctx, "DATABASE_URL or DATABASE_NAME not set, serving sample data",
			logger.Bool("database_url_set", cfg.DatabaseURLSet()),
			logger.Bool("database_name_set", cfg.DatabaseNameSet()),
		)
		return store.Unavailable(), noop, nil
	}

	client, err := database.Connect(ctx, cfg.DatabaseURL, cfg.StoreConnectTimeout, cfg.StoreTimeout)
	if err != nil {
		return store.Unavailable(), noop, err
	}

	db := client.Database(cfg.DatabaseName)
	collections := store.DefaultCollections()

	if err := database.Ping(ctx, client, cfg.StoreConnectTimeout); err != nil {
		logger.Warn(ctx, "MongoDB unreachable at start-up, indexes skipped",
			logger.String("database", db.Name()),
			logger.ErrorF(err),
		)
	} else {
		logger.Info(ctx, "MongoDB connected", logger.String("database", db.Name()))
		ensureIndexes(ctx, db, collections)
	}

	return store.Connected(store.NewMongo(db, collections)), func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error(disconnectCtx, "store disconnect failed", logger.ErrorF(err))
		}
	}, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, collections store.Collections) {
	steps := []struct {
		kind   models.Kind
		ensure func(context.Context, *mongo.Database, string) error
	}{
		{models.KindProduct, database.EnsureProductIndexes},
		{models.KindNewsletter, database.EnsureNewsletterIndexes},
		{models.KindVendorApplication, database.EnsureVendorApplicationIndexes},
	}

	for _, step := range steps {
		name, err := collections.Name(step.kind)
		if err != nil {
			logger.Warn(ctx, "index skipped", logger.ErrorF(err))
			continue
		}
		// failures are logged inside and never block start-up
		_ = step.ensure(ctx, db, name)
	}
}

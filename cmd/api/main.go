package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/threadline-co/threadline-backend/api/routes"
	cartsvc "github.com/threadline-co/threadline-backend/internal/cart"
	"github.com/threadline-co/threadline-backend/internal/catalog"
	checkoutsvc "github.com/threadline-co/threadline-backend/internal/checkout"
	sessionsvc "github.com/threadline-co/threadline-backend/internal/session"
	"github.com/threadline-co/threadline-backend/internal/storage"
	"github.com/threadline-co/threadline-backend/pkg/config"
	"github.com/threadline-co/threadline-backend/pkg/db"
	"github.com/threadline-co/threadline-backend/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap storage", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing storage", err)
		}
	}()

	provider, err := catalog.NewSeededProvider()
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog", err)
		os.Exit(1)
	}

	snapshots := storage.NewRepository(dbClient.DB())

	cartService, err := cartsvc.NewService(snapshots)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	sessionService, err := sessionsvc.NewService(snapshots)
	if err != nil {
		logg.Error(context.Background(), "failed to create session service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Cart:    cartService,
		Session: sessionService,
		Config:  cfg.Checkout,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, provider, cartService, sessionService, checkoutService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

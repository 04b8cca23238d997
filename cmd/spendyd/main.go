package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/spendy/ledger/internal/api"
	"github.com/spendy/ledger/internal/core/ports"
	"github.com/spendy/ledger/internal/core/service"
	"github.com/spendy/ledger/internal/infrastructure/config"
	"github.com/spendy/ledger/internal/infrastructure/db"
	"github.com/spendy/ledger/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load .env file for local development (ignored when absent)
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: "spendyd"})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "spendyd",
	})

	// --- Storage ---
	store, err := db.Open(ctx, cfg.Store, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("failed to open key-value store")
	}
	defer store.Close()

	// --- Services ---
	var passwords ports.PasswordPolicy = service.PlaintextPasswords{}
	if cfg.Auth.HashPasswords {
		passwords = service.BcryptPasswords{}
	}
	accounts := service.NewAccountStore(store, passwords, log)
	sessions := service.NewSessionManager(accounts, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	if err := sessions.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to restore session")
	}
	categories := service.NewCategoryRegistry(store)
	ledger := service.NewLedgerService(service.NewLedgerStore(store), categories, time.Local, log)

	// --- Router ---
	router := api.NewRouter(api.Dependencies{
		Sessions:   sessions,
		Ledger:     ledger,
		Categories: categories,
		Store:      store,
		Backend:    cfg.Store.Backend,
		JWTSecret:  cfg.Auth.JWTSecret,
		Log:        log,

		AuthRateLimit: cfg.Auth.RateLimit,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info().Msg("server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		store.Close()
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}

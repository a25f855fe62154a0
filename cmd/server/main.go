/*
main.go - HTTP server for the cash and calories calculators

STARTUP SEQUENCE:
  1. Parse flags / environment (config package)
  2. Build the zap logger
  3. Open the SQLite store, one ledger per calculator
  4. Build the calculators and the router
  5. Serve until SIGINT/SIGTERM, then shut down gracefully

EXAMPLES:
  ./server --port=3000 --cash-limit=1500 --lang=ru
  CASH_LIMIT=500 LOG_LEVEL=debug ./server
*/
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/warp/limit-calculator/api"
	"github.com/warp/limit-calculator/calories"
	"github.com/warp/limit-calculator/cash"
	"github.com/warp/limit-calculator/config"
	"github.com/warp/limit-calculator/store/sqlite"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.String("db", cfg.DBPath), zap.Error(err))
	}
	defer store.Close()

	if existing, err := store.Ledgers(context.Background()); err != nil {
		logger.Fatal("Failed to read ledgers", zap.Error(err))
	} else if len(existing) > 0 {
		// Totals for today are not rebuilt from these.
		logger.Warn("Database already holds records", zap.Strings("ledgers", existing))
	}

	cashLedger := store.Ledger(string(api.KindCash))
	caloriesLedger := store.Ledger(string(api.KindCalories))

	cashCalc, err := cash.New(cfg.CashLimit,
		cash.WithStore(cashLedger),
		cash.WithLanguage(cfg.Language),
	)
	if err != nil {
		logger.Fatal("Failed to create cash calculator", zap.Error(err))
	}
	caloriesCalc, err := calories.New(cfg.CaloriesLimit,
		calories.WithStore(caloriesLedger),
		calories.WithLanguage(cfg.Language),
	)
	if err != nil {
		logger.Fatal("Failed to create calories calculator", zap.Error(err))
	}

	handler := api.NewHandler(cashCalc, caloriesCalc, logger)
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      api.NewRouter(handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("addr", server.Addr),
			zap.String("cash_limit", cfg.CashLimit.String()),
			zap.String("calories_limit", cfg.CaloriesLimit.String()),
			zap.Stringer("lang", cfg.Language),
			zap.Strings("ledgers", []string{cashLedger.Name(), caloriesLedger.Name()}),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Shutting down server", zap.Stringer("signal", sig))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("Server stopped")
}

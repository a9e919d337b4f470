package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"xyzbank/internal/app/bank"
	"xyzbank/internal/config"
	"xyzbank/internal/handler/console"
	bank_http "xyzbank/internal/handler/http/bank"
	"xyzbank/internal/repository/ledger_repo/memory"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	// Logs go to stderr so the console menu on stdout stays readable.
	zapConfig.OutputPaths = []string{"stderr"}

	appLogger, err := zapConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create zap logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()
	appLogger.Info("Banking System starting...")

	// The ledger lives in process memory for the process lifetime.
	ledger := memory.NewLedgerRepository()
	bankService := bank.NewBankService(ledger, appLogger.With(zap.String("component", "BankService")))
	appLogger.Info("Bank Service initialized.")

	ctxMain, cancelMain := context.WithCancel(context.Background())
	defer cancelMain()

	var httpServer *http.Server
	if cfg.HTTPEnabled {
		router := chi.NewRouter()
		router.Use(middleware.Logger)
		router.Use(middleware.Recoverer)
		bank_http.RegisterRoutes(router, bankService, appLogger.With(zap.String("component", "HTTPHandler")))

		httpServer = &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: router,
		}
		go func() {
			appLogger.Info("Starting HTTP server", zap.String("address", httpServer.Addr))
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLogger.Fatal("HTTP server failed", zap.Error(err))
			}
		}()
	}

	consoleUI := console.NewConsole(bankService, os.Stdin, os.Stdout, appLogger.With(zap.String("component", "Console")))
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		if err := consoleUI.Run(ctxMain); err != nil && err != context.Canceled {
			appLogger.Error("Console loop failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		appLogger.Info("Shutting down application...")
		cancelMain()
	case <-consoleDone:
		appLogger.Info("Console exited, shutting down application...")
	}

	if httpServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("HTTP server graceful shutdown failed", zap.Error(err))
		} else {
			appLogger.Info("HTTP server gracefully shut down.")
		}
	}

	appLogger.Info("Application gracefully shut down.")
}

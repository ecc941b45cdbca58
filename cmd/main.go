package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"paygate/internal/config"
	"paygate/internal/handler"
	"paygate/internal/router"
	"paygate/internal/secrets"
	"paygate/internal/stripe"
)

func main() {
	// --- Logger ---
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// --- Config ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// --- Credential store ---
	resolver, err := secrets.NewService(context.Background(), cfg.Secrets.IDPrefix)
	if err != nil {
		logger.Fatal("Failed to initialize secrets service", zap.Error(err))
	}

	// --- Handler ---
	h := handler.New(resolver, stripe.Config{
		BaseURL: cfg.Stripe.BaseURL,
		Timeout: cfg.Stripe.Timeout,
	}, logger)

	if hasArg("--serve") {
		runServer(cfg, h, logger)
		return
	}

	lambda.Start(h.Handle)
}

// runServer hosts the handler behind a local HTTP server, standing in for
// the Lambda runtime during development.
func runServer(cfg *config.Config, h *handler.Handler, logger *zap.Logger) {
	e := echo.New()
	e.HideBanner = true

	router.Setup(e, h)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info("Starting local server", zap.String("addr", addr))
		if err := e.Start(addr); err != nil {
			logger.Info("Server stopped", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func hasArg(name string) bool {
	for _, arg := range os.Args[1:] {
		if arg == name {
			return true
		}
	}
	return false
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/The-Apinke/sumpro/internal/adapters/http"
	"github.com/The-Apinke/sumpro/internal/bootstrap"
	"github.com/The-Apinke/sumpro/internal/config"
	"github.com/The-Apinke/sumpro/internal/observability/logging"
)

const serviceName = "sumpro-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := logging.Setup(serviceName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := bootstrap.New(cfg, serviceName)

	router := httpadapter.NewRouter(
		serviceName,
		app.AnalyzeUC,
		app.WidgetUC,
		app.ChatUC,
		app.Sessions,
		app.Metrics,
		cfg.APIRateLimitRPS,
		cfg.APIRateLimitBurst,
		cfg.APIMaxInFlight,
	).Handler()

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("api_listening", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("api server error: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("api_shutdown_error", "error", err)
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quranapi/quran-api/internal/database"
	"github.com/quranapi/quran-api/internal/logger"
	"github.com/quranapi/quran-api/internal/server"
	"github.com/quranapi/quran-api/pkg/config"
)

func gracefulShutdown(ctx context.Context, apiServer *http.Server, log *slog.Logger, done chan<- struct{}) {
	<-ctx.Done()
	log.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server exiting")
	close(done)
}

func main() {
	cfg := config.LoadConfig()
	log := logger.New(logger.Config{
		Environment: cfg.AppEnv,
		Level:       cfg.LogLevel,
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DBAutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			log.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	app := server.NewServer(db, cfg, log)
	defer app.Close()
	srv := app.HTTPServer()

	done := make(chan struct{})
	go gracefulShutdown(ctx, srv, log, done)

	log.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http server error", "error", err)
		stop()
	}

	<-done
}

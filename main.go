package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotel-assistant/config"
	"hotel-assistant/controllers"
	"hotel-assistant/logging"
	"hotel-assistant/routes"
	"hotel-assistant/services"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := logging.Open(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Directory: cfg.Logging.Directory,
		AddSource: true,
	}, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	store, err := buildStore(cfg.Database)
	if err != nil {
		slog.Error("store setup failed", slog.Any("error", err))
		os.Exit(1)
	}

	// one resolver for the whole process
	resolver := services.NewQueryResolver(store, services.ResolverOptions{
		Metrics:             services.MetricsOptions{PopularityConfirmedOnly: cfg.Engine.PopularityConfirmedOnly},
		HighDemandThreshold: cfg.Engine.HighDemandThreshold,
	})

	queryController := controllers.NewQueryController(resolver, cfg.Server.QueryTimeout)
	recordsController := controllers.NewRecordsController(store, cfg.Server.QueryTimeout)

	gin.SetMode(gin.ReleaseMode)
	router := routes.SetupRouter(queryController, recordsController, cfg.Server.CorsOrigins)

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting", slog.String("addr", addr), slog.String("store", cfg.Database.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", slog.Any("error", err))
		return
	}
	slog.Info("server stopped")
}

func buildStore(cfg config.DatabaseConfig) (services.Store, error) {
	if cfg.Driver == "memory" {
		slog.Warn("using in-memory sample data; nothing is persisted")
		return services.NewMemoryStore(config.SampleRoomTypes(), config.SampleReservations()), nil
	}
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connect: %w", err)
	}
	slog.Info("database connection established", slog.String("host", cfg.Host), slog.String("name", cfg.Name))
	return services.NewGormStore(db), nil
}

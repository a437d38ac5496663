package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/basecamp-gear/outfitter/internal/api"
	"github.com/basecamp-gear/outfitter/internal/config"
	"github.com/basecamp-gear/outfitter/internal/events"
	"github.com/basecamp-gear/outfitter/internal/outfit"
	"github.com/basecamp-gear/outfitter/internal/scoring"
	"github.com/basecamp-gear/outfitter/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	db, err := store.NewPostgresStore(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	// Events (optional)
	var eventsClient events.Client
	if cfg.Events.URL != "" {
		ec, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to event bus, running without events", "error", err)
		} else {
			eventsClient = ec
			defer ec.Close()
			logger.Info("connected to event bus")
		}
	}

	// Scorer
	table := weightTable(cfg.Scoring)
	if err := table.Base.Validate(); err != nil {
		logger.Error("invalid base scoring weights", "error", err)
		os.Exit(1)
	}
	scorer := scoring.NewScorer(table, logger)

	// Selector
	if cfg.Selector.Strategy != "" && cfg.Selector.Strategy != "greedy" {
		logger.Warn("unknown selector strategy, using greedy", "strategy", cfg.Selector.Strategy)
	}
	var selector outfit.Selector = outfit.NewGreedySelector(cfg.Selector.DefaultCategories)

	// Periodic catalog stats publisher
	if eventsClient != nil && cfg.Events.StatsIntervalMs > 0 {
		go publishStats(ctx, db, eventsClient, cfg.StatsInterval(), logger)
	}

	// API server
	router := api.NewRouter(db, eventsClient, scorer, selector, cfg, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsRouter := api.NewMetricsRouter()
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: metricsRouter,
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}

func weightTable(cfg config.ScoringConfig) scoring.WeightTable {
	table := scoring.DefaultWeightTable()
	table.Base = weightSet(cfg.Weights)
	if p, ok := cfg.Profiles["budget"]; ok {
		table.Budget = weightSet(p)
	}
	if p, ok := cfg.Profiles["delivery"]; ok {
		table.Delivery = weightSet(p)
	}
	if p, ok := cfg.Profiles["quality"]; ok {
		table.Quality = weightSet(p)
	}
	return table
}

func weightSet(w config.ScoringWeights) scoring.WeightSet {
	return scoring.WeightSet{
		Price:      w.Price,
		Delivery:   w.Delivery,
		Specs:      w.Specs,
		Preference: w.Preference,
		Rating:     w.Rating,
	}
}

func publishStats(ctx context.Context, db store.Store, ev events.Client, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats, err := db.GetCatalogStats(ctx)
			if err != nil {
				logger.Warn("failed to collect catalog stats", "error", err)
				continue
			}
			_ = ev.Publish(events.SubjectCatalogStats, events.CatalogStatsEvent{
				TotalProducts: stats.TotalProducts,
				ByCategory:    stats.ByCategory,
				AvgPrice:      stats.AvgPrice,
				Timestamp:     time.Now().UTC(),
			})
		}
	}
}

package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Unset all OUTFITTER_ env vars to test pure defaults
	envVars := []string{
		"OUTFITTER_PORT", "OUTFITTER_METRICS_PORT", "OUTFITTER_ADMIN_TOKEN",
		"OUTFITTER_DATABASE_URL", "OUTFITTER_EVENTS_URL", "OUTFITTER_STATS_INTERVAL_MS",
		"OUTFITTER_FRONTIER_ENABLED", "OUTFITTER_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Events.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Events.URL)
	}
	if cfg.Events.StatsIntervalMs != 60000 {
		t.Errorf("expected stats interval 60000, got %d", cfg.Events.StatsIntervalMs)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}
	if cfg.Selector.Strategy != "greedy" {
		t.Errorf("expected greedy strategy, got %s", cfg.Selector.Strategy)
	}
	if len(cfg.Selector.DefaultCategories) != 5 || cfg.Selector.DefaultCategories[0] != "jacket" {
		t.Errorf("unexpected default categories: %v", cfg.Selector.DefaultCategories)
	}
	if cfg.Scoring.FrontierEnabled {
		t.Error("expected frontier disabled by default")
	}

	// Base weights must sum to 1.0
	w := cfg.Scoring.Weights
	sum := w.Price + w.Delivery + w.Specs + w.Preference + w.Rating
	if math.Abs(sum-1.0) > 0.001 {
		t.Errorf("base weights sum to %f, expected 1.0", sum)
	}

	// Priority profiles keep their documented (non-normalized) sums
	profileSums := map[string]float64{"budget": 1.05, "delivery": 1.05, "quality": 0.95}
	for name, want := range profileSums {
		p, ok := cfg.Scoring.Profiles[name]
		if !ok {
			t.Errorf("missing profile %s", name)
			continue
		}
		got := p.Price + p.Delivery + p.Specs + p.Preference + p.Rating
		if math.Abs(got-want) > 0.001 {
			t.Errorf("profile %s sums to %f, expected %f", name, got, want)
		}
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("OUTFITTER_PORT", "9000")
	t.Setenv("OUTFITTER_DATABASE_URL", "postgres://test")
	t.Setenv("OUTFITTER_FRONTIER_ENABLED", "true")
	t.Setenv("OUTFITTER_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://test" {
		t.Errorf("expected overridden database URL, got %s", cfg.Database.URL)
	}
	if !cfg.Scoring.FrontierEnabled {
		t.Error("expected frontier enabled via env")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
server:
  port: 8800
scoring:
  weights:
    price: 0.40
    delivery: 0.20
    specs: 0.20
    preference: 0.10
    rating: 0.10
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	os.Unsetenv("OUTFITTER_PORT")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8800 {
		t.Errorf("expected port 8800 from file, got %d", cfg.Server.Port)
	}
	if cfg.Scoring.Weights.Price != 0.40 {
		t.Errorf("expected price weight 0.40 from file, got %f", cfg.Scoring.Weights.Price)
	}
	// Unspecified sections keep defaults
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port, got %d", cfg.Server.MetricsPort)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

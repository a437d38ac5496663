package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Events   EventsConfig   `yaml:"events"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Selector SelectorConfig `yaml:"selector"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type EventsConfig struct {
	URL             string `yaml:"url"`
	StatsIntervalMs int    `yaml:"stats_interval_ms"`
}

type ScoringConfig struct {
	Weights         ScoringWeights            `yaml:"weights"`
	Profiles        map[string]ScoringWeights `yaml:"profiles"`
	FrontierEnabled bool                      `yaml:"frontier_enabled"`
}

type ScoringWeights struct {
	Price      float64 `yaml:"price"`
	Delivery   float64 `yaml:"delivery"`
	Specs      float64 `yaml:"specs"`
	Preference float64 `yaml:"preference"`
	Rating     float64 `yaml:"rating"`
}

type SelectorConfig struct {
	Strategy          string   `yaml:"strategy"`
	DefaultCategories []string `yaml:"default_categories"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) StatsInterval() time.Duration {
	return time.Duration(c.Events.StatsIntervalMs) * time.Millisecond
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Events: EventsConfig{
			URL:             "nats://localhost:4222",
			StatsIntervalMs: 60000,
		},
		Scoring: ScoringConfig{
			Weights: ScoringWeights{
				Price:      0.30,
				Delivery:   0.25,
				Specs:      0.25,
				Preference: 0.10,
				Rating:     0.10,
			},
			Profiles: map[string]ScoringWeights{
				"budget":   {Price: 0.50, Delivery: 0.25, Specs: 0.20, Preference: 0.10, Rating: 0.10},
				"delivery": {Price: 0.25, Delivery: 0.45, Specs: 0.25, Preference: 0.10, Rating: 0.10},
				"quality":  {Price: 0.20, Delivery: 0.25, Specs: 0.40, Preference: 0.10, Rating: 0.20},
			},
			FrontierEnabled: false,
		},
		Selector: SelectorConfig{
			Strategy:          "greedy",
			DefaultCategories: []string{"jacket", "pants", "base_layer", "gloves", "goggles"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("OUTFITTER_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("OUTFITTER_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("OUTFITTER_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("OUTFITTER_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("OUTFITTER_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("OUTFITTER_STATS_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Events.StatsIntervalMs = n
		}
	}
	if v := os.Getenv("OUTFITTER_FRONTIER_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Scoring.FrontierEnabled = b
		}
	}
	if v := os.Getenv("OUTFITTER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

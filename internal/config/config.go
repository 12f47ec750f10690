package config

import (
	"fmt"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
// Engine thresholds default to the values the dashboard shipped with.
type Config struct {
	Address     string `env:"ADDRESS" envDefault:":8080"`
	PostgresDSN string `env:"POSTGRES_DSN,required"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`

	// Default date window applied when the query carries no start/end.
	DefaultStart string `env:"DEFAULT_RANGE_START" envDefault:"2025-08-04"`
	DefaultEnd   string `env:"DEFAULT_RANGE_END" envDefault:"2025-08-24"`

	// Stacked chart keeps at most this many publishers on the axis.
	StackTopN int `env:"STACK_TOP_N" envDefault:"12"`

	// Label substituted for blank publisher/category/genre values.
	FallbackLabel string `env:"FALLBACK_LABEL" envDefault:"Other"`

	// Badge thresholds.
	TopPercentile      float64 `env:"BADGE_TOP_PERCENTILE" envDefault:"0.99"`
	TopPercentileScope string  `env:"BADGE_TOP_SCOPE" envDefault:"filtered"` // filtered | global
	AppHeavyMin        float64 `env:"BADGE_APP_HEAVY_MIN" envDefault:"0.6928"`
	WebHeavyMax        float64 `env:"BADGE_WEB_HEAVY_MAX" envDefault:"0.675"`
	ViralMinRead       int64   `env:"BADGE_VIRAL_MIN_READ" envDefault:"4000"`
	ViralMinRatio      float64 `env:"BADGE_VIRAL_MIN_RATIO" envDefault:"0.04"`
	LowConvMinRead     int64   `env:"BADGE_LOW_CONV_MIN_READ" envDefault:"10000"`
	LowConvMaxRatio    float64 `env:"BADGE_LOW_CONV_MAX_RATIO" envDefault:"0.025"`
	RecencyDays        int     `env:"BADGE_RECENCY_DAYS" envDefault:"30"`
}

// Load reads .env (when present) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.TopPercentileScope != "filtered" && cfg.TopPercentileScope != "global" {
		return nil, fmt.Errorf("invalid BADGE_TOP_SCOPE: %s", cfg.TopPercentileScope)
	}

	return cfg, nil
}

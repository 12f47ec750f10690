package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/sales?sslmode=disable")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Address != ":8080" {
		t.Fatalf("address = %q", cfg.Address)
	}
	if cfg.StackTopN != 12 || cfg.FallbackLabel != "Other" {
		t.Fatalf("stack defaults: topN=%d label=%q", cfg.StackTopN, cfg.FallbackLabel)
	}
	if cfg.TopPercentile != 0.99 || cfg.TopPercentileScope != "filtered" {
		t.Fatalf("badge defaults: pct=%v scope=%q", cfg.TopPercentile, cfg.TopPercentileScope)
	}
	if cfg.DefaultStart != "2025-08-04" || cfg.DefaultEnd != "2025-08-24" {
		t.Fatalf("range defaults: %q..%q", cfg.DefaultStart, cfg.DefaultEnd)
	}
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing POSTGRES_DSN")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/sales")
	t.Setenv("STACK_TOP_N", "5")
	t.Setenv("BADGE_TOP_SCOPE", "global")
	t.Setenv("BADGE_RECENCY_DAYS", "14")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StackTopN != 5 || cfg.TopPercentileScope != "global" || cfg.RecencyDays != 14 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_InvalidScope(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/sales")
	t.Setenv("BADGE_TOP_SCOPE", "everything")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid BADGE_TOP_SCOPE")
	}
}

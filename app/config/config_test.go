package config

import (
	"runtime"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"LOG_STYLE", "LOG_LEVEL", "SERVER_ADDR", "ENGINE_PATH", "ENGINE_URL",
		"ENGINE_DEPTH", "ENGINE_MOVE_TIME", "ENGINE_TIMEOUT_GRACE", "SELFPLAY_WORKERS"} {
		t.Setenv(k, "")
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Logs.Level != "info" || cfg.Server.Addr != "0.0.0.0:8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Engine.Depth != 15 || cfg.Engine.MoveTime != time.Second || cfg.Engine.Grace != 2*time.Second {
		t.Fatalf("unexpected engine defaults: %+v", cfg.Engine)
	}
	if cfg.SelfPlay.Workers != runtime.NumCPU() {
		t.Fatalf("Workers = %d, want %d", cfg.SelfPlay.Workers, runtime.NumCPU())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ENGINE_PATH", "/usr/bin/stockfish")
	t.Setenv("ENGINE_DEPTH", "20")
	t.Setenv("ENGINE_MOVE_TIME", "250")
	t.Setenv("SELFPLAY_WORKERS", "3")
	t.Setenv("LOG_STYLE", "pretty")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Engine.Path != "/usr/bin/stockfish" || cfg.Engine.Depth != 20 || cfg.Engine.MoveTime != 250*time.Millisecond {
		t.Fatalf("engine overrides not applied: %+v", cfg.Engine)
	}
	if cfg.SelfPlay.Workers != 3 || cfg.Logs.Style != "pretty" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigRejectsBadInts(t *testing.T) {
	for _, k := range []string{"ENGINE_DEPTH", "ENGINE_MOVE_TIME", "ENGINE_TIMEOUT_GRACE", "SELFPLAY_WORKERS"} {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, "not-a-number")
			if _, err := LoadConfig(); err == nil {
				t.Fatalf("expected error for %s", k)
			}
			t.Setenv(k, "-1")
			if _, err := LoadConfig(); err == nil {
				t.Fatalf("expected error for negative %s", k)
			}
		})
	}
}

package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Logs     LogConfig
	Server   ServerConfig
	Engine   EngineConfig
	SelfPlay SelfPlayConfig
}

type LogConfig struct {
	Style string
	Level string
}

type ServerConfig struct {
	Addr string
}

// EngineConfig describes the analysis process behind the expert tier. Path
// wins over URL; with neither set the expert tier always plays hard.
type EngineConfig struct {
	Path     string
	URL      string
	Depth    int
	MoveTime time.Duration
	Grace    time.Duration
}

type SelfPlayConfig struct {
	Workers int
}

func LoadConfig() (*Config, error) {
	depth, err := intEnv("ENGINE_DEPTH", 15)
	if err != nil {
		return nil, err
	}
	moveTime, err := intEnv("ENGINE_MOVE_TIME", 1000)
	if err != nil {
		return nil, err
	}
	grace, err := intEnv("ENGINE_TIMEOUT_GRACE", 2000)
	if err != nil {
		return nil, err
	}
	workers, err := intEnv("SELFPLAY_WORKERS", runtime.NumCPU())
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Logs: LogConfig{
			Style: os.Getenv("LOG_STYLE"),
			Level: stringEnv("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Addr: stringEnv("SERVER_ADDR", "0.0.0.0:8080"),
		},
		Engine: EngineConfig{
			Path:     os.Getenv("ENGINE_PATH"),
			URL:      os.Getenv("ENGINE_URL"),
			Depth:    depth,
			MoveTime: time.Duration(moveTime) * time.Millisecond,
			Grace:    time.Duration(grace) * time.Millisecond,
		},
		SelfPlay: SelfPlayConfig{
			Workers: workers,
		},
	}
	return cfg, nil
}

func stringEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("converting %s to int: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", key, n)
	}
	return n, nil
}

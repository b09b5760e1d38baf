package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration shared by cmd/server, cmd/relay and cmd/migrate.
type Config struct {
	AppEnv          string
	GRPCAddr        string
	HTTPAddr        string
	SpannerDatabase string
	KafkaBrokers    []string
	KafkaTopic      string
	RelayInterval   time.Duration
	RelayBatchSize  int
}

// Load reads an optional .env file (outside production) and then the environment.
func Load() Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	return FromEnv()
}

// FromEnv builds the config from environment variables only, applying defaults.
func FromEnv() Config {
	return Config{
		AppEnv:          env("APP_ENV", "development"),
		GRPCAddr:        env("GRPC_ADDR", ":50051"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		SpannerDatabase: env("SPANNER_DATABASE", "projects/test-project/instances/emulator-instance/databases/test-db"),
		KafkaBrokers:    splitList(env("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:      env("KAFKA_TOPIC", "customization.events"),
		RelayInterval:   envDuration("RELAY_INTERVAL", 2*time.Second),
		RelayBatchSize:  envInt("RELAY_BATCH_SIZE", 100),
	}
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func env(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// splitList splits a comma-separated list of host:port.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

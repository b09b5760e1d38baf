package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "GRPC_ADDR", "HTTP_ADDR", "SPANNER_DATABASE", "KAFKA_BROKERS",
		"KAFKA_TOPIC", "RELAY_INTERVAL", "RELAY_BATCH_SIZE"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "customization.events", cfg.KafkaTopic)
	assert.Equal(t, 2*time.Second, cfg.RelayInterval)
	assert.Equal(t, 100, cfg.RelayBatchSize)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,,")
	t.Setenv("RELAY_INTERVAL", "500ms")
	t.Setenv("RELAY_BATCH_SIZE", "25")

	cfg := FromEnv()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 500*time.Millisecond, cfg.RelayInterval)
	assert.Equal(t, 25, cfg.RelayBatchSize)
}

func TestFromEnv_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RELAY_INTERVAL", "soon")
	t.Setenv("RELAY_BATCH_SIZE", "-3")

	cfg := FromEnv()
	assert.Equal(t, 2*time.Second, cfg.RelayInterval)
	assert.Equal(t, 100, cfg.RelayBatchSize)
}

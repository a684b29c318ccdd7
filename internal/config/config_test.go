package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("HTTP_ADDRESS")
	os.Unsetenv("MONGO_URI")
	os.Unsetenv("KAFKA_BROKERS")

	cfg := Load()

	require.Equal(t, ":3000", cfg.HTTPAddress)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	require.Equal(t, "exercise_log", cfg.MongoDatabase)
	require.Empty(t, cfg.KafkaBrokers, "events should be disabled by default")
}

func TestLoadPortFeedsAddress(t *testing.T) {
	os.Unsetenv("HTTP_ADDRESS")
	t.Setenv("PORT", "8085")

	cfg := Load()
	require.Equal(t, ":8085", cfg.HTTPAddress)
}

func TestLoadSplitsBrokers(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092 ,")

	cfg := Load()
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
}

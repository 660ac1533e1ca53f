package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv выставляет минимальный набор обязательных переменных.
func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "voice")
	t.Setenv("KAFKA_BROKERS", "kafka:9092")
	t.Setenv("KAFKA_TOPIC", "user-events")
	t.Setenv("BUCKET_NAME", "voice-samples")
	t.Setenv("COLLECTION_NAME", "voice_embeddings")
	t.Setenv("QDRANT_HOST", "qdrant")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load(logger.NewSlogLogger())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Http.Port)
	assert.Equal(t, 5*time.Second, cfg.Http.ReadTimeout)
	assert.Equal(t, "8091", cfg.Grpc.Port)
	assert.Equal(t, "tcp", cfg.Grpc.NetworkMode)

	assert.Equal(t, "localhost", cfg.Db.Host)
	assert.Equal(t, "disable", cfg.Db.SSLMode)

	assert.Equal(t, 6334, cfg.Qdrant.Port)
	assert.Equal(t, uint64(256), cfg.Qdrant.VectorSize)
	assert.Equal(t, "voice_embeddings", cfg.Qdrant.QdrantCollectionName)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 3*time.Minute, cfg.Redis.UserTTL)

	assert.Equal(t, "speaker-encoder:50051", cfg.Ml.Addr)
	assert.Equal(t, 8, cfg.Ml.MaxConcurrent)

	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 3, cfg.Kafka.Partitions)

	assert.Equal(t, "ffmpeg", cfg.Audio.FFmpegPath)
	assert.Equal(t, 16000, cfg.Audio.SampleRate)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("VECTOR_SIZE", "512")
	t.Setenv("AUDIO_SAMPLE_RATE", "8000")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load(logger.NewSlogLogger())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Http.Port)
	assert.Equal(t, uint64(512), cfg.Qdrant.VectorSize)
	assert.Equal(t, 8000, cfg.Audio.SampleRate)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadRequiredVars(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"PostgresUser", "POSTGRES_USER"},
		{"PostgresPassword", "POSTGRES_PASSWORD"},
		{"PostgresDB", "POSTGRES_DB"},
		{"KafkaBrokers", "KAFKA_BROKERS"},
		{"KafkaTopic", "KAFKA_TOPIC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			_, err := Load(logger.NewSlogLogger())
			assert.Error(t, err)
		})
	}
}

func TestParseIntEnv(t *testing.T) {
	t.Setenv("SOME_INT", "")
	got, err := parseIntEnv("SOME_INT", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	t.Setenv("SOME_INT", "42")
	got, err = parseIntEnv("SOME_INT", 7)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	t.Setenv("SOME_INT", "abc")
	_, err = parseIntEnv("SOME_INT", 7)
	assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
}

func TestParseDurationEnv(t *testing.T) {
	t.Setenv("SOME_DURATION", "")
	got, err := parseDurationEnv("SOME_DURATION", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, got)

	t.Setenv("SOME_DURATION", "250ms")
	got, err = parseDurationEnv("SOME_DURATION", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, got)

	t.Setenv("SOME_DURATION", "later")
	_, err = parseDurationEnv("SOME_DURATION", time.Minute)
	assert.Error(t, err)
}

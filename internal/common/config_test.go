package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspass/campuspass/constants"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/campuspass?sslmode=disable")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, 3, cfg.Queue.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Queue.BackoffBase)
	assert.Equal(t, constants.DefaultChunkSize, cfg.Queue.DefaultChunkLen)
	assert.Equal(t, "fs", cfg.Artifact.Backend)
	for _, lane := range constants.Lanes {
		assert.Greater(t, cfg.Queue.Concurrency[lane], 0, "lane %s has no workers", lane)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost:5432/campuspass")
	t.Setenv("QUEUE_LEASE_TTL", "90s")
	t.Setenv("QUEUE_IMPORT_CONCURRENCY", "8")
	t.Setenv("SCHEDULER_ENABLED", "false")

	cfg := LoadConfig()
	assert.Equal(t, 90*time.Second, cfg.Queue.LeaseTTL)
	assert.Equal(t, 8, cfg.Queue.Concurrency[constants.LaneImport])
	assert.False(t, cfg.Scheduler.Enabled)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	t.Setenv("DB_URL", "")
	cfg := LoadConfig()
	require.Error(t, cfg.Validate())

	t.Setenv("DB_URL", "postgres://localhost/x")
	t.Setenv("ARTIFACT_BACKEND", "tape")
	cfg = LoadConfig()
	require.Error(t, cfg.Validate())

	t.Setenv("ARTIFACT_BACKEND", "s3")
	t.Setenv("S3_ENDPOINT", "")
	cfg = LoadConfig()
	require.Error(t, cfg.Validate())
}

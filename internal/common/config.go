package common

import (
	"os"
	"strconv"
	"time"

	"github.com/campuspass/campuspass/constants"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Queue     QueueConfig
	Redis     RedisConfig
	Artifact  ArtifactConfig
	Scheduler SchedulerConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// QueueConfig holds queue manager configuration. Concurrency maps lane name
// to worker pool size; unlisted lanes default to 1.
type QueueConfig struct {
	Concurrency     map[string]int
	PollInterval    time.Duration
	LeaseTTL        time.Duration
	MaxAttempts     int
	BackoffBase     time.Duration
	ProgressEvery   time.Duration
	ShutdownGrace   time.Duration
	DefaultChunkLen int
}

// RedisConfig holds the notification channel configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ArtifactConfig selects and configures the artifact store backend.
type ArtifactConfig struct {
	Backend   string // "fs" or "s3"
	Dir       string // fs backend
	Endpoint  string // s3 backend
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// SchedulerConfig holds the cron trigger configuration.
type SchedulerConfig struct {
	Enabled       bool
	SystemUserID  string // owner of scheduler-enqueued jobs
	CleanupSpec   string
	DigestSpec    string
	ExpirySpec    string
	RetentionDays int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Queue: QueueConfig{
			Concurrency: map[string]int{
				constants.LaneImport:       getEnvAsInt("QUEUE_IMPORT_CONCURRENCY", 2),
				constants.LaneExport:       getEnvAsInt("QUEUE_EXPORT_CONCURRENCY", 1),
				constants.LanePassGen:      getEnvAsInt("QUEUE_PASSGEN_CONCURRENCY", 2),
				constants.LaneStatusUpdate: getEnvAsInt("QUEUE_STATUS_CONCURRENCY", 4),
				constants.LaneCleanup:      getEnvAsInt("QUEUE_CLEANUP_CONCURRENCY", 1),
			},
			PollInterval:    getEnvAsDuration("QUEUE_POLL_INTERVAL", 2*time.Second),
			LeaseTTL:        getEnvAsDuration("QUEUE_LEASE_TTL", 5*time.Minute),
			MaxAttempts:     getEnvAsInt("QUEUE_MAX_ATTEMPTS", 3),
			BackoffBase:     getEnvAsDuration("QUEUE_BACKOFF_BASE", 30*time.Second),
			ProgressEvery:   getEnvAsDuration("QUEUE_PROGRESS_EVERY", 2*time.Second),
			ShutdownGrace:   getEnvAsDuration("QUEUE_SHUTDOWN_GRACE", 30*time.Second),
			DefaultChunkLen: getEnvAsInt("QUEUE_CHUNK_SIZE", constants.DefaultChunkSize),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Artifact: ArtifactConfig{
			Backend:   getEnv("ARTIFACT_BACKEND", "fs"),
			Dir:       getEnv("ARTIFACT_DIR", "./artifacts"),
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			Bucket:    getEnv("S3_BUCKET", "campuspass-artifacts"),
			UseSSL:    getEnvAsBool("S3_USE_SSL", false),
		},
		Scheduler: SchedulerConfig{
			Enabled:       getEnvAsBool("SCHEDULER_ENABLED", true),
			SystemUserID:  getEnv("SCHEDULER_SYSTEM_USER", "00000000-0000-0000-0000-000000000001"),
			CleanupSpec:   getEnv("SCHEDULER_CLEANUP_SPEC", "0 2 * * *"),
			DigestSpec:    getEnv("SCHEDULER_DIGEST_SPEC", "0 8 * * 0"),
			ExpirySpec:    getEnv("SCHEDULER_EXPIRY_SPEC", "0 * * * *"),
			RetentionDays: getEnvAsInt("SCHEDULER_RETENTION_DAYS", 180),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Queue.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "QUEUE_MAX_ATTEMPTS must be >= 1", ErrInvalidInput)
	}
	if c.Artifact.Backend != "fs" && c.Artifact.Backend != "s3" {
		return NewAppError("CONFIG_ERROR", "ARTIFACT_BACKEND must be fs or s3", ErrInvalidInput)
	}
	if c.Artifact.Backend == "s3" && c.Artifact.Endpoint == "" {
		return NewAppError("CONFIG_ERROR", "S3_ENDPOINT is required for the s3 artifact backend", ErrInvalidInput)
	}
	return nil
}

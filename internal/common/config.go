package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/davidolu/elector-registry/constants"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Scheduler SchedulerConfig
	Ingest    IngestConfig
	Mail      MailConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// SchedulerConfig holds the sweep loop configuration
type SchedulerConfig struct {
	SweepInterval time.Duration
	DispatchDelay time.Duration
	Workers       int
}

// IngestConfig holds the upload pipeline configuration
type IngestConfig struct {
	SpoolDir      string
	BatchSize     int
	ProgressEvery int
}

// MailConfig holds outbound notification configuration
type MailConfig struct {
	ResendAPIKey string
	FromAddress  string
	Timeout      time.Duration
}

// LoadConfig loads configuration from the environment. A local .env file is
// read first when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Scheduler: SchedulerConfig{
			SweepInterval: getEnvAsDuration("SWEEP_INTERVAL", time.Minute),
			DispatchDelay: getEnvAsDuration("DISPATCH_DELAY", time.Second),
			Workers:       getEnvAsInt("SWEEP_WORKERS", 4),
		},
		Ingest: IngestConfig{
			SpoolDir:      getEnv("UPLOAD_SPOOL_DIR", "./uploads"),
			BatchSize:     getEnvAsInt("UPLOAD_BATCH_SIZE", constants.DefaultBatchSize),
			ProgressEvery: getEnvAsInt("UPLOAD_PROGRESS_EVERY", constants.DefaultProgressEvery),
		},
		Mail: MailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromAddress:  getEnv("MAIL_FROM", "Elector Registry <onboarding@resend.dev>"),
			Timeout:      getEnvAsDuration("MAIL_TIMEOUT", 15*time.Second),
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Ingest.BatchSize <= 0 {
		return NewAppError("CONFIG_ERROR", "UPLOAD_BATCH_SIZE must be positive", ErrInvalidInput)
	}
	if c.Ingest.ProgressEvery <= 0 {
		return NewAppError("CONFIG_ERROR", "UPLOAD_PROGRESS_EVERY must be positive", ErrInvalidInput)
	}
	return nil
}

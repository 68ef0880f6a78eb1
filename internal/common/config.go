package common

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Pipeline  PipelineConfig
	Tools     ToolConfig
	Retention RetentionConfig
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	GRPCAddr  string
	MasterKey string
}

// PipelineConfig holds job-pipeline configuration.
type PipelineConfig struct {
	StorageRoot   string
	Workers       int
	QueueSize     int
	RetryAttempts int
	BackoffBase   time.Duration
	FetchTimeout  time.Duration
	MergeTimeout  time.Duration
	ProbeTimeout  time.Duration
}

// ToolConfig holds external-tool binary locations.
type ToolConfig struct {
	YtDlpPath   string
	FFmpegPath  string
	FFprobePath string
}

// RetentionConfig controls the janitor. Window bounds how long published
// artifacts and live job records stay around; Archive bounds the database
// history that feeds exports.
type RetentionConfig struct {
	Window  time.Duration
	Archive time.Duration
	Sweep   time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	storageRoot := getEnv("STORAGE_ROOT", "./data")
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", "file:"+filepath.Join(storageRoot, "mediafetch.db")+"?_pragma=busy_timeout(5000)"),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 10),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr:  getEnv("GRPC_ADDR", ":8080"),
			MasterKey: getEnv("MASTER_KEY", ""),
		},
		Pipeline: PipelineConfig{
			StorageRoot:   storageRoot,
			Workers:       getEnvAsInt("WORKER_COUNT", 4),
			QueueSize:     getEnvAsInt("QUEUE_SIZE", 256),
			RetryAttempts: getEnvAsInt("RETRY_ATTEMPTS", 3),
			BackoffBase:   getEnvAsDuration("RETRY_BACKOFF_BASE", 2*time.Second),
			FetchTimeout:  getEnvAsDuration("FETCH_TIMEOUT", 30*time.Minute),
			MergeTimeout:  getEnvAsDuration("MERGE_TIMEOUT", 10*time.Minute),
			ProbeTimeout:  getEnvAsDuration("PROBE_TIMEOUT", 2*time.Minute),
		},
		Tools: ToolConfig{
			YtDlpPath:   getEnv("YTDLP_PATH", "yt-dlp"),
			FFmpegPath:  getEnv("FFMPEG_PATH", "ffmpeg"),
			FFprobePath: getEnv("FFPROBE_PATH", "ffprobe"),
		},
		Retention: RetentionConfig{
			Window:  getEnvAsDuration("RETENTION_WINDOW", time.Hour),
			Archive: getEnvAsDuration("ARCHIVE_RETENTION", 30*24*time.Hour),
			Sweep:   getEnvAsDuration("RETENTION_SWEEP_INTERVAL", 5*time.Minute),
		},
	}
}

// ScratchDir is the root for per-job workspaces.
func (c *Config) ScratchDir() string {
	return filepath.Join(c.Pipeline.StorageRoot, "temp")
}

// DownloadDir is where published artifacts land.
func (c *Config) DownloadDir() string {
	return filepath.Join(c.Pipeline.StorageRoot, "downloads")
}

// CookiesDir holds the optional per-platform cookie files.
func (c *Config) CookiesDir() string {
	return filepath.Join(c.Pipeline.StorageRoot, "cookies")
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Pipeline.StorageRoot == "" {
		return E(KindInvalidInput, "STORAGE_ROOT is required", nil)
	}
	if c.Pipeline.Workers <= 0 {
		return E(KindInvalidInput, "WORKER_COUNT must be positive", nil)
	}
	if c.Pipeline.RetryAttempts <= 0 {
		return E(KindInvalidInput, "RETRY_ATTEMPTS must be positive", nil)
	}
	if c.Server.GRPCAddr == "" {
		return E(KindInvalidInput, "GRPC_ADDR is required", nil)
	}
	return nil
}

// Helper functions for environment variable parsing.

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

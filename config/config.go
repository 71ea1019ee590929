package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	RoleAll    = "all"
	RoleAPI    = "api"
	RoleWorker = "worker"

	BackendSQLite   = "sqlite"
	BackendJSONFile = "jsonfile"
	BackendRedis    = "redis"
)

type Config struct {
	Port            int
	PublicBaseURL   string
	DataDir         string
	Role            string
	Workers         int
	MaxRetries      int
	RetryDelay      time.Duration
	LeaseDuration   time.Duration
	ToolTimeout     time.Duration
	MaxUploadSizeMB int
	UploadRateLimit int
	RetentionDays   int
	CleanupInterval time.Duration
	LogLevel        string

	StoreBackend string
	QueueBackend string
	RedisAddr    string
	RedisDB      int

	AMQPURL      string
	AMQPExchange string

	S3Endpoint  string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3UseSSL    bool

	FFprobePath    string
	FFmpegPath     string
	ThumbnailWidth int
}

// Load reads the environment, after merging an optional .env file from the
// working directory. Variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var errs []error
	intVar := func(key string, def int) int {
		v, err := getEnvInt(key, def)
		errs = append(errs, err)
		return v
	}
	durationVar := func(key string, def time.Duration) time.Duration {
		v, err := getEnvDuration(key, def)
		errs = append(errs, err)
		return v
	}
	boolVar := func(key string, def bool) bool {
		v, err := getEnvBool(key, def)
		errs = append(errs, err)
		return v
	}

	port := intVar("PORT", 7890)
	cfg := &Config{
		Port:            port,
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", fmt.Sprintf("http://localhost:%d", port)),
		DataDir:         getEnv("DATA_DIR", "/data"),
		Role:            getEnv("ROLE", RoleAll),
		Workers:         intVar("WORKERS", 2),
		MaxRetries:      intVar("MAX_RETRIES", 3),
		RetryDelay:      durationVar("RETRY_DELAY", 60*time.Second),
		LeaseDuration:   durationVar("LEASE_DURATION", 5*time.Minute),
		ToolTimeout:     durationVar("TOOL_TIMEOUT", 2*time.Minute),
		MaxUploadSizeMB: intVar("MAX_UPLOAD_SIZE_MB", 500),
		UploadRateLimit: intVar("UPLOAD_RATE_LIMIT", 30),
		RetentionDays:   intVar("RETENTION_DAYS", 30),
		CleanupInterval: durationVar("CLEANUP_INTERVAL", 24*time.Hour),
		LogLevel:        getEnv("LOG_LEVEL", "info"),

		StoreBackend: getEnv("STORE_BACKEND", BackendSQLite),
		QueueBackend: getEnv("QUEUE_BACKEND", BackendSQLite),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      intVar("REDIS_DB", 0),

		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "vidqueue.events"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Bucket:    getEnv("S3_BUCKET", "thumbnails"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3UseSSL:    boolVar("S3_USE_SSL", true),

		FFprobePath:    getEnv("FFPROBE_PATH", "ffprobe"),
		FFmpegPath:     getEnv("FFMPEG_PATH", "ffmpeg"),
		ThumbnailWidth: intVar("THUMBNAIL_WIDTH", 320),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Role {
	case RoleAll, RoleAPI, RoleWorker:
	default:
		return fmt.Errorf("invalid ROLE %q: want all, api or worker", c.Role)
	}
	switch c.StoreBackend {
	case BackendSQLite, BackendJSONFile:
	default:
		return fmt.Errorf("invalid STORE_BACKEND %q: want sqlite or jsonfile", c.StoreBackend)
	}
	switch c.QueueBackend {
	case BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("invalid QUEUE_BACKEND %q: want sqlite or redis", c.QueueBackend)
	}
	if c.QueueBackend == BackendSQLite && c.StoreBackend != BackendSQLite {
		return fmt.Errorf("QUEUE_BACKEND=sqlite needs STORE_BACKEND=sqlite")
	}
	if c.Workers < 1 {
		return fmt.Errorf("WORKERS must be at least 1, got %d", c.Workers)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("MAX_RETRIES must not be negative, got %d", c.MaxRetries)
	}
	if c.LeaseDuration <= 0 {
		return fmt.Errorf("LEASE_DURATION must be positive, got %s", c.LeaseDuration)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("RETRY_DELAY must not be negative, got %s", c.RetryDelay)
	}
	if c.RetentionDays < 0 {
		return fmt.Errorf("RETENTION_DAYS must not be negative, got %d", c.RetentionDays)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("CLEANUP_INTERVAL must be positive, got %s", c.CleanupInterval)
	}
	if c.UploadRateLimit < 0 {
		return fmt.Errorf("UPLOAD_RATE_LIMIT must not be negative, got %d", c.UploadRateLimit)
	}
	if c.S3Endpoint != "" && (c.S3AccessKey == "" || c.S3SecretKey == "") {
		return fmt.Errorf("S3_ENDPOINT is set but S3_ACCESS_KEY or S3_SECRET_KEY is missing")
	}
	return nil
}

// ServesHTTP reports whether this process runs the HTTP API.
func (c *Config) ServesHTTP() bool {
	return c.Role == RoleAll || c.Role == RoleAPI
}

// RunsWorkers reports whether this process consumes the task queue.
func (c *Config) RunsWorkers() bool {
	return c.Role == RoleAll || c.Role == RoleWorker
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

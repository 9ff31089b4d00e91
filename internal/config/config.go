package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the app.
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Redis   RedisConfig
	Chat    ChatConfig
	Logger  LoggerConfig
}

// AppConfig controls the local demo server.
type AppConfig struct {
	Name         string
	Env          string
	Host         string
	Port         string
	Version      string
	SeedDemoData bool
}

// StorageBackend selects the durable key-value substrate.
type StorageBackend string

const (
	BackendMemory StorageBackend = "memory"
	BackendFile   StorageBackend = "file"
	BackendRedis  StorageBackend = "redis"
)

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Backend StorageBackend
	File    string
}

// RedisConfig holds redis connection values for the redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ChatConfig tunes the chatbot.
type ChatConfig struct {
	ReplyDelayMillis int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	backend := StorageBackend(getEnv("STORAGE_BACKEND", string(BackendFile)))
	switch backend {
	case BackendMemory, BackendFile, BackendRedis:
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", backend)
	}

	cfg := &Config{
		App: AppConfig{
			Name:         getEnv("APP_NAME", "krux-support"),
			Env:          getEnv("APP_ENV", "development"),
			Host:         getEnv("APP_HOST", "127.0.0.1"),
			Port:         getEnv("APP_PORT", "8080"),
			Version:      getEnv("APP_VERSION", "dev"),
			SeedDemoData: getEnvAsBool("SEED_DEMO_DATA", false),
		},
		Storage: StorageConfig{
			Backend: backend,
			File:    getEnv("STORAGE_FILE", "krux-support.json"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Chat: ChatConfig{
			ReplyDelayMillis: getEnvAsInt("BOT_REPLY_DELAY_MS", 700),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// ReplyDelay returns the configured bot typing pause.
func (c ChatConfig) ReplyDelay() time.Duration {
	if c.ReplyDelayMillis <= 0 {
		return 0
	}
	return time.Duration(c.ReplyDelayMillis) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

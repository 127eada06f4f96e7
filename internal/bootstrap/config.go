package bootstrap

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerAddr  string
	Environment string
	LogLevel    string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AzureSpeechKey    string
	AzureSpeechRegion string

	MaxRetryAttempts int
	RetryDelay       time.Duration

	CompletionThreshold int

	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func LoadConfig() *Config {
	return &Config{
		ServerAddr:  getEnv("SERVER_ADDR", ":8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		DatabaseDSN: getEnv("DATABASE_DSN", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,

		AzureSpeechKey:    getEnv("AZURE_SPEECH_KEY", ""),
		AzureSpeechRegion: getEnv("AZURE_SPEECH_REGION", ""),

		MaxRetryAttempts: getEnvInt("MAX_RETRY_ATTEMPTS", 3),
		RetryDelay:       time.Duration(getEnvInt("RETRY_DELAY_MS", 1000)) * time.Millisecond,

		CompletionThreshold: getEnvInt("COMPLETION_THRESHOLD", 5),

		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

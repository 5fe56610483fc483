// Package config builds the service configuration from environment variables.
// The resulting Config is constructed once in main and handed by reference to
// every component; nothing else in the codebase reads the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings for the complaint service.
type Config struct {
	// HTTP
	Addr string

	// PostgreSQL
	DatabaseDSN string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	EventsChannel string

	// Sentiment analysis service
	SentimentAPIURL  string
	SentimentAPIKey  string
	SentimentTimeout time.Duration

	// Spam detection service
	SpamAPIURL  string
	SpamAPIKey  string
	SpamTimeout time.Duration

	// IP geolocation service (no auth)
	GeoAPIURL  string
	GeoTimeout time.Duration

	// Telegram ops alerts (disabled when the token is empty)
	TelegramBotToken string
	TelegramChatID   int64
}

// Load reads the configuration from the environment, applying development
// defaults. Empty external API keys are allowed — the corresponding lookup
// will simply degrade at request time.
func Load() *Config {
	return &Config{
		Addr: envOrDefault("ADDR", ":8080"),

		DatabaseDSN: envOrDefault("DATABASE_DSN",
			"host=localhost user=user password=password dbname=complaintdesk port=5432 sslmode=disable"),

		RedisAddr:     envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envOrDefaultInt("REDIS_DB", 0),
		EventsChannel: envOrDefault("EVENTS_CHANNEL", "complaints:events"),

		SentimentAPIURL:  envOrDefault("SENTIMENT_API_URL", "https://api.apilayer.com/sentiment/analysis"),
		SentimentAPIKey:  os.Getenv("SENTIMENT_API_KEY"),
		SentimentTimeout: envOrDefaultDuration("SENTIMENT_TIMEOUT", 10*time.Second),

		SpamAPIURL:  envOrDefault("SPAM_API_URL", "https://api.apilayer.com/spamchecker"),
		SpamAPIKey:  os.Getenv("SPAM_API_KEY"),
		SpamTimeout: envOrDefaultDuration("SPAM_TIMEOUT", 10*time.Second),

		GeoAPIURL:  envOrDefault("GEO_API_URL", "http://ip-api.com/json"),
		GeoTimeout: envOrDefaultDuration("GEO_TIMEOUT", 5*time.Second),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   envOrDefaultInt64("TELEGRAM_CHAT_ID", 0),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envOrDefaultInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

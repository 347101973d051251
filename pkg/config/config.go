package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	JWTSecret           string
	JWTAccessExpiry     time.Duration
	FirebaseWebAPIKey   string
	FirebaseCredentials string // path to the service-account JSON file
	AIProvider          string // "openai", "gemini" or "auto"
	OpenAIAPIKey        string
	GeminiAPIKey        string
	ChatModel           string
	ChatMaxTurns        int
	HistoryLimit        int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 24 * time.Hour
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=maum port=5432 sslmode=disable"),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:     accessExpiry,
		FirebaseWebAPIKey:   getEnv("FIREBASE_WEB_API_KEY", ""),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		AIProvider:          getEnv("AI_PROVIDER", "openai"),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		ChatModel:           getEnv("CHAT_MODEL", "gpt-4o"),
		ChatMaxTurns:        getEnvInt("CHAT_MAX_TURNS", 20),
		HistoryLimit:        getEnvInt("HISTORY_LIMIT", 100),
	}
}

// Validate checks that every secret the service cannot run without is present.
// A missing secret is a fatal startup condition handled by main.
func (c *Config) Validate() error {
	if c.FirebaseWebAPIKey == "" {
		return fmt.Errorf("FIREBASE_WEB_API_KEY is required")
	}
	if c.FirebaseCredentials == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS is required")
	}
	if c.OpenAIAPIKey == "" && c.GeminiAPIKey == "" {
		return fmt.Errorf("at least one of OPENAI_API_KEY or GEMINI_API_KEY is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

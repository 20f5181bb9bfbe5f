package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded from the environment.
// A .env file in the working directory is merged in when present; real
// environment variables always win.
type Config struct {
	// Server
	Host        string
	Port        int
	Environment string
	FrontendURL string
	Version     string

	// Auth
	GoogleClientID string

	// AI providers
	OpenAIAPIKey      string
	GroqAPIKey        string
	GeminiAPIKey      string
	EmbeddingProvider string
	EmbeddingModel    string
	GroqModel         string
	GeminiModel       string

	// Storage
	DatabaseURL      string
	RedisURL         string
	VectorDBType     string
	QdrantURL        string
	QdrantAPIKey     string
	QdrantCollection string

	// Ingestion
	AllowedExtensions []string
	MaxFileSize       int64
	ChunkSize         int
	ChunkOverlap      int

	// Retrieval
	TopKResults int
	TopKComplex int
}

// Load reads configuration from the environment, merging in a .env file
// when one exists.
func Load() *Config {
	// Missing .env is the normal case in production.
	_ = godotenv.Load()

	return &Config{
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnvInt("PORT", 8080),
		Environment: getEnv("ENVIRONMENT", "development"),
		FrontendURL: getEnv("FRONTEND_URL", ""),
		Version:     getEnv("VERSION", "dev"),

		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		GroqAPIKey:        getEnv("GROQ_API_KEY", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "openai"),
		EmbeddingModel:    getEnv("EMBEDDING_MODEL", ""),
		GroqModel:         getEnv("GROQ_MODEL", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", ""),

		DatabaseURL:      getEnv("DATABASE_URL", ""),
		RedisURL:         getEnv("REDIS_URL", ""),
		VectorDBType:     getEnv("VECTOR_DB_TYPE", "qdrant"),
		QdrantURL:        getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantAPIKey:     getEnv("QDRANT_API_KEY", ""),
		QdrantCollection: getEnv("QDRANT_COLLECTION", "documents"),

		AllowedExtensions: getEnvList("ALLOWED_EXTENSIONS", []string{".pdf", ".docx", ".txt"}),
		MaxFileSize:       getEnvInt64("MAX_FILE_SIZE", 10*1024*1024),
		ChunkSize:         getEnvInt("CHUNK_SIZE", 1000),
		ChunkOverlap:      getEnvInt("CHUNK_OVERLAP", 200),

		TopKResults: getEnvInt("TOP_K_RESULTS", 8),
		TopKComplex: getEnvInt("TOP_K_COMPLEX", 12),
	}
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins derives the CORS origin list. With no frontend configured
// everything is allowed, which suits local development.
func (c *Config) AllowedOrigins() []string {
	if c.FrontendURL == "" {
		return []string{"*"}
	}
	return []string{c.FrontendURL}
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		var result int64
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

// getEnvList parses a comma-separated value, trimming whitespace around
// each entry and dropping empties.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Pipeline PipelineConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection      string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type APIKeys struct {
	GoogleGemini string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // currently "ollama"
	LLMModel          string // e.g. "qwen2.5:7b"
	RequestTimeout    time.Duration
}

// PipelineConfig holds the tunables of the query pipeline. Defaults match
// the values the agents were evaluated with.
type PipelineConfig struct {
	RouteThreshold   float64 // min cosine similarity for intent routing
	RetrievalTopK    int
	MinSimilarity    float64 // retrieval floor for document chunks
	MaxRewrites      int // document agent query rewrites per turn
	MaxQueryAttempts int // structured-query agent generate+repair attempts
	FewShotLimit     int
	CacheThreshold   float64 // semantic answer cache similarity
	CacheTTL         time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection:      getEnv("DB_CONNECTION_STRING", ""),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "qwen2.5:7b"),
			RequestTimeout:    getEnvAsDuration("AI_REQUEST_TIMEOUT", 10*time.Second),
		},
		Pipeline: PipelineConfig{
			RouteThreshold:   getEnvAsFloat("ROUTE_THRESHOLD", 0.85),
			RetrievalTopK:    getEnvAsInt("RETRIEVAL_TOP_K", 5),
			MinSimilarity:    getEnvAsFloat("RETRIEVAL_MIN_SIMILARITY", 0.3),
			MaxRewrites:      getEnvAsInt("MAX_QUERY_REWRITES", 1),
			MaxQueryAttempts: getEnvAsInt("MAX_QUERY_ATTEMPTS", 3),
			FewShotLimit:     getEnvAsInt("FEW_SHOT_LIMIT", 3),
			CacheThreshold:   getEnvAsFloat("ANSWER_CACHE_THRESHOLD", 0.92),
			CacheTTL:         getEnvAsDuration("ANSWER_CACHE_TTL", 24*time.Hour),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

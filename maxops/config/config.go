package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	JWTSecret  string

	// Upstream LLM provider (OpenAI-compatible).
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	// Speech providers.
	STTBaseURL         string
	TTSBaseURL         string
	TTSFallbackBaseURL string
	TTSAPIKey          string

	// Attachment object store.
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string

	// Assistant roster file (agents, voice auto-play exclusions).
	RosterPath string
}

func LoadConfig() Config {
	// Local development keeps secrets in .env; absence is fine in deployment.
	_ = godotenv.Load()

	return Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8000"),

		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", ""),
		JWTSecret:  getEnv("JWT_SECRET", ""),

		LLMBaseURL: getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:  getEnv("LLM_API_KEY", ""),
		LLMModel:   getEnv("LLM_MODEL", "gpt-4o"),

		STTBaseURL:         getEnv("STT_BASE_URL", ""),
		TTSBaseURL:         getEnv("TTS_BASE_URL", ""),
		TTSFallbackBaseURL: getEnv("TTS_FALLBACK_BASE_URL", ""),
		TTSAPIKey:          getEnv("TTS_API_KEY", ""),

		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:    getEnv("MINIO_BUCKET", "maxops-attachments"),

		RosterPath: getEnv("ROSTER_PATH", "maxops/services/assistant/roster.yaml"),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

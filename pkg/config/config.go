package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	// External PDF parser service; empty means parse uploads in-process.
	ParserServiceURL string

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	// Per-leg timeout for the analysis pipeline's external calls.
	AnalysisTimeoutSeconds int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Ignore the error if no .env exists.
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "resumeforge"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),

		ParserServiceURL: os.Getenv("PARSER_SERVICE_URL"),

		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:    os.Getenv("OPENROUTER_MODEL"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "resumeforge"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),

		AnalysisTimeoutSeconds: getEnvInt("ANALYSIS_TIMEOUT_SECONDS", 90),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

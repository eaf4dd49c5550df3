package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            string
	GeminiAPIKey    string
	ModelName       string
	DBPath          string
	HistoryLimit    int
	ChunkSize       int
	AgentRepoURL    string
	AgentRepoBranch string
}

func GetConfig() Config {
	return Config{
		Port:         getEnv("PORT", "9090"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		ModelName:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		DBPath:       getEnv("DB_PATH", "./data/badger"),
		HistoryLimit: getEnvInt("HISTORY_LIMIT", 10),
		// Keep each stored value well under the 9KB per-key ceiling of the
		// original properties-store medium.
		ChunkSize:       getEnvInt("CHUNK_SIZE", 8000),
		AgentRepoURL:    getEnv("AGENT_REPO_URL", "https://github.com/google/adk-samples.git"),
		AgentRepoBranch: getEnv("AGENT_REPO_BRANCH", "main"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderMock   = "mock"

	defaultModel           = "gemini-2.5-flash"
	defaultPort            = 8080
	defaultRequestTimeout  = 90 * time.Second
	defaultMaxOutputTokens = 65536
)

// Config holds all process configuration, read once at startup and never
// mutated afterwards.
type Config struct {
	AIProvider      string
	GeminiAPIKey    string
	GeminiModel     string
	MaxOutputTokens int32
	RequestTimeout  time.Duration
	TavilyAPIKey    string
	Port            int
	CORSOrigins     []string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AIProvider:      getEnvString("AI_PROVIDER", ProviderGemini),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnvString("GEMINI_MODEL", defaultModel),
		MaxOutputTokens: int32(getEnvInt("MAX_OUTPUT_TOKENS", defaultMaxOutputTokens)),
		RequestTimeout:  getEnvSeconds("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout),
		TavilyAPIKey:    os.Getenv("TAVILY_API_KEY"),
		Port:            getEnvInt("PORT", defaultPort),
		CORSOrigins:     getEnvList("CORS_ORIGINS", []string{"*"}),
	}

	switch cfg.AIProvider {
	case ProviderGemini, ProviderMock:
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", cfg.AIProvider)
	}

	if cfg.AIProvider == ProviderGemini && cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// getEnvSeconds reads a whole number of seconds.
func getEnvSeconds(key string, defaultValue time.Duration) time.Duration {
	secs := getEnvInt(key, 0)
	if secs <= 0 {
		return defaultValue
	}
	return time.Duration(secs) * time.Second
}

func getEnvList(key string, defaultValue []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

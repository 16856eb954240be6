package config

import (
	"os"
	"testing"
	"time"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"AI_PROVIDER",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"MAX_OUTPUT_TOKENS",
		"REQUEST_TIMEOUT_SECONDS",
		"TAVILY_API_KEY",
		"PORT",
		"CORS_ORIGINS",
	}
	for _, env := range envVars {
		os.Unsetenv(env)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AIProvider != ProviderGemini {
		t.Errorf("AIProvider = %q, want %q", cfg.AIProvider, ProviderGemini)
	}
	if cfg.GeminiModel != defaultModel {
		t.Errorf("GeminiModel = %q, want %q", cfg.GeminiModel, defaultModel)
	}
	if cfg.MaxOutputTokens != defaultMaxOutputTokens {
		t.Errorf("MaxOutputTokens = %d, want %d", cfg.MaxOutputTokens, defaultMaxOutputTokens)
	}
	if cfg.RequestTimeout != defaultRequestTimeout {
		t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout, defaultRequestTimeout)
	}
	if cfg.Port != defaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, defaultPort)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnvVars(t)

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail without GEMINI_API_KEY")
	}
}

func TestLoad_MockProviderNeedsNoKey(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("AI_PROVIDER", "mock")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AIProvider != ProviderMock {
		t.Errorf("AIProvider = %q, want %q", cfg.AIProvider, ProviderMock)
	}
}

func TestLoad_UnknownProvider(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("AI_PROVIDER", "claude")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject unknown provider")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "45")
	t.Setenv("MAX_OUTPUT_TOKENS", "4096")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GeminiModel != "gemini-2.5-pro" {
		t.Errorf("GeminiModel = %q, want gemini-2.5-pro", cfg.GeminiModel)
	}
	if cfg.RequestTimeout != 45*time.Second {
		t.Errorf("RequestTimeout = %v, want 45s", cfg.RequestTimeout)
	}
	if cfg.MaxOutputTokens != 4096 {
		t.Errorf("MaxOutputTokens = %d, want 4096", cfg.MaxOutputTokens)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://staging.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue int
		want         int
	}{
		{"empty uses default", "", 5, 5},
		{"valid number", "10", 5, 10},
		{"invalid string uses default", "abc", 5, 5},
		{"negative uses default", "-1", 5, 5},
		{"zero uses default", "0", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_ENV_INT"
			if tt.envValue != "" {
				t.Setenv(key, tt.envValue)
			} else {
				os.Unsetenv(key)
			}

			got := getEnvInt(key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnvInt(%q, %d) = %d, want %d", tt.envValue, tt.defaultValue, got, tt.want)
			}
		})
	}
}

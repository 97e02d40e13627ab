package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	LLM      LLMConfig
	Pipeline PipelineConfig
	Store    StoreConfig
}

// LLMConfig holds completion-service configuration
type LLMConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
}

// PipelineConfig holds extraction pipeline tuning
type PipelineConfig struct {
	MaxPromptChars int
	LowConfidence  int
}

// StoreConfig holds report store configuration
type StoreConfig struct {
	Driver string // "memory" or "sqlite"
	DSN    string
	TTL    time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Pipeline: PipelineConfig{
			MaxPromptChars: getEnvAsInt("MAX_PROMPT_CHARS", 12000),
			LowConfidence:  getEnvAsInt("LOW_CONFIDENCE_THRESHOLD", 75),
		},
		Store: StoreConfig{
			Driver: getEnv("REPORT_STORE_DRIVER", "memory"),
			DSN:    getEnv("REPORT_STORE_DSN", "file:reports.db"),
			TTL:    getEnvAsDuration("REPORT_STORE_TTL", time.Hour),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Pipeline.MaxPromptChars <= 0 {
		return NewAppError("CONFIG_ERROR", "MAX_PROMPT_CHARS must be positive", ErrInvalidInput)
	}
	if c.Store.Driver != "memory" && c.Store.Driver != "sqlite" {
		return NewAppError("CONFIG_ERROR", "REPORT_STORE_DRIVER must be memory or sqlite", ErrInvalidInput)
	}
	return nil
}

// NewAppError constructs an AppError.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

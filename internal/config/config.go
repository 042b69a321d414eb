package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App     AppConfig
	AWS     AWSConfig
	Storage StorageConfig
	LLM     LLMConfig
	Logger  LoggerConfig
}

// AppConfig controls server level behavior for the local invoke API.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// AWSConfig holds region and endpoint overrides for AWS clients.
type AWSConfig struct {
	Region         string
	DynamoEndpoint string
	S3Endpoint     string
}

// StorageConfig names the transcript bucket and ticket tables.
type StorageConfig struct {
	TranscriptBucket string
	TicketTable      string
	SubTicketTable   string
}

// LLMConfig holds provider credentials and model selection.
type LLMConfig struct {
	OpenAIAPIKey    string
	OpenAIModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	MaxTokens       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	maxTokens := getEnvAsInt("LLM_MAX_TOKENS", 4096)
	if maxTokens <= 0 {
		return nil, fmt.Errorf("invalid LLM_MAX_TOKENS: must be positive")
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "transcriber"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 120),
		},
		AWS: AWSConfig{
			Region:         getEnv("AWS_REGION", "us-west-2"),
			DynamoEndpoint: os.Getenv("DYNAMO_ENDPOINT"),
			S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		},
		Storage: StorageConfig{
			TranscriptBucket: getEnv("TRANSCRIPTIONS_BUCKET", "dev-transcriptions-ai"),
			TicketTable:      getEnv("TICKET_TABLE", "Ticket"),
			SubTicketTable:   getEnv("SUB_TICKET_TABLE", "SubTicket"),
		},
		LLM: LLMConfig{
			OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4-turbo-preview"),
			AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
			AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-opus-20240229"),
			MaxTokens:       maxTokens,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

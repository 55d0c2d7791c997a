package setup

import (
	"os"
	"strconv"
	"time"
)

const (
	ProviderGemini  = "gemini"
	ProviderBedrock = "bedrock"
	ProviderOpenAI  = "openai"
)

type Config struct {
	Provider          string
	GeminiAPIKey      string
	GeminiModelID     string
	GeminiBaseURL     string
	AWSRegion         string
	ClaudeModelID     string
	OpenAIKey         string
	OpenAIModelID     string
	RequestTimeout    time.Duration
	MaxOutputTokens   int
	Temperature       *float64
	MaxPromptChars    int
	VerdictConfigPath string
	LogLevel          string

	APIPort       string
	RedisAddr     string
	RedisPassword string
	RequestStream string
	ResultStream  string
	ConsumerGroup string
	ConsumerName  string
}

// LoadConfig reads the process environment. Call godotenv.Load first to pick up a .env file.
func LoadConfig() *Config {
	return &Config{
		Provider:          getEnv("LLM_PROVIDER", ProviderGemini),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModelID:     getEnv("GEMINI_MODEL_ID", ""),
		GeminiBaseURL:     getEnv("GEMINI_BASE_URL", ""),
		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:     getEnv("CLAUDE_MODEL_ID", ""),
		OpenAIKey:         getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID:     getEnv("OPEN_AI_MODEL_ID", ""),
		RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		MaxOutputTokens:   getEnvInt("MAX_OUTPUT_TOKENS", 0),
		Temperature:       getEnvFloatPtr("TEMPERATURE"),
		MaxPromptChars:    getEnvInt("MAX_PROMPT_CHARS", 32000),
		VerdictConfigPath: getEnv("VERDICT_CONFIG_PATH", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),

		APIPort:       getEnv("COMPARE_API_PORT", "18082"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RequestStream: getEnv("COMPARE_REQUEST_STREAM", "compare-requests"),
		ResultStream:  getEnv("COMPARE_RESULT_STREAM", "compare-results"),
		ConsumerGroup: getEnv("COMPARE_GROUP", "prompt-compare"),
		ConsumerName:  getEnv("HOSTNAME", "compare-worker-1"),
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvFloatPtr(key string) *float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return nil
	}

	return &value
}

// getEnvDuration accepts a Go duration ("45s") or a plain number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil && d > 0 {
		return d
	}
	if seconds, err := strconv.Atoi(valueStr); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

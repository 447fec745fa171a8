package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process configuration, read once at startup.
type Config struct {
	// Upstream model.
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64

	// Request gate tunables.
	MaxConcurrent     int
	RequestsPerMinute int
	RetryAttempts     int
	BaseRetryDelay    time.Duration

	// History retention.
	HistoryLimit int

	// Logging.
	LogDir        string
	LogCalls      bool
	MaxLogSizeMB  int
}

// Default returns a Config with conservative defaults matching the
// upstream provider's free-tier quota.
func Default() Config {
	return Config{
		BaseURL:           "https://api.groq.com/openai/v1",
		Model:             "qwen/qwen3-32b",
		Temperature:       0.4,
		MaxConcurrent:     2,
		RequestsPerMinute: 25,
		RetryAttempts:     3,
		BaseRetryDelay:    time.Second,
		HistoryLimit:      200,
		LogDir:            "logs",
		LogCalls:          false,
		MaxLogSizeMB:      10,
	}
}

// Load reads configuration from a .env file (if present) and environment
// variables, falling back to defaults for anything unset or invalid.
func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Default()

	cfg.APIKey = os.Getenv("MAATRICARE_API_KEY")
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GROQ_API_KEY")
	}

	if v := os.Getenv("MAATRICARE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("MAATRICARE_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("MAATRICARE_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("MAATRICARE_MAX_CONCURRENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxConcurrent = n
		}
	}
	if v := os.Getenv("MAATRICARE_REQUESTS_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RequestsPerMinute = n
		}
	}
	if v := os.Getenv("MAATRICARE_RETRY_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RetryAttempts = n
		}
	}
	if v := os.Getenv("MAATRICARE_BASE_RETRY_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BaseRetryDelay = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("MAATRICARE_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryLimit = n
		}
	}
	if v := os.Getenv("MAATRICARE_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("MAATRICARE_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MAATRICARE_MAX_LOG_SIZE_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxLogSizeMB = n
		}
	}

	return cfg
}

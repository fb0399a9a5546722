package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Dispatcher DispatcherConfig
	OCR        OCRConfig
	Vision     VisionConfig
	Signer     SignerConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// DispatcherConfig holds extraction worker configuration
type DispatcherConfig struct {
	Provider     string        // vision provider name to dispatch to
	Workers      int           // concurrent job claim loops
	PairFanout   int           // provider calls in flight per job
	PollInterval time.Duration // queue poll interval when idle
	CallTimeout  time.Duration // per provider call
	JobTimeout   time.Duration // wall-clock budget before the sweep force-fails
	RetryMax     int
	RetryWait    time.Duration
}

// OCRConfig holds the classical OCR provider configuration
type OCRConfig struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
	TessdataDir   string
	FetchTimeout  time.Duration
}

// VisionConfig holds the generative vision provider configuration
type VisionConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// SignerConfig holds signed image reference configuration
type SignerConfig struct {
	BaseURL string
	Secret  string
	RefTTL  time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Dispatcher: DispatcherConfig{
			Provider:     getEnv("VISION_PROVIDER", "tesseract"),
			Workers:      getEnvAsInt("DISPATCH_WORKERS", 2),
			PairFanout:   getEnvAsInt("DISPATCH_PAIR_FANOUT", 4),
			PollInterval: getEnvAsDuration("DISPATCH_POLL_INTERVAL", 2*time.Second),
			CallTimeout:  getEnvAsDuration("DISPATCH_CALL_TIMEOUT", 60*time.Second),
			JobTimeout:   getEnvAsDuration("DISPATCH_JOB_TIMEOUT", 10*time.Minute),
			RetryMax:     getEnvAsInt("DISPATCH_RETRY_MAX", 3),
			RetryWait:    getEnvAsDuration("DISPATCH_RETRY_WAIT", 500*time.Millisecond),
		},
		OCR: OCRConfig{
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			FetchTimeout:  getEnvAsDuration("OCR_FETCH_TIMEOUT", 15*time.Second),
		},
		Vision: VisionConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Signer: SignerConfig{
			BaseURL: getEnv("IMAGE_BASE_URL", "http://localhost:8081"),
			Secret:  getEnv("IMAGE_REF_SECRET", ""),
			RefTTL:  getEnvAsDuration("IMAGE_REF_TTL", 10*time.Minute),
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

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
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
	if c.Database.DSN == "" {
		return Validationf("DB_URL is required")
	}
	if c.Server.GRPCAddr == "" {
		return Validationf("GRPC_ADDR is required")
	}
	if c.Signer.Secret == "" {
		return Validationf("IMAGE_REF_SECRET is required")
	}
	if c.Dispatcher.Provider == "openai" && c.Vision.APIKey == "" {
		return Validationf("OPENAI_API_KEY is required when VISION_PROVIDER=openai")
	}
	return nil
}

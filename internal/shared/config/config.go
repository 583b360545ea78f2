package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DurableLocal    = "local"
	DurableS3       = "s3"
	DurablePostgres = "postgres"
	DurableMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port            string `validate:"required"`
	Env             string `validate:"oneof=dev local staging production"`
	CORSAllowOrigin []string
	DurableStore    string `validate:"oneof=local s3 postgres memory"`
	LocalStoreDir   string `validate:"required_if=DurableStore local"`
	AWSRegion       string
	S3Bucket        string `validate:"required_if=DurableStore s3"`
	S3Prefix        string
	SSEKMSKeyID     string
	DatabaseURL     string        `validate:"required_if=DurableStore postgres"`
	EnhanceDelay    time.Duration `validate:"gte=0"`
	EnhanceSeed     int64
	EnhanceRate     float64 `validate:"gte=0"`
	EnhanceBurst    int     `validate:"gte=0"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8000"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
		DurableStore:    normalizeDurable(getEnv("DURABLE_STORE", DurableLocal)),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "saved_resumes"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", ""),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		EnhanceDelay:    getEnvDuration("ENHANCE_DELAY", 500*time.Millisecond),
		EnhanceSeed:     getEnvInt64("ENHANCE_SEED", 0),
		EnhanceRate:     getEnvFloat("ENHANCE_RATE_PER_SEC", 0),
		EnhanceBurst:    int(getEnvInt64("ENHANCE_RATE_BURST", 0)),
	}
}

// Validate reports the first invalid field, if any.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config: %s invalid duration %q, using %s", key, raw, def)
		return def
	}
	return val
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("config: %s invalid int %q, using %d", key, raw, def)
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config: %s invalid float %q, using %g", key, raw, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeDurable(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return DurableS3
	case "postgres", "pg":
		return DurablePostgres
	case "memory", "none":
		return DurableMemory
	default:
		return DurableLocal
	}
}

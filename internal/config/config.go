package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Auth. Empty disables authentication.
	APIKey string

	// Whether parsed blocks get random IDs.
	GenerateIDs bool

	// Upload limits
	MaxUploadBytes int64

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port:                 envOr("PORT", "8091"),
		APIKey:               os.Getenv("MDSTRUCT_API_KEY"),
		GenerateIDs:          envBool("GENERATE_IDS", true),
		MaxUploadBytes:       envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// Package config reads the server settings from the environment. A .env
// file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

type StoreKind string

const (
	StoreCookie StoreKind = "cookie"
	StoreSQLite StoreKind = "sqlite"
	StoreRedis  StoreKind = "redis"
	StoreMongo  StoreKind = "mongo"
)

func ParseStoreKind(s string) (StoreKind, error) {
	switch k := StoreKind(strings.ToLower(strings.TrimSpace(s))); k {
	case StoreCookie, StoreSQLite, StoreRedis, StoreMongo:
		return k, nil
	}
	return "", fmt.Errorf("unknown store %q (want cookie, sqlite, redis or mongo)", s)
}

type Config struct {
	Port         string
	GinMode      string
	SecureCookie bool

	Store     StoreKind
	DBPath    string
	RedisAddr string
	RedisTTL  time.Duration
	MongoURI  string
	MongoDB   string

	// Retention is how long an untouched server-side preference is kept.
	Retention time.Duration

	ContentPath string
	ImagesDir   string

	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	store, err := ParseStoreKind(getEnv("FOLIO_STORE", string(StoreCookie)))
	if err != nil {
		return nil, err
	}

	ttlHours, err := strconv.Atoi(getEnv("REDIS_TTL_HOURS", "8760"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_TTL_HOURS: %w", err)
	}
	months, err := strconv.Atoi(getEnv("FOLIO_RETENTION_MONTHS", "12"))
	if err != nil {
		return nil, fmt.Errorf("FOLIO_RETENTION_MONTHS: %w", err)
	}
	secure, err := strconv.ParseBool(getEnv("FOLIO_SECURE_COOKIES", "false"))
	if err != nil {
		return nil, fmt.Errorf("FOLIO_SECURE_COOKIES: %w", err)
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		SecureCookie: secure,
		Store:        store,
		DBPath:       getEnv("FOLIO_DB_PATH", "folio.db"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisTTL:     time.Duration(ttlHours) * time.Hour,
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "folio"),
		Retention:    time.Duration(months) * 30 * 24 * time.Hour,
		ContentPath:  os.Getenv("FOLIO_CONTENT"),
		ImagesDir:    getEnv("FOLIO_IMAGES_DIR", "./images"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "console"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

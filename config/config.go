package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "forgefinds/dealworker/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Deal store configuration
	DealsFile     string
	MaxDeals      int
	RetentionDays int

	// Scraper configuration
	UpdateInterval time.Duration
	AmazonNodes    []string
	AffiliateTag   string

	// Redis configuration
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Memcache configuration
	MemcacheAddr string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	maxDeals, _ := strconv.Atoi(getEnv("MAX_DEALS", "300"))
	retentionDays, _ := strconv.Atoi(getEnv("RETENTION_DAYS", "90"))
	updateInterval, _ := strconv.Atoi(getEnv("UPDATE_INTERVAL_SECONDS", "86400"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	streamMaxLength, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))

	return Config{
		DealsFile:            getEnv("DEALS_FILE", "data/deals.json"),
		MaxDeals:             maxDeals,
		RetentionDays:        retentionDays,
		UpdateInterval:       time.Duration(updateInterval) * time.Second,
		AmazonNodes:          splitList(getEnv("AMAZON_NODES", "53629917011")),
		AffiliateTag:         getEnv("AFFILIATE_TAG", "forgefinds20-20"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "deals"),
		RedisStreamCount:     streamCount,
		RedisStreamMaxLength: streamMaxLength,
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", "localhost:11211"),
		Environment:          getEnv("FORGEFINDS_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for values the worker cannot run with
func (c *Config) Validate() error {
	if c.DealsFile == "" {
		return apperrors.NewConfiguration("DEALS_FILE must not be empty", nil)
	}
	if c.MaxDeals <= 0 {
		return apperrors.NewConfiguration("MAX_DEALS must be positive", nil)
	}
	if c.RetentionDays <= 0 {
		return apperrors.NewConfiguration("RETENTION_DAYS must be positive", nil)
	}
	if c.UpdateInterval <= 0 {
		return apperrors.NewConfiguration("UPDATE_INTERVAL_SECONDS must be positive", nil)
	}
	if len(c.AmazonNodes) == 0 {
		return apperrors.NewConfiguration("AMAZON_NODES must list at least one node", nil)
	}
	if c.RedisStreamCount <= 0 {
		return apperrors.NewConfiguration("REDIS_STREAM_COUNT must be positive", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitList splits a comma-separated env value, dropping empty entries
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Test with default values
	config := LoadConfig()
	assert.Equal(t, "data/deals.json", config.DealsFile)
	assert.Equal(t, 300, config.MaxDeals)
	assert.Equal(t, 90, config.RetentionDays)
	assert.Equal(t, 24*time.Hour, config.UpdateInterval)
	assert.Equal(t, []string{"53629917011"}, config.AmazonNodes)
	assert.Equal(t, "localhost:6379", config.RedisAddr)
	assert.Equal(t, "localhost:11211", config.MemcacheAddr)
	assert.NoError(t, config.Validate())

	// Test with environment variables
	os.Setenv("DEALS_FILE", "/tmp/deals.json")
	os.Setenv("MAX_DEALS", "100")
	os.Setenv("RETENTION_DAYS", "30")
	os.Setenv("UPDATE_INTERVAL_SECONDS", "3600")
	os.Setenv("AMAZON_NODES", "111, 222,333")
	os.Setenv("REDIS_ADDR", "redis.example.com:6379")

	config = LoadConfig()
	assert.Equal(t, "/tmp/deals.json", config.DealsFile)
	assert.Equal(t, 100, config.MaxDeals)
	assert.Equal(t, 30, config.RetentionDays)
	assert.Equal(t, time.Hour, config.UpdateInterval)
	assert.Equal(t, []string{"111", "222", "333"}, config.AmazonNodes)
	assert.Equal(t, "redis.example.com:6379", config.RedisAddr)

	// Clean up
	os.Unsetenv("DEALS_FILE")
	os.Unsetenv("MAX_DEALS")
	os.Unsetenv("RETENTION_DAYS")
	os.Unsetenv("UPDATE_INTERVAL_SECONDS")
	os.Unsetenv("AMAZON_NODES")
	os.Unsetenv("REDIS_ADDR")
}

func TestValidate(t *testing.T) {
	config := LoadConfig()
	assert.NoError(t, config.Validate())

	config.MaxDeals = 0
	assert.Error(t, config.Validate())

	config = LoadConfig()
	config.AmazonNodes = nil
	assert.Error(t, config.Validate())

	config = LoadConfig()
	config.RetentionDays = -1
	assert.Error(t, config.Validate())
}

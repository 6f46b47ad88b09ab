package publisher

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisPublisher(t *testing.T) {
	ctx := context.Background()
	pub := NewRedisPublisher(ctx, "localhost:6379", 0, "test_deals", 1, 100)
	defer pub.Close()

	// Create a subscriber to verify the message was published
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   0,
	})
	defer client.Close()

	// Test if Redis is available
	_, err := client.Ping(ctx).Result()
	if err != nil {
		t.Skip("Redis is not available, skipping test")
	}

	err = client.XGroupCreateMkStream(ctx, "test_deals:0", "test_group", "$").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		t.Fatal(err)
	}

	messages := make(chan string, 1)

	go func() {
		message, err := client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Streams:  []string{"test_deals:0", ">"},
			Group:    "test_group",
			Consumer: "test_consumer",
			Block:    0,
		}).Result()
		assert.NoError(t, err)
		messages <- message[0].Messages[0].Values["deals"].(string)
	}()

	time.Sleep(100 * time.Millisecond)

	err = pub.Publish("deals", []byte(`[{"slug":"B0TEST","store":"Amazon"}]`))
	assert.NoError(t, err)

	select {
	case msg := <-messages:
		// The message should be base64 encoded
		decoded, decErr := base64.StdEncoding.DecodeString(msg)
		assert.NoError(t, decErr)
		assert.Contains(t, string(decoded), "B0TEST")
	case <-time.After(1 * time.Second):
		t.Error("Timed out waiting for message")
	}

	// Trimming should not fail on a fresh stream
	assert.NoError(t, pub.TrimStreams())
}

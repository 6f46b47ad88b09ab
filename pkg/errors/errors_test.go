package errors

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewNetwork("Amazon:123", "failed to fetch node page", cause)

	assert.Contains(t, err.Error(), "network")
	assert.Contains(t, err.Error(), "Amazon:123")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
	assert.True(t, err.IsRetryable())
}

func TestWorkerErrorWithoutCause(t *testing.T) {
	err := NewValidation("merge", "scraped batch contains duplicate keys")

	assert.Contains(t, err.Error(), "validation")
	assert.Nil(t, err.Unwrap())
	assert.False(t, err.IsRetryable())
}

func TestRetryability(t *testing.T) {
	assert.True(t, NewStorage("store", "write failed", nil).IsRetryable())
	assert.False(t, NewRateLimit("Amazon:123", 5*time.Minute).IsRetryable())
	assert.False(t, NewParsing("Amazon:123", "bad markup", nil).IsRetryable())
	assert.False(t, NewConfiguration("MAX_DEALS must be positive", nil).IsRetryable())
}

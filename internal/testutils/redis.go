// Package testutils provides utilities for testing, including Redis test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/ahgbank/gbank-api/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		mr.Close()
	}

	return client, cleanup
}

// CreateTestRedisClientWithServer additionally exposes the miniredis server
// so tests can seed or inspect raw keys.
func CreateTestRedisClientWithServer(t *testing.T) (redis.Client, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		mr.Close()
	}

	return client, mr, cleanup
}

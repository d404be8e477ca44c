package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise/backend/config"
)

func TestNewRedisConnection(t *testing.T) {
	t.Run("empty url disables redis", func(t *testing.T) {
		r, err := NewRedisConnection(&config.RedisConfig{})
		require.NoError(t, err)
		assert.Nil(t, r)
		assert.Nil(t, r.Client())
		assert.NoError(t, r.Close())
	})

	t.Run("redis url", func(t *testing.T) {
		mr := miniredis.RunT(t)

		r, err := NewRedisConnection(&config.RedisConfig{URL: "redis://" + mr.Addr()})
		require.NoError(t, err)
		t.Cleanup(func() { _ = r.Close() })

		assert.NotNil(t, r.Client())
		assert.True(t, r.HealthCheck())

		mr.Close()
		assert.False(t, r.HealthCheck())
	})

	t.Run("bare address", func(t *testing.T) {
		mr := miniredis.RunT(t)

		r, err := NewRedisConnection(&config.RedisConfig{URL: mr.Addr()})
		require.NoError(t, err)
		t.Cleanup(func() { _ = r.Close() })
		assert.True(t, r.HealthCheck())
	})

	t.Run("unreachable server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, err := NewRedisConnection(&config.RedisConfig{URL: addr})
		assert.Error(t, err)
	})
}

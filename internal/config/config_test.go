package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Applies defaults for omitted fields", func(t *testing.T) {
		// Given: a config that only sets the strategy
		path := writeConfig(t, "strategy: smart\n")

		// When: loading it
		conf := MustLoad(path)

		// Then: defaults fill in the rest
		assert.Equal(t, "smart", conf.Strategy)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "6379", conf.Redis.Port)
		assert.Empty(t, conf.Redis.Host)
		assert.Empty(t, conf.ScoreboardPath)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "nope.yml"))
		})
	})
}

func TestRedis_GetRedisAddr(t *testing.T) {
	t.Run("Empty host disables the address", func(t *testing.T) {
		redis := Redis{Host: "", Port: "6379"}

		assert.Empty(t, redis.GetRedisAddr())
	})

	t.Run("Host and port combine", func(t *testing.T) {
		redis := Redis{Host: "localhost", Port: "6379"}

		assert.Equal(t, "localhost:6379", redis.GetRedisAddr())
	})
}

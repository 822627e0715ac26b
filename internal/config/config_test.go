package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file with only the port
		path := writeConfig(t, "http-port: \"9000\"\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the remaining values fall back to their defaults
		require.NoError(t, err)
		assert.Equal(t, "9000", conf.HTTPPort)
		assert.Equal(t, "info", conf.LogLevel)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, entity.DefaultRules(), conf.Rules())
	})

	t.Run("Reads the game section", func(t *testing.T) {
		path := writeConfig(t, `
game:
  win-length: 4
  min-columns: 4
  max-columns: 7
  min-rows: 4
  max-rows: 6
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, entity.Rules{WinLength: 4, MinColumns: 4, MaxColumns: 7, MinRows: 4, MaxRows: 6}, conf.Rules())
	})

	t.Run("Rejects inconsistent game bounds", func(t *testing.T) {
		path := writeConfig(t, `
game:
  min-columns: 6
  max-columns: 5
`)

		_, err := Load(path)

		require.ErrorIs(t, err, entity.ErrInvalidRules)
	})

	t.Run("Fails on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
	})
}

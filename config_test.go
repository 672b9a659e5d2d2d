package countdown

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "countdown.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := DefaultConfig()

		assert.Equal(t, 10*time.Second, cfg.Interval)
		assert.Equal(t, time.Second, cfg.Tick)
		assert.Equal(t, 10, cfg.Start)
		assert.Equal(t, 1000, cfg.Min)
		assert.Equal(t, 9000, cfg.Span)
		assert.False(t, cfg.ClampAtZero)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("loads over defaults", func(t *testing.T) {
		path := writeConfig(t, "interval: 5s\nstart: 5\nclamp_at_zero: true\nseed: 7\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 5*time.Second, cfg.Interval)
		assert.Equal(t, 5, cfg.Start)
		assert.True(t, cfg.ClampAtZero)
		assert.Equal(t, int64(7), cfg.Seed)
		assert.Equal(t, time.Second, cfg.Tick)
		assert.Equal(t, 9000, cfg.Span)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		for _, content := range []string{"", "# all defaults\n"} {
			cfg, err := LoadConfig(writeConfig(t, content))
			require.NoError(t, err)
			assert.Equal(t, DefaultConfig(), cfg)
		}
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "intervall: 5s\n"))
		assert.Error(t, err)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "span: 0\n"))
		assert.ErrorContains(t, err, "span")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("prints the first frame and stops", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		err := run(context.Background(), &options{
			format:   "text",
			seed:     1,
			runFor:   50 * time.Millisecond,
			logLevel: "warn",
		}, &stdout, &stderr)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.GreaterOrEqual(t, len(lines), 2)
		assert.True(t, strings.HasPrefix(lines[0], "Random number: "))
		assert.Equal(t, "New random number in: 10 seconds.", lines[1])
	})

	t.Run("rejects an unknown format", func(t *testing.T) {
		err := run(context.Background(), &options{format: "xml", logLevel: "warn"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("rejects an unknown log level", func(t *testing.T) {
		err := run(context.Background(), &options{format: "text", logLevel: "loud"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"config", "format", "seed", "for", "log-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

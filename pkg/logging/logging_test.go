package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "json", slog.LevelInfo)
		logger.Debug("hidden")
		logger.Info("storefront created", slog.String("owner", "alice"))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "storefront created", line["msg"])
		assert.Equal(t, "alice", line["owner"])
	})

	t.Run("Text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "text", slog.LevelWarn)
		logger.Info("hidden")
		logger.Warn("withdrawal failed")

		assert.Contains(t, buf.String(), "withdrawal failed")
		assert.NotContains(t, buf.String(), "hidden")
	})
}

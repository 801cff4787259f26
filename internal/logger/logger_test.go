package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"log/slog"
	"strings"
	"testing"

	"webpay_gateway/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSONRoutesStdLog(t *testing.T) {
	var buf bytes.Buffer
	setup(&buf, config.LoggerConfig{Level: "info", Format: "json"})

	log.Printf("[payment][gateway] verify start token=%s", "tok-1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Contains(t, entry["msg"], "verify start token=tok-1")
}

func TestSetup_ConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := setup(&buf, config.LoggerConfig{Level: "warn", Format: "console"})

	l.Info("hidden")
	l.Warn("shown", "order_ref", "ORD-1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "order_ref=ORD-1")
	assert.False(t, strings.Contains(out, "\x1b["), "no colors when not writing to a terminal")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

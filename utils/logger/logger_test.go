package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithOutput("warn", "text", &buf)

	log.Debug("debug line")
	log.Info("info line")
	log.Warn("warn line")
	log.Error("error line")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "warn line")
	assert.Contains(t, out, "error line")
}

func TestLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithOutput("chatty", "text", &buf)

	log.Debug("debug line")
	log.Info("info line")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.Contains(t, out, "info line")
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithOutput("info", "json", &buf)

	log.Infof("refreshed %d items", 42)

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, "refreshed 42 items")
}

func TestLoggerFormattedMethods(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithOutput("debug", "text", &buf)

	log.Debugf("vehicle %s", "VH-01")
	log.Warnf("retry %d", 3)
	log.Errorf("upstream %s failed", "maintenance")

	out := buf.String()
	assert.Contains(t, out, "vehicle VH-01")
	assert.Contains(t, out, "retry 3")
	assert.Contains(t, out, "upstream maintenance failed")
}

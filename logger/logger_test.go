package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epigrid/logger"
)

func env(kv map[string]string) func(string) string {
	return func(k string) string { return kv[k] }
}

// TestNewWith_Defaults falls back to info level and text output.
func TestNewWith_Defaults(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWith(env(nil), &buf)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

// TestNewWith_BadLevel ignores unparsable levels.
func TestNewWith_BadLevel(t *testing.T) {
	log := logger.NewWith(env(map[string]string{logger.EnvLevel: "loud"}), &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

// TestNewWith_JSON emits structured JSON with fields at debug level.
func TestNewWith_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWith(env(map[string]string{
		logger.EnvLevel:  "debug",
		logger.EnvFormat: "JSON",
	}), &buf)

	log.WithField("step", 3).Debug("step complete")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "step complete", line["msg"])
	assert.Equal(t, float64(3), line["step"])
	assert.Equal(t, "debug", line["level"])
}

// TestDiscard writes nothing.
func TestDiscard(t *testing.T) {
	log := logger.Discard()
	assert.False(t, log.IsLevelEnabled(logrus.ErrorLevel))
}

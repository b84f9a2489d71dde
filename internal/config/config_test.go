package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Serial.Port)
	assert.Equal(t, 38400, cfg.Serial.BaudRate)
	assert.Equal(t, 3*time.Second, cfg.Serial.ResponseTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Serial.PollInterval)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vuams.yaml")
	content := `
serial:
  port: COM7
  responseTimeout: 5s
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "COM7", cfg.Serial.Port)
	assert.Equal(t, 5*time.Second, cfg.Serial.ResponseTimeout)
	assert.Equal(t, 38400, cfg.Serial.BaudRate, "defaults fill unset keys")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("VUAMS_SERIAL_PORT", "/dev/ttyUSB3")
	t.Setenv("VUAMS_SERIAL_POLLINTERVAL", "50ms")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyUSB3", cfg.Serial.Port)
	assert.Equal(t, 50*time.Millisecond, cfg.Serial.PollInterval)
}

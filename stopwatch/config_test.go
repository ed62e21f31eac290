package stopwatch

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	fsys := fstest.MapFS{
		ConfigPath: {Data: []byte(`{"tick_interval_ms": 25, "lap_sound": false}`)},
	}

	cfg, err := LoadConfig(fsys)
	require.NoError(t, err)
	assert.Equal(t, 25*time.Millisecond, cfg.TickInterval())
	assert.False(t, cfg.LapSound)
	assert.Equal(t, DefaultConfig().WindowWidth, cfg.WindowWidth, "missing fields keep defaults")
	assert.Equal(t, 60*time.Millisecond, cfg.LapTone())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(fstest.MapFS{})
	assert.ErrorContains(t, err, "read stopwatch config")

	_, err = LoadConfig(fstest.MapFS{ConfigPath: {Data: []byte(`{`)}})
	assert.ErrorContains(t, err, "unmarshal stopwatch config")

	_, err = LoadConfig(fstest.MapFS{ConfigPath: {Data: []byte(`{"tick_interval_ms": 0}`)}})
	assert.ErrorContains(t, err, "tick_interval_ms must be positive")
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.LapToneHz = 0
	assert.Error(t, cfg.Validate())

	cfg.LapSound = false
	assert.NoError(t, cfg.Validate(), "tone settings are unused without the lap sound")

	cfg.WindowHeight = -1
	assert.Error(t, cfg.Validate())
}

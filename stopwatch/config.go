package stopwatch

import (
	"encoding/json"
	"fmt"
	"image/color"
	"time"
)

// AppContentReader defines the interface for reading content from the embedded file system.
type AppContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// Status is the run status of the stopwatch.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ConfigPath is the location of the stopwatch settings inside the assets FS.
const ConfigPath = "assets/stopwatch_config.json"

// UI constants
const (
	FontSizeDisplay float32 = 64.0 // Main display
	FontSizeMillis  float32 = 28.0 // Hundredths under the display
	FontSizeLap     float32 = 18.0 // Lap split
	FontSizeLapMeta float32 = 12.0 // Lap id and total

	// Dimensions
	LapListHeight = 300
	CornerRadius  = 16.0
)

var (
	// BackgroundColor is the base background color of the window.
	BackgroundColor = color.NRGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff}
	// FastestColor highlights the fastest lap split.
	FastestColor = color.NRGBA{R: 0x04, G: 0x78, B: 0x57, A: 0xff}
	// SlowestColor highlights the slowest lap split.
	SlowestColor = color.NRGBA{R: 0xb9, G: 0x1c, B: 0x1c, A: 0xff}
)

// Config holds the settings read from the embedded config file.
type Config struct {
	TickIntervalMs int  `json:"tick_interval_ms"`
	LapSound       bool `json:"lap_sound"`
	LapToneHz      int  `json:"lap_tone_hz"`
	LapToneMs      int  `json:"lap_tone_ms"`
	WindowWidth    int  `json:"window_width"`
	WindowHeight   int  `json:"window_height"`
}

// DefaultConfig returns the settings used when a field is absent from the file.
func DefaultConfig() Config {
	return Config{
		TickIntervalMs: 10,
		LapSound:       true,
		LapToneHz:      880,
		LapToneMs:      60,
		WindowWidth:    400,
		WindowHeight:   640,
	}
}

// TickInterval is the sampling cadence as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// LapTone is the length of the lap cue.
func (c Config) LapTone() time.Duration {
	return time.Duration(c.LapToneMs) * time.Millisecond
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.TickIntervalMs <= 0 {
		return fmt.Errorf("tick_interval_ms must be positive, got %d", c.TickIntervalMs)
	}
	if c.LapSound {
		if c.LapToneHz <= 0 {
			return fmt.Errorf("lap_tone_hz must be positive, got %d", c.LapToneHz)
		}
		if c.LapToneMs <= 0 {
			return fmt.Errorf("lap_tone_ms must be positive, got %d", c.LapToneMs)
		}
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// LoadConfig reads the stopwatch settings from the embedded JSON file. Fields
// missing from the file keep their DefaultConfig values.
func LoadConfig(reader AppContentReader) (Config, error) {
	cfg := DefaultConfig()

	data, err := reader.ReadFile(ConfigPath)
	if err != nil {
		return cfg, fmt.Errorf("read stopwatch config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal stopwatch config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid stopwatch config: %w", err)
	}
	return cfg, nil
}

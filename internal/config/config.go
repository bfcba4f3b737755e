// Package config loads the Mudra daemon configuration from defaults, an
// optional TOML file (~/.mudra/config.toml), and MUDRA_-prefixed
// environment variables, in that precedence order.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ayusman/mudra/internal/engine"
)

// Config is the full daemon configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Camera   CameraConfig   `mapstructure:"camera"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Plugins  PluginConfig   `mapstructure:"plugins"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	StaticDir string `mapstructure:"static_dir"`
}

// CameraConfig holds capture settings.
type CameraConfig struct {
	DeviceID        int     `mapstructure:"device_id"`
	MotionThreshold float64 `mapstructure:"motion_threshold"`
}

// PipelineConfig holds the idle/active frame-rate settings.
type PipelineConfig struct {
	IdleFPS       int `mapstructure:"idle_fps"`
	ActiveFPS     int `mapstructure:"active_fps"`
	IdleTimeoutMs int `mapstructure:"idle_timeout_ms"`
}

// EngineConfig holds the gesture engine knobs. Durations are in
// milliseconds in the config file; see ToEngine for the conversion.
type EngineConfig struct {
	MaxHands         int     `mapstructure:"max_hands"`
	StabilizerWindow int     `mapstructure:"stabilizer_window"`
	PositionHistory  int     `mapstructure:"position_history"`
	FireHoldMs       int     `mapstructure:"fire_hold_ms"`
	UIHoldMs         int     `mapstructure:"ui_hold_ms"`
	DropoutTimeoutMs int     `mapstructure:"dropout_timeout_ms"`
	PinchThreshold   float64 `mapstructure:"pinch_threshold"`
	SpreadThreshold  float64 `mapstructure:"spread_threshold"`
	SwipeVelocity    float64 `mapstructure:"swipe_velocity"`
	SwipeMaxDrift    float64 `mapstructure:"swipe_max_drift"`
	WaveWindow       int     `mapstructure:"wave_window"`
	WaveReversals    int     `mapstructure:"wave_reversals"`
	CircleWindow     int     `mapstructure:"circle_window"`
	CircleVariance   float64 `mapstructure:"circle_variance"`
	CircleMinRadius  float64 `mapstructure:"circle_min_radius"`
}

// PluginConfig holds plugin discovery and execution settings.
type PluginConfig struct {
	Dir       string `mapstructure:"dir"`
	TimeoutMs int    `mapstructure:"timeout_ms"`
}

// ToEngine converts the engine section into an engine.Config.
func (e EngineConfig) ToEngine() engine.Config {
	return engine.Config{
		MaxHands:         e.MaxHands,
		StabilizerWindow: e.StabilizerWindow,
		PositionHistory:  e.PositionHistory,
		FireHold:         time.Duration(e.FireHoldMs) * time.Millisecond,
		UIHold:           time.Duration(e.UIHoldMs) * time.Millisecond,
		DropoutTimeout:   time.Duration(e.DropoutTimeoutMs) * time.Millisecond,
		PinchThreshold:   e.PinchThreshold,
		SpreadThreshold:  e.SpreadThreshold,
		SwipeVelocity:    e.SwipeVelocity,
		SwipeMaxDrift:    e.SwipeMaxDrift,
		WaveWindow:       e.WaveWindow,
		WaveReversals:    e.WaveReversals,
		CircleWindow:     e.CircleWindow,
		CircleVariance:   e.CircleVariance,
		CircleMinRadius:  e.CircleMinRadius,
	}
}

// Dir returns the Mudra home directory (~/.mudra), creating it if
// needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".mudra")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

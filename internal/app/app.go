// Package app wires the capture, detection, gesture engine, plugin, and
// storage layers into the Mudra daemon's processing pipeline.
package app

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/plugin"
	"github.com/ayusman/mudra/internal/store"
)

// Pipeline timing defaults, used when Config leaves them zero.
const (
	// DefaultIdleFPS is the frame rate when no motion is detected.
	DefaultIdleFPS = 5
	// DefaultActiveFPS is the frame rate during active detection.
	DefaultActiveFPS = 15
	// DefaultIdleTimeout is how long without motion before switching back to idle.
	DefaultIdleTimeout = 2 * time.Second
	// DefaultPluginTimeoutMs bounds one plugin execution.
	DefaultPluginTimeoutMs = 5000
)

// thresholdsKey is the settings key under which tuned engine thresholds
// are persisted.
const thresholdsKey = "engine_thresholds"

// Publisher receives every per-frame engine result. The HTTP server's
// live hub implements it.
type Publisher interface {
	Publish(engine.Result)
}

// Config holds configuration options for the application.
type Config struct {
	Store           *store.Store
	PluginDir       string
	PluginTimeoutMs int
	CameraID        int
	MotionThresh    float64
	IdleFPS         int
	ActiveFPS       int
	IdleTimeout     time.Duration
	Engine          engine.Config
}

func (c *Config) applyDefaults() {
	if c.MotionThresh <= 0 {
		c.MotionThresh = 1.0 // 1% pixel change
	}
	if c.IdleFPS <= 0 {
		c.IdleFPS = DefaultIdleFPS
	}
	if c.ActiveFPS <= 0 {
		c.ActiveFPS = DefaultActiveFPS
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}
	if c.PluginTimeoutMs <= 0 {
		c.PluginTimeoutMs = DefaultPluginTimeoutMs
	}
}

// App is the main application that orchestrates gesture detection and
// action execution.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	pluginMgr  *plugin.Manager
	pluginExec *plugin.Executor
	publisher  Publisher
	onAction   func(*engine.Action)
	enabled    bool
	mu         sync.RWMutex
	stopCh     chan struct{}

	// engineMu serializes Ingest against live threshold updates from
	// the API. The engine itself is single-threaded.
	engineMu sync.Mutex
	engine   *engine.Engine
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	config.applyDefaults()

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(config.MotionThresh),
		engine:     engine.New(config.Engine),
		pluginMgr:  plugin.NewManager(config.PluginDir),
		pluginExec: plugin.NewExecutor(config.PluginTimeoutMs),
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	a.loadThresholds()

	return a
}

// loadThresholds applies threshold overrides previously persisted
// through SetThresholds.
func (a *App) loadThresholds() {
	if a.config.Store == nil {
		return
	}

	raw, err := a.config.Store.Settings().Get(thresholdsKey)
	if err != nil {
		return
	}

	var cfg engine.Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		log.Printf("Ignoring malformed stored thresholds: %v", err)
		return
	}
	a.engine.SetThresholds(cfg)
}

// SetEnabled enables or disables gesture detection.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture detection is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use. Must be called
// before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// SetPublisher sets the sink for per-frame engine results.
func (a *App) SetPublisher(p Publisher) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.publisher = p
}

// OnAction sets a callback invoked for every fired action, after the
// bound plugin has run. The tray uses it to show the last gesture.
func (a *App) OnAction(fn func(*engine.Action)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onAction = fn
}

// EngineConfig returns the engine's current configuration.
func (a *App) EngineConfig() engine.Config {
	a.engineMu.Lock()
	defer a.engineMu.Unlock()
	return a.engine.Config()
}

// SetThresholds applies new detection thresholds to the running engine
// and persists them so they survive restarts. Structural settings
// (hand count, window sizes) are unchanged.
func (a *App) SetThresholds(cfg engine.Config) {
	a.engineMu.Lock()
	a.engine.SetThresholds(cfg)
	applied := a.engine.Config()
	a.engineMu.Unlock()

	if a.config.Store == nil {
		return
	}
	raw, err := json.Marshal(applied)
	if err != nil {
		return
	}
	if err := a.config.Store.Settings().Set(thresholdsKey, string(raw)); err != nil {
		log.Printf("Failed to persist thresholds: %v", err)
	}
}

// ResetEngine clears all per-hand gesture state.
func (a *App) ResetEngine() {
	a.engineMu.Lock()
	defer a.engineMu.Unlock()
	a.engine.ResetAll()
}

// DiscoverPlugins scans the plugin directory and loads available plugins.
func (a *App) DiscoverPlugins() error {
	return a.pluginMgr.Discover()
}

// Start begins the detection pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(a.config.IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Detection pipeline started")
	return nil
}

// Stop halts the detection pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Detection pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// PluginManager returns the plugin manager.
func (a *App) PluginManager() *plugin.Manager {
	return a.pluginMgr
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options.
// The engine defaults mirror engine.DefaultConfig.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "mudra.db")

	v.SetDefault("server.addr", "127.0.0.1:8722")
	v.SetDefault("server.static_dir", "")

	v.SetDefault("camera.device_id", 0)
	v.SetDefault("camera.motion_threshold", 1.0) // percent of changed pixels

	v.SetDefault("pipeline.idle_fps", 5)
	v.SetDefault("pipeline.active_fps", 15)
	v.SetDefault("pipeline.idle_timeout_ms", 2000)

	v.SetDefault("engine.max_hands", 2)
	v.SetDefault("engine.stabilizer_window", 5)
	v.SetDefault("engine.position_history", 30)
	v.SetDefault("engine.fire_hold_ms", 1000)
	v.SetDefault("engine.ui_hold_ms", 500)
	v.SetDefault("engine.dropout_timeout_ms", 2000)
	v.SetDefault("engine.pinch_threshold", 30.0)
	v.SetDefault("engine.spread_threshold", 300.0)
	v.SetDefault("engine.swipe_velocity", 20.0)
	v.SetDefault("engine.swipe_max_drift", 10.0)
	v.SetDefault("engine.wave_window", 20)
	v.SetDefault("engine.wave_reversals", 3)
	v.SetDefault("engine.circle_window", 15)
	v.SetDefault("engine.circle_variance", 1000.0)
	v.SetDefault("engine.circle_min_radius", 30.0)

	v.SetDefault("plugins.dir", "plugins")
	v.SetDefault("plugins.timeout_ms", 5000)
}

package main

import (
	"fmt"
	"log"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	fmt.Println("Mudra - Hand Gesture Control")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	homeDir, err := config.Dir()
	if err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := cfg.Database.Path
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(homeDir, dbPath)
	}
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	pluginDir := cfg.Plugins.Dir
	if !filepath.IsAbs(pluginDir) {
		pluginDir = filepath.Join(homeDir, pluginDir)
	}

	a := app.New(app.Config{
		Store:           st,
		PluginDir:       pluginDir,
		PluginTimeoutMs: cfg.Plugins.TimeoutMs,
		CameraID:        cfg.Camera.DeviceID,
		MotionThresh:    cfg.Camera.MotionThreshold,
		IdleFPS:         cfg.Pipeline.IdleFPS,
		ActiveFPS:       cfg.Pipeline.ActiveFPS,
		IdleTimeout:     time.Duration(cfg.Pipeline.IdleTimeoutMs) * time.Millisecond,
		Engine:          cfg.Engine.ToEngine(),
	})

	if err := a.DiscoverPlugins(); err != nil {
		log.Printf("Plugin discovery failed: %v", err)
	}

	live := server.NewLiveHandler()
	a.SetPublisher(live)

	srv := server.New(server.Config{
		StaticDir: cfg.Server.StaticDir,
		Store:     st,
		Camera:    a.Camera(),
		Engine:    a,
		Live:      live,
	})

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.Server.Addr)
		if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Detection state survives restarts.
	enabled := true
	if v, err := st.Settings().Get("detection_enabled"); err == nil {
		enabled = v == "true"
	}
	a.SetEnabled(enabled)
	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start detection pipeline: %v", err)
	}

	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
		if !enabled {
			a.ResetEngine()
		}
		if err := st.Settings().Set("detection_enabled", strconv.FormatBool(enabled)); err != nil {
			log.Printf("Failed to persist detection state: %v", err)
		}
	})
	t.OnReset(func() {
		a.ResetEngine()
	})
	t.OnDashboard(func() {
		openBrowser("http://" + cfg.Server.Addr)
	})
	t.OnQuit(func() {
		a.Stop()
	})
	a.OnAction(func(act *engine.Action) {
		t.SetLastAction(string(act.Gesture))
	})

	// Blocks until Quit is selected from the menu.
	t.Run()
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}

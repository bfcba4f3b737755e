package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
)

// installEchoPlugin writes a shell-script plugin that records every
// request it receives and reports success.
func installEchoPlugin(t *testing.T, pluginDir, name string) string {
	t.Helper()

	dir := filepath.Join(pluginDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create plugin dir: %v", err)
	}

	manifest := `{"name": "` + name + `", "version": "1.0.0", "executable": "run.sh", "actions": ["press"]}`
	if err := os.WriteFile(filepath.Join(dir, "plugin.json"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	requestLog := filepath.Join(dir, "requests.log")
	script := "#!/bin/sh\ncat >> " + requestLog + "\necho '{\"success\": true}'\n"
	if err := os.WriteFile(filepath.Join(dir, "run.sh"), []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	return requestLog
}

func TestE2E_CompleteWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()

	s, err := store.New(filepath.Join(tmpDir, "data.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	pluginDir := filepath.Join(tmpDir, "plugins")
	requestLog := installEchoPlugin(t, pluginDir, "keyboard")

	application := app.New(app.Config{
		Store:     s,
		PluginDir: pluginDir,
	})
	application.SetDetector(detector.NewMockDetector())
	if err := application.DiscoverPlugins(); err != nil {
		t.Fatalf("DiscoverPlugins() error = %v", err)
	}

	live := server.NewLiveHandler()
	application.SetPublisher(live)

	srv := server.New(server.Config{
		Store:  s,
		Engine: application,
		Live:   live,
	})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	t.Run("CreateBinding", func(t *testing.T) {
		resp, err := client.Post(
			ts.URL+"/api/bindings",
			"application/json",
			strings.NewReader(`{"gesture": "open_hand", "plugin_name": "keyboard", "action_name": "press"}`),
		)
		if err != nil {
			t.Fatalf("create binding error = %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
		}
	})

	t.Run("HoldFiresBoundPlugin", func(t *testing.T) {
		// Hold an open hand well past the fire threshold.
		t0 := time.Now()
		for i := 0; i < 20; i++ {
			application.ProcessHands(
				[]detector.HandLandmarks{detector.OpenPalmLandmarks()},
				t0.Add(time.Duration(i)*100*time.Millisecond),
			)
		}

		data, err := os.ReadFile(requestLog)
		if err != nil {
			t.Fatalf("plugin was never executed: %v", err)
		}

		var req struct {
			Action  string `json:"action"`
			Gesture string `json:"gesture"`
			Tag     string `json:"tag"`
		}
		if err := json.Unmarshal(data, &req); err != nil {
			t.Fatalf("failed to decode plugin request: %v", err)
		}
		if req.Action != "press" {
			t.Errorf("plugin action = %q, want %q", req.Action, "press")
		}
		if req.Gesture != "open_hand" {
			t.Errorf("plugin gesture = %q, want %q", req.Gesture, "open_hand")
		}
		if req.Tag != "stop" {
			t.Errorf("plugin tag = %q, want %q", req.Tag, "stop")
		}
	})

	t.Run("EventVisibleViaAPI", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/events")
		if err != nil {
			t.Fatalf("list events error = %v", err)
		}
		defer resp.Body.Close()

		var listResp struct {
			Events []struct {
				Gesture    string `json:"gesture"`
				Tag        string `json:"tag"`
				PluginName string `json:"plugin_name"`
			} `json:"events"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
			t.Fatalf("failed to decode events: %v", err)
		}

		if len(listResp.Events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(listResp.Events))
		}
		if listResp.Events[0].Gesture != "open_hand" {
			t.Errorf("event gesture = %q, want %q", listResp.Events[0].Gesture, "open_hand")
		}
		if listResp.Events[0].PluginName != "keyboard" {
			t.Errorf("event plugin = %q, want %q", listResp.Events[0].PluginName, "keyboard")
		}
	})

	t.Run("APIStillWorks", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/health")
		if err != nil {
			t.Fatalf("health check error = %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("health check failed after pipeline activity")
		}
	})
}

func TestE2E_ThresholdTuning(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()

	application := app.New(app.Config{
		PluginDir: filepath.Join(tmpDir, "plugins"),
	})
	application.SetDetector(detector.NewMockDetector())

	srv := server.New(server.Config{Engine: application})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	req, err := http.NewRequest(
		http.MethodPut,
		ts.URL+"/api/gestures/config",
		strings.NewReader(`{"pinch_threshold": 42}`),
	)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("update config error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	if got := application.EngineConfig().PinchThreshold; got != 42 {
		t.Errorf("PinchThreshold = %f, want 42 after API update", got)
	}
}

func TestE2E_UnboundGestureRecorded(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()

	s, err := store.New(filepath.Join(tmpDir, "data.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	application := app.New(app.Config{
		Store:     s,
		PluginDir: filepath.Join(tmpDir, "plugins"),
	})
	application.SetDetector(detector.NewMockDetector())

	t0 := time.Now()
	for i := 0; i < 20; i++ {
		application.ProcessHands(
			[]detector.HandLandmarks{detector.FistLandmarks()},
			t0.Add(time.Duration(i)*100*time.Millisecond),
		)
	}

	events, err := s.Events().ListRecent(10)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Gesture != "fist" || events[0].Tag != "reset" {
		t.Errorf("event = %s/%s, want fist/reset", events[0].Gesture, events[0].Tag)
	}
	if events[0].PluginName != "" {
		t.Errorf("plugin name = %q, want empty for unbound gesture", events[0].PluginName)
	}
}

package app

import (
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"gocv.io/x/gocv"
)

func TestApp_IdleActiveModeSwitching(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	// Alternating black and white frames keep the motion gate tripped
	// on every read.
	black := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer black.Close()
	white := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer white.Close()
	white.SetTo(gocv.NewScalar(255, 255, 255, 0))

	mockCamera := capture.NewMockCamera([]*gocv.Mat{&black, &white}, true)

	a := New(Config{
		PluginDir:    t.TempDir(),
		MotionThresh: 0.5,
		IdleFPS:      5,
		ActiveFPS:    15,
		IdleTimeout:  500 * time.Millisecond,
	})
	a.SetCamera(mockCamera)
	a.SetDetector(detector.NewMockDetector())
	a.SetEnabled(true)

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer a.Stop()

	// The constant motion should push the pipeline into active mode.
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if a.Camera().FPS() == 15 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if got := a.Camera().FPS(); got != 15 {
		t.Fatalf("FPS = %d after sustained motion, want active rate 15", got)
	}

	// Freeze the scene: identical frames stop tripping the gate, and
	// after the idle timeout the pipeline must drop back.
	still := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer still.Close()
	mockCamera.SetFrames([]*gocv.Mat{&still})

	deadline = time.Now().Add(4 * time.Second)
	for time.Now().Before(deadline) {
		if a.Camera().FPS() == 5 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if got := a.Camera().FPS(); got != 5 {
		t.Fatalf("FPS = %d after the scene went still, want idle rate 5", got)
	}
}

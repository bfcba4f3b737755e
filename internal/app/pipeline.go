package app

import (
	"log"
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/plugin"
	"github.com/ayusman/mudra/internal/store"
	"github.com/google/uuid"
)

// runPipeline is the main detection loop. It reads frames at an idle
// rate until the motion gate trips, then runs hand detection at the
// active rate and feeds every detected hand into the gesture engine.
// After IdleTimeout without motion it drops back to the idle rate and
// clears engine state so stale holds cannot fire on the next approach.
func (a *App) runPipeline(stopCh chan struct{}) {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(a.config.IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					a.camera.SetFPS(a.config.ActiveFPS)
					ticker.Reset(time.Second / time.Duration(a.config.ActiveFPS))
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > a.config.IdleTimeout {
					activeMode = false
					a.camera.SetFPS(a.config.IdleFPS)
					ticker.Reset(time.Second / time.Duration(a.config.IdleFPS))
					a.ResetEngine()
					log.Println("Switched to idle mode")
				}
			}

			if !activeMode {
				frame.Close()
				continue
			}

			d := a.Detector()
			if d == nil {
				frame.Close()
				continue
			}

			hands, err := d.Detect(frame)
			frame.Close()
			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			a.ProcessHands(hands, time.Now())
		}
	}
}

// ProcessHands feeds one detection result into the engine, one frame
// per hand slot, and dispatches any fired actions. The pipeline calls
// it for every active frame; tests can call it directly.
func (a *App) ProcessHands(hands []detector.HandLandmarks, now time.Time) {
	maxHands := a.EngineConfig().MaxHands

	for i := range hands {
		if i >= maxHands {
			break
		}
		hand := &hands[i]

		a.engineMu.Lock()
		res, err := a.engine.Ingest(engine.HandFrame{
			Slot:       i,
			Handedness: engine.Handedness(hand.Handedness),
			Points:     hand.Points[:],
			Timestamp:  now,
		})
		a.engineMu.Unlock()
		if err != nil {
			log.Printf("Error ingesting hand %d: %v", i, err)
			continue
		}

		a.mu.RLock()
		pub := a.publisher
		a.mu.RUnlock()
		if pub != nil {
			pub.Publish(res)
		}

		if res.Action != nil {
			a.dispatchAction(res.Action)
		}
	}
}

// dispatchAction resolves the stored binding for a fired gesture,
// executes the bound plugin, and records the event.
func (a *App) dispatchAction(act *engine.Action) {
	log.Printf("Gesture fired: %s (tag %s, slot %d)", act.Gesture, act.Tag, act.Slot)

	var pluginName, actionName string

	if a.config.Store != nil {
		binding, err := a.config.Store.Bindings().GetByGesture(string(act.Gesture))
		if err != nil {
			log.Printf("Error looking up binding for %s: %v", act.Gesture, err)
		} else if binding != nil && binding.Enabled {
			pluginName = binding.PluginName
			actionName = binding.ActionName
			a.executeBinding(binding, act)
		}
	}

	a.recordEvent(act, pluginName, actionName)

	a.mu.RLock()
	onAction := a.onAction
	a.mu.RUnlock()
	if onAction != nil {
		onAction(act)
	}
}

func (a *App) executeBinding(binding *store.Binding, act *engine.Action) {
	plug, err := a.pluginMgr.Get(binding.PluginName)
	if err != nil {
		log.Printf("Plugin %q not found for gesture %s", binding.PluginName, act.Gesture)
		return
	}

	req := &plugin.Request{
		Action:  binding.ActionName,
		Gesture: string(act.Gesture),
		Tag:     act.Tag,
		Slot:    act.Slot,
		Config:  binding.Config,
	}

	resp, err := a.pluginExec.Execute(plug, req)
	if err != nil {
		log.Printf("Error executing plugin %s: %v", binding.PluginName, err)
		return
	}
	if !resp.Success {
		log.Printf("Plugin %s reported failure: %s", binding.PluginName, resp.Error)
	}
}

func (a *App) recordEvent(act *engine.Action, pluginName, actionName string) {
	if a.config.Store == nil {
		return
	}

	err := a.config.Store.Events().Insert(&store.Event{
		ID:         uuid.New().String(),
		Slot:       act.Slot,
		Gesture:    string(act.Gesture),
		Tag:        act.Tag,
		PluginName: pluginName,
		ActionName: actionName,
		FiredAt:    act.Timestamp,
	})
	if err != nil {
		log.Printf("Error recording event: %v", err)
	}
}

package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/engine"
)

// EngineController exposes the live engine configuration. *app.App
// satisfies it.
type EngineController interface {
	EngineConfig() engine.Config
	SetThresholds(engine.Config)
}

// GestureHandler serves the gesture vocabulary and the tunable engine
// thresholds.
type GestureHandler struct {
	controller EngineController
}

// NewGestureHandler creates a new GestureHandler backed by the given
// controller.
func NewGestureHandler(c EngineController) *GestureHandler {
	return &GestureHandler{controller: c}
}

type gestureInfo struct {
	Label string `json:"label"`
	Kind  string `json:"kind"`
	Tag   string `json:"tag,omitempty"`
}

type engineConfigResponse struct {
	MaxHands         int     `json:"max_hands"`
	StabilizerWindow int     `json:"stabilizer_window"`
	PositionHistory  int     `json:"position_history"`
	FireHoldMs       int64   `json:"fire_hold_ms"`
	UIHoldMs         int64   `json:"ui_hold_ms"`
	DropoutTimeoutMs int64   `json:"dropout_timeout_ms"`
	PinchThreshold   float64 `json:"pinch_threshold"`
	SpreadThreshold  float64 `json:"spread_threshold"`
	SwipeVelocity    float64 `json:"swipe_velocity"`
	SwipeMaxDrift    float64 `json:"swipe_max_drift"`
	WaveWindow       int     `json:"wave_window"`
	WaveReversals    int     `json:"wave_reversals"`
	CircleWindow     int     `json:"circle_window"`
	CircleVariance   float64 `json:"circle_variance"`
	CircleMinRadius  float64 `json:"circle_min_radius"`
}

type listGesturesResponse struct {
	Gestures []gestureInfo        `json:"gestures"`
	Config   engineConfigResponse `json:"config"`
}

// updateConfigRequest carries a partial threshold update. Absent fields
// leave the current value untouched.
type updateConfigRequest struct {
	PinchThreshold  *float64 `json:"pinch_threshold"`
	SpreadThreshold *float64 `json:"spread_threshold"`
	SwipeVelocity   *float64 `json:"swipe_velocity"`
	SwipeMaxDrift   *float64 `json:"swipe_max_drift"`
	WaveReversals   *int     `json:"wave_reversals"`
	CircleVariance  *float64 `json:"circle_variance"`
	CircleMinRadius *float64 `json:"circle_min_radius"`
}

func toConfigResponse(cfg engine.Config) engineConfigResponse {
	return engineConfigResponse{
		MaxHands:         cfg.MaxHands,
		StabilizerWindow: cfg.StabilizerWindow,
		PositionHistory:  cfg.PositionHistory,
		FireHoldMs:       cfg.FireHold.Milliseconds(),
		UIHoldMs:         cfg.UIHold.Milliseconds(),
		DropoutTimeoutMs: cfg.DropoutTimeout.Milliseconds(),
		PinchThreshold:   cfg.PinchThreshold,
		SpreadThreshold:  cfg.SpreadThreshold,
		SwipeVelocity:    cfg.SwipeVelocity,
		SwipeMaxDrift:    cfg.SwipeMaxDrift,
		WaveWindow:       cfg.WaveWindow,
		WaveReversals:    cfg.WaveReversals,
		CircleWindow:     cfg.CircleWindow,
		CircleVariance:   cfg.CircleVariance,
		CircleMinRadius:  cfg.CircleMinRadius,
	}
}

// ServeHTTP routes GET /api/gestures and PUT /api/gestures/config.
func (h *GestureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/gestures")
	path = strings.TrimPrefix(path, "/")

	switch {
	case path == "" && r.Method == http.MethodGet:
		h.list(w, r)
	case path == "config" && r.Method == http.MethodPut:
		h.updateConfig(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// list handles GET /api/gestures.
func (h *GestureHandler) list(w http.ResponseWriter, r *http.Request) {
	tags := engine.ActionTags()

	response := listGesturesResponse{
		Config: toConfigResponse(h.controller.EngineConfig()),
	}
	for _, l := range engine.StaticLabels() {
		response.Gestures = append(response.Gestures, gestureInfo{
			Label: string(l),
			Kind:  "static",
			Tag:   tags[l],
		})
	}
	for _, l := range engine.DynamicLabels() {
		response.Gestures = append(response.Gestures, gestureInfo{
			Label: string(l),
			Kind:  "dynamic",
			Tag:   tags[l],
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// updateConfig handles PUT /api/gestures/config. Only the tunable
// thresholds are writable; structural knobs need a restart.
func (h *GestureHandler) updateConfig(w http.ResponseWriter, r *http.Request) {
	var req updateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	cfg := h.controller.EngineConfig()
	if req.PinchThreshold != nil {
		if *req.PinchThreshold <= 0 {
			writeError(w, http.StatusBadRequest, "pinch_threshold must be positive")
			return
		}
		cfg.PinchThreshold = *req.PinchThreshold
	}
	if req.SpreadThreshold != nil {
		if *req.SpreadThreshold <= 0 {
			writeError(w, http.StatusBadRequest, "spread_threshold must be positive")
			return
		}
		cfg.SpreadThreshold = *req.SpreadThreshold
	}
	if req.SwipeVelocity != nil {
		if *req.SwipeVelocity <= 0 {
			writeError(w, http.StatusBadRequest, "swipe_velocity must be positive")
			return
		}
		cfg.SwipeVelocity = *req.SwipeVelocity
	}
	if req.SwipeMaxDrift != nil {
		if *req.SwipeMaxDrift <= 0 {
			writeError(w, http.StatusBadRequest, "swipe_max_drift must be positive")
			return
		}
		cfg.SwipeMaxDrift = *req.SwipeMaxDrift
	}
	if req.WaveReversals != nil {
		if *req.WaveReversals <= 0 {
			writeError(w, http.StatusBadRequest, "wave_reversals must be positive")
			return
		}
		cfg.WaveReversals = *req.WaveReversals
	}
	if req.CircleVariance != nil {
		if *req.CircleVariance <= 0 {
			writeError(w, http.StatusBadRequest, "circle_variance must be positive")
			return
		}
		cfg.CircleVariance = *req.CircleVariance
	}
	if req.CircleMinRadius != nil {
		if *req.CircleMinRadius <= 0 {
			writeError(w, http.StatusBadRequest, "circle_min_radius must be positive")
			return
		}
		cfg.CircleMinRadius = *req.CircleMinRadius
	}

	h.controller.SetThresholds(cfg)

	writeJSON(w, http.StatusOK, toConfigResponse(h.controller.EngineConfig()))
}

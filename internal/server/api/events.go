package api

import (
	"net/http"
	"strconv"

	"github.com/ayusman/mudra/internal/store"
)

// EventHandler serves the fired-gesture event log.
type EventHandler struct {
	store *store.Store
}

// NewEventHandler creates a new EventHandler with the given store.
func NewEventHandler(s *store.Store) *EventHandler {
	return &EventHandler{store: s}
}

type eventResponse struct {
	ID         string `json:"id"`
	Slot       int    `json:"slot"`
	Gesture    string `json:"gesture"`
	Tag        string `json:"tag"`
	PluginName string `json:"plugin_name,omitempty"`
	ActionName string `json:"action_name,omitempty"`
	FiredAt    string `json:"fired_at"`
}

type listEventsResponse struct {
	Events []eventResponse `json:"events"`
}

// ServeHTTP handles GET /api/events with optional limit and gesture
// query parameters.
func (h *EventHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	var (
		events []*store.Event
		err    error
	)
	if gesture := r.URL.Query().Get("gesture"); gesture != "" {
		events, err = h.store.Events().ListByGesture(gesture, limit)
	} else {
		events, err = h.store.Events().ListRecent(limit)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	response := listEventsResponse{
		Events: make([]eventResponse, 0, len(events)),
	}
	for _, e := range events {
		response.Events = append(response.Events, eventResponse{
			ID:         e.ID,
			Slot:       e.Slot,
			Gesture:    e.Gesture,
			Tag:        e.Tag,
			PluginName: e.PluginName,
			ActionName: e.ActionName,
			FiredAt:    e.FiredAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

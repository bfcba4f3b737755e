package store

import (
	"database/sql"
	"time"
)

// Event is one fired gesture action, as recorded in the event log.
type Event struct {
	ID         string
	Slot       int
	Gesture    string
	Tag        string
	PluginName string
	ActionName string
	FiredAt    time.Time
}

// EventRepository provides access to the fired event log.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Insert appends one event to the log.
func (r *EventRepository) Insert(e *Event) error {
	_, err := r.db.Exec(
		`INSERT INTO events (id, slot, gesture, tag, plugin_name, action_name, fired_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Slot, e.Gesture, e.Tag, e.PluginName, e.ActionName, e.FiredAt,
	)
	return err
}

// ListRecent returns up to limit events, newest first.
func (r *EventRepository) ListRecent(limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, slot, gesture, tag, plugin_name, action_name, fired_at
		 FROM events ORDER BY fired_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		err := rows.Scan(&e.ID, &e.Slot, &e.Gesture, &e.Tag, &e.PluginName, &e.ActionName, &e.FiredAt)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// ListByGesture returns up to limit events for one gesture label, newest first.
func (r *EventRepository) ListByGesture(gesture string, limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, slot, gesture, tag, plugin_name, action_name, fired_at
		 FROM events WHERE gesture = ? ORDER BY fired_at DESC, id LIMIT ?`,
		gesture, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		err := rows.Scan(&e.ID, &e.Slot, &e.Gesture, &e.Tag, &e.PluginName, &e.ActionName, &e.FiredAt)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Prune deletes events fired before the cutoff and reports how many
// rows were removed.
func (r *EventRepository) Prune(before time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM events WHERE fired_at < ?`, before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

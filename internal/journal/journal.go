// Package journal records every action of a vault session in SQLite.
//
// The journal is an audit trail for a single session. By default it lives
// in an in-memory database and is discarded when the session detaches; the
// inventory itself is never stored here.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Lifecycle errors.
var (
	ErrDetached        = errors.New("journal is detached")
	ErrAlreadyAttached = errors.New("journal is already attached")
)

// Actions recorded in the journal. They mirror the menu entries.
const (
	ActionAdd      = "add"
	ActionList     = "list"
	ActionAnalyze  = "analyze"
	ActionCooldown = "cooldown"
	ActionInvalid  = "invalid"
	ActionExit     = "exit"
)

// Event outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeNotFound    = "not_found"
	OutcomeNotCoolable = "not_coolable"
	OutcomeCollapse    = "collapse"
)

// Event is one journal row.
type Event struct {
	EventID   string    // UUID v7, generated by Record.
	SessionID string    // Set by Record.
	Seq       int64     // 1-based order within the session, set by Record.
	Action    string    // One of the Action constants.
	EntityID  string    // Target object id; empty for actions without one.
	Kind      string    // Target object kind; empty when unknown.
	Before    float64   // Stability before the action.
	After     float64   // Stability after the action.
	Outcome   string    // One of the Outcome constants.
	CreatedAt time.Time // Set by Record.
}

// Journal is a SQLite-backed event log for one session.
type Journal struct {
	mu        sync.Mutex
	attached  bool
	db        *sql.DB
	sessionID string
	seq       int64
}

// New creates a detached journal. Call Attach before recording.
func New() *Journal {
	return &Journal{}
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// Attach opens the database at dsn, applies the schema, and starts a new
// session row. Returns ErrAlreadyAttached if already attached.
func (j *Journal) Attach(dsn string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.attached {
		return ErrAlreadyAttached
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	for _, stmt := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	sessionID := newUUID()
	_, err = db.Exec(`INSERT INTO sessions (session_id, started_at) VALUES (?, ?)`,
		sessionID, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		db.Close()
		return fmt.Errorf("start session: %w", err)
	}

	j.db = db
	j.sessionID = sessionID
	j.seq = 0
	j.attached = true
	return nil
}

// Detach marks the session ended with outcome and closes the database.
// Detach is idempotent.
func (j *Journal) Detach(outcome string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.attached {
		return nil
	}

	_, updateErr := j.db.Exec(`UPDATE sessions SET ended_at = ?, outcome = ? WHERE session_id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), outcome, j.sessionID)
	closeErr := j.db.Close()

	j.db = nil
	j.attached = false
	j.sessionID = ""

	if updateErr != nil {
		return fmt.Errorf("end session: %w", updateErr)
	}
	return closeErr
}

// SessionID returns the id of the current session, or "" when detached.
func (j *Journal) SessionID() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.sessionID
}

// Record appends ev to the journal and returns the stored event with its
// generated fields filled in.
func (j *Journal) Record(ev Event) (Event, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.attached {
		return Event{}, ErrDetached
	}

	j.seq++
	ev.EventID = newUUID()
	ev.SessionID = j.sessionID
	ev.Seq = j.seq
	ev.CreatedAt = time.Now().UTC()

	_, err := j.db.Exec(`INSERT INTO events
        (event_id, session_id, seq, action, entity_id, kind, stability_before, stability_after, outcome, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.EventID, ev.SessionID, ev.Seq, ev.Action, ev.EntityID, ev.Kind,
		ev.Before, ev.After, ev.Outcome, ev.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		j.seq--
		return Event{}, fmt.Errorf("record event: %w", err)
	}
	return ev, nil
}

// Events returns the events of the current session in order.
func (j *Journal) Events() ([]Event, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.attached {
		return nil, ErrDetached
	}

	rows, err := j.db.Query(`SELECT event_id, session_id, seq, action, entity_id, kind,
        stability_before, stability_after, outcome, created_at
        FROM events WHERE session_id = ? ORDER BY seq`, j.sessionID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			ev        Event
			createdAt string
		)
		if err := rows.Scan(&ev.EventID, &ev.SessionID, &ev.Seq, &ev.Action, &ev.EntityID, &ev.Kind,
			&ev.Before, &ev.After, &ev.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

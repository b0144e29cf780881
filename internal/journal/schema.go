package journal

// Schema DDL for the journal tables.
const (
	createSessions = `CREATE TABLE IF NOT EXISTS sessions (
    session_id TEXT PRIMARY KEY,
    started_at TEXT NOT NULL,
    ended_at TEXT,
    outcome TEXT
);`

	createEvents = `CREATE TABLE IF NOT EXISTS events (
    event_id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    action TEXT NOT NULL,
    entity_id TEXT,
    kind TEXT,
    stability_before REAL,
    stability_after REAL,
    outcome TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);`
)

// Index DDL for common queries.
const (
	idxEventsSession = `CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id, seq);`
	idxEventsAction  = `CREATE INDEX IF NOT EXISTS idx_events_action ON events(session_id, action);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createSessions,
	createEvents,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxEventsSession,
	idxEventsAction,
}

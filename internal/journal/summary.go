package journal

import (
	"fmt"
	"sort"
	"strings"
)

// Summary counts the events of a session by action.
type Summary struct {
	Total    int
	ByAction map[string]int
}

// Summary aggregates the current session's events.
func (j *Journal) Summary() (Summary, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.attached {
		return Summary{}, ErrDetached
	}

	rows, err := j.db.Query(`SELECT action, COUNT(*) FROM events
        WHERE session_id = ? GROUP BY action`, j.sessionID)
	if err != nil {
		return Summary{}, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	s := Summary{ByAction: make(map[string]int)}
	for rows.Next() {
		var (
			action string
			n      int
		)
		if err := rows.Scan(&action, &n); err != nil {
			return Summary{}, fmt.Errorf("scan summary: %w", err)
		}
		s.ByAction[action] = n
		s.Total += n
	}
	return s, rows.Err()
}

// String renders the summary as "N actions (add=1, analyze=2)", with
// actions sorted by name.
func (s Summary) String() string {
	actions := make([]string, 0, len(s.ByAction))
	for a := range s.ByAction {
		actions = append(actions, a)
	}
	sort.Strings(actions)

	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		parts = append(parts, fmt.Sprintf("%s=%d", a, s.ByAction[a]))
	}
	return fmt.Sprintf("%d actions (%s)", s.Total, strings.Join(parts, ", "))
}

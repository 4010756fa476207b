package sqlite

import (
	"fmt"
	"time"
)

// Timestamps are stored as fixed-width UTC strings so that ORDER BY on
// the column is chronological. The store writes every timestamp itself;
// nothing relies on SQLite's CURRENT_TIMESTAMP.
const timeLayout = "2006-01-02 15:04:05.000000"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored timestamp %q: %w", s, err)
	}
	return t, nil
}

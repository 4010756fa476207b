package sqlite

import (
	"testing"
	"time"
)

func TestTimeRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 34, 56, 789000000, time.UTC)

	formatted := formatTime(now)
	parsed, err := parseTime(formatted)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !parsed.Equal(now) {
		t.Fatalf("round trip lost precision: %v != %v", parsed, now)
	}
}

func TestTimeFormatFixedWidth(t *testing.T) {
	// Lexicographic ordering of stored timestamps must match
	// chronological ordering, which requires a fixed-width encoding.
	times := []time.Time{
		time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		time.Date(2026, 1, 2, 3, 4, 5, 500000000, time.UTC),
		time.Date(2026, 1, 2, 3, 4, 5, 123000000, time.UTC),
		time.Date(2026, 1, 2, 3, 4, 5, 120000000, time.UTC),
	}

	width := len(formatTime(times[0]))
	for i := 0; i < len(times); i++ {
		if got := len(formatTime(times[i])); got != width {
			t.Fatalf("timestamp width varies: %d vs %d", got, width)
		}
		for j := 0; j < len(times); j++ {
			lexLess := formatTime(times[i]) < formatTime(times[j])
			if lexLess != times[i].Before(times[j]) {
				t.Fatalf("lexical order disagrees with time order for %v vs %v", times[i], times[j])
			}
		}
	}
}

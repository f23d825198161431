package helpers

import "time"

// TestNow returns a fixed time (2026-03-02 09:30:00 UTC) for deterministic tests
// (registry view refresh windows, lease timestamps).
func TestNow() time.Time {
	return time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
}

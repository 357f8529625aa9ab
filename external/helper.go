package external

import (
	"strconv"
	"strings"
	"time"
)

const wallClockLayout = "15:04"

// ResolveWallClock anchors an "HH:MM" display time to the given reference
// day. Returns nil unless the string splits into exactly two integer fields;
// a nil here degrades the record's date fields, never the record itself.
func ResolveWallClock(hhmm string, referenceDay time.Time) *time.Time {
	fields := strings.Split(hhmm, ":")
	if len(fields) != 2 {
		return nil
	}
	hour, errH := strconv.Atoi(strings.TrimSpace(fields[0]))
	minute, errM := strconv.Atoi(strings.TrimSpace(fields[1]))
	if errH != nil || errM != nil {
		return nil
	}
	resolved := time.Date(referenceDay.Year(), referenceDay.Month(), referenceDay.Day(), hour, minute, 0, 0, referenceDay.Location())
	return &resolved
}

// ResolveInstant parses an ISO-8601 instant with fractional seconds, the
// native representation of the NHV feed.
func ResolveInstant(value string) *time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil
	}
	return &parsed
}

// WallClockDisplay renders an instant back to the shared "HH:MM" display
// form, falling back to the N/A sentinel when the instant never resolved.
func WallClockDisplay(t *time.Time) string {
	if t == nil {
		return notAvailable
	}
	return t.Format(wallClockLayout)
}

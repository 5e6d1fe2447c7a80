// Package format holds small presentation helpers shared by commands.
package format

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Duration renders d as h:mm:ss, the shape Toggl itself uses for totals.
func Duration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

// Clock renders t as a local HH:MM wall-clock time.
func Clock(t time.Time) string {
	return t.Local().Format("15:04")
}

// StartStop renders an entry's start/stop pair. A missing stop marks a
// running entry; a missing start yields an empty string.
func StartStop(start, stop *time.Time) string {
	if start == nil {
		return ""
	}
	if stop == nil {
		return fmt.Sprintf("%s - now", Clock(*start))
	}
	return fmt.Sprintf("%s - %s", Clock(*start), Clock(*stop))
}

// Truncate shortens s to at most maxLen runes, appending "..." when cut.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}

package session

import "fmt"

// FormatClock renders a number of seconds as "MM:SS". Durations of 100 minutes
// or more simply widen the minutes field.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

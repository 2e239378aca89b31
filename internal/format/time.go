// Package format renders values for console output.
package format

import "time"

// Clock returns the layout for a time of day. mode is "12h" or "24h";
// anything else means 24h.
func Clock(mode string, seconds bool) string {
	switch {
	case mode == "12h" && seconds:
		return "3:04:05 PM"
	case mode == "12h":
		return "3:04 PM"
	case seconds:
		return "15:04:05"
	default:
		return "15:04"
	}
}

// Stamp formats t for a listing read at now: the time alone for the same
// day, the date and time for the same year, and the full date otherwise.
func Stamp(t, now time.Time, mode string) string {
	clock := Clock(mode, true)

	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()

	switch {
	case ty == ny && tm == nm && td == nd:
		return t.Format(clock)
	case ty == ny:
		return t.Format("Jan 02 " + clock)
	default:
		return t.Format("2006-01-02 " + clock)
	}
}

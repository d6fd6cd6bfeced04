package analysis

import "fmt"

const (
	// MinutesPerDay is the number of minutes in a calendar day.
	MinutesPerDay = 1440
	// EndOfDay is the minute offset used when a window declares no end time.
	EndOfDay = 1439
)

// ParseClock converts a wall-clock literal of the fixed form HH:MM into a
// minute offset from midnight (0-1439). Malformed input returns a
// *FormatError carrying the literal; it never defaults to midnight because a
// silent zero would corrupt every downstream overlap and duration figure.
func ParseClock(value string) (int, error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, &FormatError{Value: value}
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if value[i] < '0' || value[i] > '9' {
			return 0, &FormatError{Value: value}
		}
	}
	hours := int(value[0]-'0')*10 + int(value[1]-'0')
	minutes := int(value[3]-'0')*10 + int(value[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, &FormatError{Value: value}
	}
	return hours*60 + minutes, nil
}

// FormatClock renders a minute offset back into HH:MM.
func FormatClock(offset int) string {
	return fmt.Sprintf("%02d:%02d", offset/60, offset%60)
}

// ClampDuration returns the minutes between start and end, clamped to zero.
// The schedule model has no overnight events, so a negative raw difference is
// a zero-length event rather than a wrap past midnight.
func ClampDuration(start, end int) int {
	if end < start {
		return 0
	}
	return end - start
}

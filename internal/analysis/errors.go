package analysis

import "fmt"

// FormatError reports a wall-clock literal that does not match the HH:MM form.
// The offending literal is preserved so callers can surface it verbatim.
type FormatError struct {
	Value string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid time %q: expected HH:MM", e.Value)
}

// RangeError reports an interval whose end precedes its start.
type RangeError struct {
	Start string
	End   string
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range: end %q precedes start %q", e.End, e.Start)
}

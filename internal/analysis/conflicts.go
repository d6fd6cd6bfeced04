package analysis

import "sort"

// timedEvent is an Event with its clock literals resolved to minute offsets.
type timedEvent struct {
	Event
	start int
	end   int
}

func (t timedEvent) duration() int {
	return ClampDuration(t.start, t.end)
}

// resolveTimes parses every event's clock literals once, up front, so a
// malformed literal surfaces before any interval arithmetic runs.
func resolveTimes(events []Event) ([]timedEvent, error) {
	timed := make([]timedEvent, 0, len(events))
	for _, ev := range events {
		start, err := ParseClock(ev.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := ParseClock(ev.EndTime)
		if err != nil {
			return nil, err
		}
		timed = append(timed, timedEvent{Event: ev, start: start, end: end})
	}
	return timed, nil
}

// groupByDate partitions events into per-date groups with a stable in-group
// order (start, end, ID) and returns the date keys sorted ascending.
func groupByDate(events []timedEvent) (map[string][]timedEvent, []string) {
	groups := make(map[string][]timedEvent)
	for _, ev := range events {
		key := DateKey(ev.Date)
		groups[key] = append(groups[key], ev)
	}
	keys := make([]string, 0, len(groups))
	for key, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			if group[i].start != group[j].start {
				return group[i].start < group[j].start
			}
			if group[i].end != group[j].end {
				return group[i].end < group[j].end
			}
			return group[i].ID < group[j].ID
		})
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return groups, keys
}

// Overlap returns the positive intersection, in minutes, of two half-open
// minute intervals.
func Overlap(startA, endA, startB, endB int) int {
	lo := startA
	if startB > lo {
		lo = startB
	}
	hi := endA
	if endB < hi {
		hi = endB
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// ClassifySeverity ranks an overlap given the two events' durations. The
// checks run in fixed priority order and the first match wins.
func ClassifySeverity(overlapMinutes, durationA, durationB int) Severity {
	shorter := durationA
	if durationB < shorter {
		shorter = durationB
	}
	switch {
	case overlapMinutes >= shorter:
		// One event sits entirely inside the conflict window.
		return SeverityCritical
	case overlapMinutes > 60:
		return SeverityHigh
	case overlapMinutes >= 30:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// ScoreImpact converts a conflict into its (negative) contribution to the
// balance score. Longer overlaps within the same severity bucket cost
// proportionally more: one base unit per started 30-minute block.
func ScoreImpact(severity Severity, overlapMinutes int) int {
	var base int
	switch severity {
	case SeverityCritical:
		base = -15
	case SeverityHigh:
		base = -10
	case SeverityMedium:
		base = -5
	default:
		base = -2
	}
	blocks := (overlapMinutes + 29) / 30
	if blocks < 1 {
		blocks = 1
	}
	return base * blocks
}

func conflictSuggestion(severity Severity) string {
	switch severity {
	case SeverityCritical:
		return "one event is fully blocked by the other, reschedule or drop one of them"
	case SeverityHigh:
		return "the overlap is longer than an hour, move one event to a free slot"
	case SeverityMedium:
		return "shorten one event or shift its start to clear the overlap"
	default:
		return "minor overlap, consider a small start-time adjustment"
	}
}

// DetectConflicts finds every overlapping unordered pair of events sharing a
// calendar date. Events on different dates never conflict. The result is
// ordered by date, then by the in-group pair order, so repeated runs over the
// same snapshot produce identical output.
func DetectConflicts(events []Event) ([]Conflict, error) {
	timed, err := resolveTimes(events)
	if err != nil {
		return nil, err
	}
	groups, keys := groupByDate(timed)

	var conflicts []Conflict
	for _, key := range keys {
		group := groups[key]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				overlap := Overlap(a.start, a.end, b.start, b.end)
				if overlap <= 0 {
					continue
				}
				severity := ClassifySeverity(overlap, a.duration(), b.duration())
				conflicts = append(conflicts, Conflict{
					Date:           key,
					EventA:         ConflictEvent{ID: a.ID, Title: a.Title, Start: a.StartTime, End: a.EndTime},
					EventB:         ConflictEvent{ID: b.ID, Title: b.Title, Start: b.StartTime, End: b.EndTime},
					OverlapMinutes: overlap,
					Severity:       severity,
					Suggestion:     conflictSuggestion(severity),
					ScoreImpact:    ScoreImpact(severity, overlap),
				})
			}
		}
	}
	return conflicts, nil
}

package analysis

import "sort"

type interval struct {
	start int
	end   int
}

// mergeIntervals collapses overlapping or touching busy intervals. Without
// the merge, two overlapping events would split one real gap into two with a
// false boundary between them.
func mergeIntervals(intervals []interval) []interval {
	if len(intervals) == 0 {
		return nil
	}
	sort.Slice(intervals, func(i, j int) bool {
		if intervals[i].start != intervals[j].start {
			return intervals[i].start < intervals[j].start
		}
		return intervals[i].end < intervals[j].end
	})
	merged := []interval{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if iv.start <= last.end {
			if iv.end > last.end {
				last.end = iv.end
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// gaps folds the merged busy intervals into the free gaps they leave inside
// [winStart, winEnd).
func gaps(winStart, winEnd int, busy []interval) []interval {
	var free []interval
	cursor := winStart
	for _, iv := range busy {
		if iv.end <= cursor {
			continue
		}
		if iv.start >= winEnd {
			break
		}
		if iv.start > cursor {
			free = append(free, interval{start: cursor, end: min(iv.start, winEnd)})
		}
		if iv.end > cursor {
			cursor = iv.end
		}
	}
	if cursor < winEnd {
		free = append(free, interval{start: cursor, end: winEnd})
	}
	return free
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ComputeFreeSlots subtracts each availability window's busy intervals (the
// events falling on its weekday) from the window, keeping only gaps long
// enough to be usable. Slots are returned longest first across all windows.
func ComputeFreeSlots(windows []Window, events []Event, cfg Config) ([]FreeSlot, error) {
	cfg = cfg.withDefaults()
	timed, err := resolveTimes(events)
	if err != nil {
		return nil, err
	}

	byWeekday := make(map[string][]interval)
	for _, ev := range timed {
		if ev.duration() == 0 {
			continue
		}
		day := ev.Date.Weekday().String()
		byWeekday[day] = append(byWeekday[day], interval{start: ev.start, end: ev.end})
	}

	var slots []FreeSlot
	for _, win := range windows {
		winStart, err := ParseClock(win.StartTime)
		if err != nil {
			return nil, err
		}
		winEnd := EndOfDay
		if win.EndTime != "" {
			winEnd, err = ParseClock(win.EndTime)
			if err != nil {
				return nil, err
			}
		}
		if winEnd < winStart {
			return nil, &RangeError{Start: win.StartTime, End: win.EndTime}
		}

		weekday := win.Weekday.String()
		busy := mergeIntervals(byWeekday[weekday])
		for _, gap := range gaps(winStart, winEnd, busy) {
			if gap.end-gap.start < cfg.MinSlotMinutes {
				continue
			}
			slots = append(slots, FreeSlot{
				Weekday:       weekday,
				Start:         FormatClock(gap.start),
				End:           FormatClock(gap.end),
				DurationHours: float64(gap.end-gap.start) / 60,
			})
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].DurationHours != slots[j].DurationHours {
			return slots[i].DurationHours > slots[j].DurationHours
		}
		if slots[i].Weekday != slots[j].Weekday {
			return slots[i].Weekday < slots[j].Weekday
		}
		return slots[i].Start < slots[j].Start
	})
	return slots, nil
}

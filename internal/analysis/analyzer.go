package analysis

import "time"

// Analyzer runs the full schedule analysis. It holds only configuration, so
// one instance serves any number of concurrent calls.
type Analyzer struct {
	cfg Config
}

// New constructs an Analyzer, filling unset thresholds with the defaults.
func New(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg.withDefaults()}
}

// Config returns the thresholds the analyzer runs with.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Analyze inspects one snapshot of events and availability windows over a
// date range and assembles the report. Conflict and overload detection look
// at every event present; aggregate statistics and free slots only consider
// events dated inside [rangeStart, rangeEnd]. The computation is pure and
// deterministic: the same snapshot always yields an identical report.
func (a *Analyzer) Analyze(events []Event, windows []Window, rangeStart, rangeEnd time.Time) (*Report, error) {
	startKey, endKey := DateKey(rangeStart), DateKey(rangeEnd)
	if endKey < startKey {
		return nil, &RangeError{Start: startKey, End: endKey}
	}

	inRange := make([]Event, 0, len(events))
	for _, ev := range events {
		key := DateKey(ev.Date)
		if key >= startKey && key <= endKey {
			inRange = append(inRange, ev)
		}
	}

	conflicts, err := DetectConflicts(events)
	if err != nil {
		return nil, err
	}
	overloaded, err := DetectOverloadedDays(events, a.cfg)
	if err != nil {
		return nil, err
	}
	slots, err := ComputeFreeSlots(windows, inRange, a.cfg)
	if err != nil {
		return nil, err
	}
	stats, err := AggregateStats(inRange, rangeStart, rangeEnd, a.cfg)
	if err != nil {
		return nil, err
	}

	return &Report{
		RangeStart:     startKey,
		RangeEnd:       endKey,
		Stats:          stats,
		Conflicts:      conflicts,
		OverloadedDays: overloaded,
		FreeSlots:      slots,
		Balance:        ScoreBalance(stats, conflicts, overloaded, a.cfg),
	}, nil
}

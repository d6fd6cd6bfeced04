package analysis

import (
	"math"
	"time"
)

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// AggregateStats totals how the waking hours of [rangeStart, rangeEnd] were
// allocated. Classes and deadlines count as study, paid work as work, the
// rest of the category set as other activity; rest is whatever waking time
// the events leave uncovered. Events dated outside the range are ignored.
func AggregateStats(events []Event, rangeStart, rangeEnd time.Time, cfg Config) (TimeStats, error) {
	cfg = cfg.withDefaults()
	startKey, endKey := DateKey(rangeStart), DateKey(rangeEnd)
	if endKey < startKey {
		return TimeStats{}, &RangeError{Start: startKey, End: endKey}
	}

	timed, err := resolveTimes(events)
	if err != nil {
		return TimeStats{}, err
	}

	var workMin, studyMin, otherMin int
	for _, ev := range timed {
		key := DateKey(ev.Date)
		if key < startKey || key > endKey {
			continue
		}
		switch ev.Category {
		case CategoryWork:
			workMin += ev.duration()
		case CategoryClass, CategoryDeadline:
			studyMin += ev.duration()
		default:
			otherMin += ev.duration()
		}
	}

	days := int(rangeEnd.Sub(rangeStart).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	wakingMin := float64(days) * cfg.WakingHoursPerDay * 60
	restMin := wakingMin - float64(workMin+studyMin+otherMin)
	if restMin < 0 {
		restMin = 0
	}

	pct := func(minutes float64) float64 {
		if wakingMin <= 0 {
			return 0
		}
		return math.Round(minutes / wakingMin * 10000) / 100
	}

	return TimeStats{
		WorkHours:    roundHours(float64(workMin) / 60),
		StudyHours:   roundHours(float64(studyMin) / 60),
		RestHours:    roundHours(restMin / 60),
		OtherHours:   roundHours(float64(otherMin) / 60),
		WorkPercent:  pct(float64(workMin)),
		StudyPercent: pct(float64(studyMin)),
		RestPercent:  pct(restMin),
		OtherPercent: pct(float64(otherMin)),
	}, nil
}

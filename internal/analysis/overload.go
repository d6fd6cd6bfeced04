package analysis

import "sort"

func overloadLevel(totalHours float64, cfg Config) OverloadLevel {
	switch {
	case totalHours >= cfg.OverloadCriticalHours:
		return OverloadCritical
	case totalHours >= cfg.OverloadHighHours:
		return OverloadHigh
	default:
		return OverloadModerate
	}
}

func overloadRecommendations(level OverloadLevel, hasWork, hasClass bool) []string {
	var recs []string
	switch level {
	case OverloadCritical:
		recs = append(recs, "this day is overbooked, drop or shorten at least one commitment")
	case OverloadHigh:
		recs = append(recs, "move one commitment to a lighter day")
	default:
		recs = append(recs, "keep the evening free to recover")
	}
	if hasWork && hasClass {
		recs = append(recs, "alternate work and study with a buffer between them")
	}
	return recs
}

// DetectOverloadedDays sums each date's busy minutes and reports the dates
// whose total crosses the overload threshold, worst day first. It regroups
// the events itself rather than sharing state with the conflict detector so
// the two can run concurrently over the same snapshot.
func DetectOverloadedDays(events []Event, cfg Config) ([]OverloadedDay, error) {
	cfg = cfg.withDefaults()
	timed, err := resolveTimes(events)
	if err != nil {
		return nil, err
	}
	groups, keys := groupByDate(timed)

	var days []OverloadedDay
	for _, key := range keys {
		group := groups[key]
		total := 0
		hasWork, hasClass := false, false
		titles := make([]string, 0, len(group))
		for _, ev := range group {
			total += ev.duration()
			titles = append(titles, ev.Title)
			switch ev.Category {
			case CategoryWork:
				hasWork = true
			case CategoryClass:
				hasClass = true
			}
		}
		totalHours := float64(total) / 60
		if totalHours < cfg.OverloadThresholdHours {
			continue
		}
		level := overloadLevel(totalHours, cfg)
		days = append(days, OverloadedDay{
			Date:            key,
			Weekday:         group[0].Date.Weekday().String(),
			TotalMinutes:    total,
			TotalHours:      totalHours,
			Events:          titles,
			Level:           level,
			Recommendations: overloadRecommendations(level, hasWork, hasClass),
		})
	}

	sort.SliceStable(days, func(i, j int) bool {
		if days[i].TotalMinutes != days[j].TotalMinutes {
			return days[i].TotalMinutes > days[j].TotalMinutes
		}
		return days[i].Date < days[j].Date
	})
	return days, nil
}

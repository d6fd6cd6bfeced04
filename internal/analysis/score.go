package analysis

// ratioAdjustment scores the work/study balance. The denominator is floored
// at one hour so a study-free week does not divide by zero.
func ratioAdjustment(workHours, studyHours float64) int {
	denom := studyHours
	if denom < 1 {
		denom = 1
	}
	ratio := workHours / denom
	switch {
	case ratio > 2:
		return -15
	case ratio >= 0.6 && ratio <= 1.2:
		return +10
	case ratio < 0.3:
		return -10
	default:
		return 0
	}
}

func restAdjustment(restPercent float64, cfg Config) int {
	switch {
	case restPercent < cfg.RestSeverePercent:
		return -30
	case restPercent < cfg.RestLowPercent:
		return -20
	case restPercent < cfg.RestShortPercent:
		return -10
	case restPercent <= cfg.RestIdealMax:
		return +10
	default:
		return 0
	}
}

func overloadPenalty(days []OverloadedDay) int {
	total := 0
	for _, day := range days {
		switch day.Level {
		case OverloadCritical:
			total -= 15
		case OverloadHigh:
			total -= 10
		default:
			total -= 5
		}
	}
	return total
}

// ScoreBalance folds aggregate statistics, conflicts, and overloaded days
// into one bounded score. The unclamped breakdown is returned alongside the
// clamped total so callers can audit every component.
func ScoreBalance(stats TimeStats, conflicts []Conflict, overloaded []OverloadedDay, cfg Config) BalanceScore {
	cfg = cfg.withDefaults()

	conflictPenalty := 0
	for _, c := range conflicts {
		conflictPenalty += c.ScoreImpact
	}

	bonus := 0
	if stats.OtherHours >= 5 {
		bonus += 5
	}
	if len(conflicts) == 0 {
		bonus += 10
	}

	breakdown := ScoreBreakdown{
		Base:            100,
		WorkStudyRatio:  ratioAdjustment(stats.WorkHours, stats.StudyHours),
		Rest:            restAdjustment(stats.RestPercent, cfg),
		ConflictPenalty: conflictPenalty,
		OverloadPenalty: overloadPenalty(overloaded),
		Bonus:           bonus,
	}

	score := breakdown.Total()
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return BalanceScore{Score: score, Breakdown: breakdown}
}

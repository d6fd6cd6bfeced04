package analysis

// Config carries the engine's tunable thresholds. The defaults reproduce the
// behaviour the product shipped with; none of the cutoffs is derived from a
// documented model, so they stay configuration rather than constants.
type Config struct {
	// OverloadThresholdHours is the busy total at which a day counts as
	// overloaded at all.
	OverloadThresholdHours float64
	// OverloadHighHours and OverloadCriticalHours split overloaded days
	// into high and critical brackets.
	OverloadHighHours     float64
	OverloadCriticalHours float64
	// MinSlotMinutes discards free gaps too short to be usable.
	MinSlotMinutes int
	// Rest percentage cutoffs, strictly ascending.
	RestSeverePercent float64
	RestLowPercent    float64
	RestShortPercent  float64
	RestIdealMax      float64
	// WakingHoursPerDay sizes the time budget rest is measured against.
	WakingHoursPerDay float64
}

// DefaultConfig returns the shipped thresholds.
func DefaultConfig() Config {
	return Config{
		OverloadThresholdHours: 10,
		OverloadHighHours:      12,
		OverloadCriticalHours:  14,
		MinSlotMinutes:         30,
		RestSeverePercent:      20,
		RestLowPercent:         30,
		RestShortPercent:       35,
		RestIdealMax:           45,
		WakingHoursPerDay:      16,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.OverloadThresholdHours <= 0 {
		c.OverloadThresholdHours = d.OverloadThresholdHours
	}
	if c.OverloadHighHours <= 0 {
		c.OverloadHighHours = d.OverloadHighHours
	}
	if c.OverloadCriticalHours <= 0 {
		c.OverloadCriticalHours = d.OverloadCriticalHours
	}
	if c.MinSlotMinutes <= 0 {
		c.MinSlotMinutes = d.MinSlotMinutes
	}
	if c.RestSeverePercent <= 0 {
		c.RestSeverePercent = d.RestSeverePercent
	}
	if c.RestLowPercent <= 0 {
		c.RestLowPercent = d.RestLowPercent
	}
	if c.RestShortPercent <= 0 {
		c.RestShortPercent = d.RestShortPercent
	}
	if c.RestIdealMax <= 0 {
		c.RestIdealMax = d.RestIdealMax
	}
	if c.WakingHoursPerDay <= 0 {
		c.WakingHoursPerDay = d.WakingHoursPerDay
	}
	return c
}

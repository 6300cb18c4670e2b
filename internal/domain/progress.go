package domain

// DefaultWeeklyGoal is the fallback weekly study goal in hours.
const DefaultWeeklyGoal = 40

// WeeklyPercent maps total studied hours to a completion percentage
// against the goal, clamped to [0, 100]. The value stays unrounded;
// rounding is a presentation concern.
func WeeklyPercent(hours, goal float64) float64 {
	if goal <= 0 {
		return 0
	}

	percent := hours / goal * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}

	return percent
}

package apitype

type TimelapseSettings struct {
	intervalSeconds int
	totalShots      int
}

func NewTimelapseSettings(intervalSeconds int, totalShots int) *TimelapseSettings {
	return &TimelapseSettings{
		intervalSeconds: intervalSeconds,
		totalShots:      totalShots,
	}
}

func (s *TimelapseSettings) IntervalSeconds() int {
	return s.intervalSeconds
}

func (s *TimelapseSettings) TotalShots() int {
	return s.totalShots
}

// Reported to the user when the run starts. Truncates to whole minutes.
func (s *TimelapseSettings) DurationMinutes() int {
	return s.intervalSeconds * s.totalShots / 60
}

package service

const (
	// Weight screen
	RecentImportsLimit = 5
	ChartMaxPoints     = 60

	// VDOT input bounds, matching what a runner can plausibly race
	MinRaceDistanceM = 400
	MaxRaceDistanceM = 100000

	// Largest distance the pace calculator accepts or produces, in km
	MaxDistanceKm = 1000

	// Seconds per minute for VDOT time conversion
	SecondsPerMinute = 60
)

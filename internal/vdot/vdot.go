package vdot

import "math"

// Standard race distances in meters
const (
	Distance1500m    = 1500
	Distance5K       = 5000
	Distance10K      = 10000
	DistanceHalfMara = 21097.5
	DistanceMarathon = 42195
)

// Bisection bounds for PredictRaceTimeSec, as velocities in m/min.
// 700 m/min is faster than any human; 55 m/min is about 18 min/km.
const (
	maxVelocity = 700.0
	minVelocity = 55.0

	// Fixed iteration count keeps predictions bit-for-bit reproducible.
	bisectIterations = 80
)

// vo2AtVelocity returns the oxygen cost (ml/kg/min) of running at v m/min
func vo2AtVelocity(v float64) float64 {
	return -4.60 + 0.182258*v + 0.000104*v*v
}

// velocityFromVO2 inverts vo2AtVelocity, taking the positive root
func velocityFromVO2(vo2 float64) float64 {
	const a, b = 0.000104, 0.182258
	c := -(vo2 + 4.60)
	return (-b + math.Sqrt(b*b-4*a*c)) / (2 * a)
}

// pctVO2max is the fraction of VO2max that can be held for tMin minutes
func pctVO2max(tMin float64) float64 {
	return 0.8 +
		0.1894393*math.Exp(-0.012778*tMin) +
		0.2989558*math.Exp(-0.1932605*tMin)
}

// paceSecKm converts m/min to seconds per km
func paceSecKm(v float64) float64 {
	return 60 * 1000 / v
}

// CalculateVDOT derives VDOT from a race result.
// distanceM is meters, timeMin is minutes. Returns NaN for non-positive
// input or a pace too slow to produce a positive VO2.
func CalculateVDOT(distanceM, timeMin float64) float64 {
	if !isPositive(distanceM) || !isPositive(timeMin) {
		return math.NaN()
	}

	v := distanceM / timeMin
	vo2 := vo2AtVelocity(v)
	if vo2 <= 0 {
		return math.NaN()
	}

	return vo2 / pctVO2max(timeMin)
}

// PredictRaceTimeSec predicts the race time in seconds at distanceM for a VDOT.
// The model has no closed-form inverse, so the time is found by bisection
// between the maxVelocity and minVelocity bounds.
func PredictRaceTimeSec(distanceM, vdot float64) float64 {
	if !isPositive(distanceM) || !isPositive(vdot) {
		return math.NaN()
	}

	lo := distanceM / maxVelocity
	hi := distanceM / minVelocity

	for i := 0; i < bisectIterations; i++ {
		mid := (lo + hi) / 2
		if CalculateVDOT(distanceM, mid) > vdot {
			// faster than this VDOT can run, so the answer is a longer time
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2 * 60
}

// Label returns a human-readable fitness level for a VDOT value
func Label(vdot float64) string {
	switch {
	case vdot >= 75:
		return "Elite"
	case vdot >= 65:
		return "Highly Competitive"
	case vdot >= 55:
		return "Competitive"
	case vdot >= 45:
		return "Advanced Recreational"
	case vdot >= 38:
		return "Intermediate"
	case vdot >= 30:
		return "Beginner"
	default:
		return "Novice"
	}
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

package hrzone

// ZoneName returns a short name for a zone ID
func ZoneName(id int) string {
	switch id {
	case 1:
		return "Recovery"
	case 2:
		return "Aerobic"
	case 3:
		return "Tempo"
	case 4:
		return "Threshold"
	case 5:
		return "VO2max"
	default:
		return "Unknown"
	}
}

// ZoneFor returns the ID of the first zone whose range contains bpm, or 0.
// Bands may overlap at their edges; the lower zone wins.
func ZoneFor(bpm int, zones [ZoneCount]Zone) int {
	for _, z := range zones {
		if bpm >= z.MinBpm && bpm <= z.MaxBpm {
			return z.ID
		}
	}
	return 0
}

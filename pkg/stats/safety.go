package stats

// Safety level tiers for recent-incident density at a location.
const (
	SafetySafe     = "safe"
	SafetyModerate = "moderate"
	SafetyCaution  = "caution"
)

// SafetyLevel classifies a location by the number of active alerts in the
// recent window. Thresholds are fixed policy.
func SafetyLevel(recentCount int) string {
	switch {
	case recentCount == 0:
		return SafetySafe
	case recentCount < 3:
		return SafetyModerate
	default:
		return SafetyCaution
	}
}

package risk

// Zone buckets a numeric risk score. Values match the risk_zone enum in
// the database.
type Zone string

const (
	ZoneLow      Zone = "low"
	ZoneModerate Zone = "moderate"
	ZoneHigh     Zone = "high"
	ZoneExtreme  Zone = "extreme"
)

// ZoneForScore maps a 0-100 score to its zone. Boundary scores map to the
// higher zone: 75 is extreme, 50 is high, 25 is moderate.
func ZoneForScore(score float64) Zone {
	switch {
	case score >= 75:
		return ZoneExtreme
	case score >= 50:
		return ZoneHigh
	case score >= 25:
		return ZoneModerate
	default:
		return ZoneLow
	}
}

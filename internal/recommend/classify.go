package recommend

// Advisory admission-chance labels attached to results at the HTTP layer.
// They are derived from the gap between the student's score and the historical
// cutoff and never affect engine ranking.
const (
	StatusHighlyRecommended = "highly_recommended"
	StatusPossible          = "possible"
	StatusNotRecommended    = "not_recommended"
)

// Classify labels a result: within 2 points of the cutoff (or above) is
// highly recommended, more than 10 points below is not recommended, anything
// between is possible. No cutoff on record reads as possible.
func Classify(studentScore float64, minScore *float64) string {
	if minScore == nil {
		return StatusPossible
	}
	difference := studentScore - *minScore
	switch {
	case difference >= -2:
		return StatusHighlyRecommended
	case difference < -10:
		return StatusNotRecommended
	default:
		return StatusPossible
	}
}

package schema

// Score thresholds shared by category and total statuses. These are part of
// the scoring contract; boundaries are inclusive on the lower side.
const (
	ThresholdExcellent = 90
	ThresholdGood      = 70
	ThresholdNeedsWork = 50
)

// ScoreToStatus maps a 0-100 score to a health status.
func ScoreToStatus(score float64) CategoryStatus {
	switch {
	case score >= ThresholdExcellent:
		return StatusExcellent
	case score >= ThresholdGood:
		return StatusGood
	case score >= ThresholdNeedsWork:
		return StatusNeedsWork
	default:
		return StatusCritical
	}
}

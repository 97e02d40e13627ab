package validate

import "math"

// LowConfidenceThreshold is the score below which callers should surface a
// warning. Low confidence never fails a request.
const LowConfidenceThreshold = 75

// Confidence reduces a validation tally to a 0-100 score. A result with no
// checks scores 0.
func Confidence(r Result) int {
	if r.TotalChecks == 0 {
		return 0
	}
	return int(math.Round(100 * float64(r.PassedChecks) / float64(r.TotalChecks)))
}

// IsLowConfidence reports whether a score warrants a caller-facing warning.
func IsLowConfidence(score int) bool {
	return score < LowConfidenceThreshold
}

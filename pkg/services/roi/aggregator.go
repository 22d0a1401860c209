// Package roi converts sessions into a human-time-corrected labor estimate.
// An iteration is one distinct (timestamp, product) verification action; a
// single verification may touch several quantity fields in one row, so row
// count is not iteration count.
package roi

import (
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/domain"
)

type iterationKey struct {
	unixNano int64
	product  int
}

// SessionIterations counts the distinct (timestamp, product) pairs within a
// session. Records sharing a timestamp across different products are
// distinct iterations.
func SessionIterations(s domain.Session) int {
	seen := make(map[iterationKey]struct{}, len(s.Records))
	for _, r := range s.Records {
		seen[iterationKey{unixNano: r.Timestamp.UnixNano(), product: r.ProductID}] = struct{}{}
	}
	return len(seen)
}

// AdjustedDurationSeconds corrects a session's wall-clock duration for
// human-equivalent speed: a fixed discount per iteration, floored at zero.
func AdjustedDurationSeconds(s domain.Session, discountSeconds float64) float64 {
	adjusted := s.RawDurationSeconds() - float64(SessionIterations(s))*discountSeconds
	if adjusted < 0 {
		return 0
	}
	return adjusted
}

// Aggregate sums corrected session durations into hours and a monetary
// value. An empty session set yields the zero summary, never an error.
func Aggregate(sessions []domain.Session, hourlyCost, discountSeconds float64) domain.ROISummary {
	summary := domain.ROISummary{Sessions: len(sessions)}

	var totalSeconds float64
	for _, s := range sessions {
		summary.Iterations += SessionIterations(s)
		totalSeconds += AdjustedDurationSeconds(s, discountSeconds)
	}

	summary.Hours = totalSeconds / 3600
	summary.Value = summary.Hours * hourlyCost

	return summary
}

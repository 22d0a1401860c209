// Package session partitions a cleaned record stream into execution
// sessions: maximal runs where no inter-record gap exceeds the configured
// inactivity threshold.
package session

import (
	"sort"
	"time"

	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/domain"
)

// Segment orders records by timestamp and splits them into sessions. A new
// session starts strictly when the gap to the previous record exceeds
// gapMinutes; a gap equal to the threshold keeps the run together. The sort
// is stable so records sharing a timestamp keep their input order.
//
// A non-positive threshold is valid and degenerates into one session per
// distinct timestamp.
func Segment(records []domain.OrderRecord, gapMinutes float64) []domain.Session {
	if len(records) == 0 {
		return nil
	}

	sorted := make([]domain.OrderRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	threshold := time.Duration(gapMinutes * float64(time.Minute))

	var sessions []domain.Session
	current := domain.Session{Start: sorted[0].Timestamp}
	prev := sorted[0].Timestamp
	for i, rec := range sorted {
		if i > 0 && rec.Timestamp.Sub(prev) > threshold {
			sessions = append(sessions, current)
			current = domain.Session{ID: current.ID + 1, Start: rec.Timestamp}
		}
		current.Records = append(current.Records, rec)
		current.End = rec.Timestamp
		prev = rec.Timestamp
	}
	sessions = append(sessions, current)

	return sessions
}

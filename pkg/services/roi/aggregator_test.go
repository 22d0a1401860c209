package roi

import (
	"testing"
	"time"

	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/models/domain"
	"github.com/foliveir84/PharmaInstantOrdersReport/pkg/services/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func sessionOf(records ...domain.OrderRecord) domain.Session {
	s := domain.Session{Records: records}
	for i, r := range records {
		if i == 0 || r.Timestamp.Before(s.Start) {
			s.Start = r.Timestamp
		}
		if i == 0 || r.Timestamp.After(s.End) {
			s.End = r.Timestamp
		}
	}
	return s
}

func TestSessionIterations_DistinctTimestampProductPairs(t *testing.T) {
	s := sessionOf(
		domain.OrderRecord{ProductID: 1, Timestamp: t0},
		domain.OrderRecord{ProductID: 1, Timestamp: t0}, // duplicate pair
		domain.OrderRecord{ProductID: 2, Timestamp: t0}, // same time, other product
		domain.OrderRecord{ProductID: 1, Timestamp: t0.Add(time.Minute)},
	)

	assert.Equal(t, 3, SessionIterations(s))
}

func TestAdjustedDuration_NeverNegative(t *testing.T) {
	// Single record: raw duration 0, discount cannot push it below zero.
	s := sessionOf(domain.OrderRecord{ProductID: 1, Timestamp: t0})

	assert.Equal(t, float64(0), AdjustedDurationSeconds(s, 20))
}

func TestAdjustedDuration_SubtractsPerIterationDiscount(t *testing.T) {
	s := sessionOf(
		domain.OrderRecord{ProductID: 1, Timestamp: t0},
		domain.OrderRecord{ProductID: 1, Timestamp: t0.Add(100*time.Second)},
	)

	// 100s raw, 2 iterations x 20s discount.
	assert.Equal(t, float64(60), AdjustedDurationSeconds(s, 20))
}

func TestAdjustedDuration_NeverExceedsRaw(t *testing.T) {
	s := sessionOf(
		domain.OrderRecord{ProductID: 1, Timestamp: t0},
		domain.OrderRecord{ProductID: 2, Timestamp: t0.Add(30*time.Second)},
		domain.OrderRecord{ProductID: 3, Timestamp: t0.Add(90*time.Second)},
	)

	for _, discount := range []float64{0, 5, 20, 1000} {
		adjusted := AdjustedDurationSeconds(s, discount)
		assert.LessOrEqual(t, adjusted, s.RawDurationSeconds())
		assert.GreaterOrEqual(t, adjusted, float64(0))
	}
}

func TestAggregate_SingleRecordSession(t *testing.T) {
	sessions := session.Segment([]domain.OrderRecord{
		{ProductID: 1, Timestamp: t0},
	}, 60)

	summary := Aggregate(sessions, 10, 20)

	assert.Equal(t, 1, summary.Sessions)
	assert.Equal(t, 1, summary.Iterations)
	assert.Equal(t, float64(0), summary.Hours)
	assert.Equal(t, float64(0), summary.Value)
}

func TestAggregate_HundredHourSessions(t *testing.T) {
	// 100 sessions of exactly one corrected hour at 10/hour.
	var sessions []domain.Session
	for i := 0; i < 100; i++ {
		start := t0.Add(time.Duration(i) * 24 * time.Hour)
		sessions = append(sessions, sessionOf(
			domain.OrderRecord{ProductID: 1, Timestamp: start},
			domain.OrderRecord{ProductID: 1, Timestamp: start.Add(time.Hour)},
		))
	}

	summary := Aggregate(sessions, 10, 0)

	assert.Equal(t, 100, summary.Sessions)
	assert.InDelta(t, 100, summary.Hours, 1e-9)
	assert.InDelta(t, 1000, summary.Value, 1e-9)
}

func TestAggregate_EmptyInput(t *testing.T) {
	summary := Aggregate(nil, 10, 20)

	assert.Equal(t, domain.ROISummary{}, summary)
}

func TestAggregate_EndToEndScenario(t *testing.T) {
	// Two runs of the robot separated by well over the threshold.
	records := []domain.OrderRecord{
		{ProductID: 1, Timestamp: t0},
		{ProductID: 2, Timestamp: t0.Add(10 * time.Minute)},
		{ProductID: 1, Timestamp: t0.Add(3 * time.Hour)},
	}

	sessions := session.Segment(records, 60)
	require.Len(t, sessions, 2)

	summary := Aggregate(sessions, 12.5, 20)

	assert.Equal(t, 2, summary.Sessions)
	assert.Equal(t, 3, summary.Iterations)
	// Session 1: 600s - 2*20s = 560s; session 2: 0s.
	assert.InDelta(t, 560.0/3600.0, summary.Hours, 1e-9)
	assert.InDelta(t, (560.0/3600.0)*12.5, summary.Value, 1e-9)
}

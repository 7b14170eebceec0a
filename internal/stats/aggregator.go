package stats

import (
	"time"

	"github.com/MiguelLpG/DiscordWeeklyTop/internal/models"
)

// Store is the persistence surface the aggregation layer works against.
// Increments must be atomic upsert-increments: concurrent calls for the
// same (user, week, year) key must not lose updates.
type Store interface {
	IncrementMessageCount(userID string, week, year int) error
	AddVoiceSeconds(userID string, week, year int, seconds float64) error
	TopByMetric(metric models.Metric, week, year, limit int) ([]models.ActivityRecord, error)
}

// Aggregator maps activity events into per-user weekly counters.
// Each call adds one unit or amount; replaying an event double-counts.
type Aggregator struct {
	store Store
}

// NewAggregator creates a new aggregator
func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// RecordMessage counts one message for a user in the week bucket of ts.
func (a *Aggregator) RecordMessage(userID string, ts time.Time) error {
	week, year := Bucket(ts)
	return a.store.IncrementMessageCount(userID, week, year)
}

// RecordVoiceTime adds voice seconds for a user in the week bucket of ts.
// Seconds may be fractional and must be non-negative.
func (a *Aggregator) RecordVoiceTime(userID string, ts time.Time, seconds float64) error {
	week, year := Bucket(ts)
	return a.store.AddVoiceSeconds(userID, week, year, seconds)
}

package stats

import (
	"github.com/MiguelLpG/DiscordWeeklyTop/internal/models"
)

// DefaultLimit is the number of entries shown in leaderboards.
const DefaultLimit = 5

// Leaderboard answers top-N queries over the weekly activity records.
type Leaderboard struct {
	store Store
}

// NewLeaderboard creates a new leaderboard service
func NewLeaderboard(store Store) *Leaderboard {
	return &Leaderboard{store: store}
}

// TopN returns up to limit users of the given week sorted descending by
// the metric. Fewer entries are returned when fewer records exist; ties
// keep the storage layer's order.
func (l *Leaderboard) TopN(metric models.Metric, week, year, limit int) ([]models.ActivityRecord, error) {
	return l.store.TopByMetric(metric, week, year, limit)
}

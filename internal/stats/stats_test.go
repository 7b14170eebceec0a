package stats

import (
	"sort"
	"time"

	"github.com/MiguelLpG/DiscordWeeklyTop/internal/models"
)

// memStore is an in-memory Store with the same upsert-increment and
// sorted-limit semantics as the Postgres repository.
type memStore struct {
	records map[bucketKey]*models.ActivityRecord
}

type bucketKey struct {
	userID string
	week   int
	year   int
}

func newMemStore() *memStore {
	return &memStore{records: make(map[bucketKey]*models.ActivityRecord)}
}

func (m *memStore) upsert(userID string, week, year int) *models.ActivityRecord {
	key := bucketKey{userID, week, year}
	rec, ok := m.records[key]
	if !ok {
		rec = &models.ActivityRecord{UserID: userID, Week: week, Year: year}
		m.records[key] = rec
	}
	return rec
}

func (m *memStore) IncrementMessageCount(userID string, week, year int) error {
	m.upsert(userID, week, year).MessageCount++
	return nil
}

func (m *memStore) AddVoiceSeconds(userID string, week, year int, seconds float64) error {
	m.upsert(userID, week, year).VoiceSeconds += seconds
	return nil
}

func (m *memStore) TopByMetric(metric models.Metric, week, year, limit int) ([]models.ActivityRecord, error) {
	var out []models.ActivityRecord
	for _, rec := range m.records {
		if rec.Week == week && rec.Year == year {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if metric == models.MetricVoice {
			return out[i].VoiceSeconds > out[j].VoiceSeconds
		}
		return out[i].MessageCount > out[j].MessageCount
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func mustRecordMessage(a *Aggregator, userID string, ts time.Time) {
	if err := a.RecordMessage(userID, ts); err != nil {
		panic(err)
	}
}

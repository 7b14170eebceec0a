package database

import (
	"fmt"

	"github.com/MiguelLpG/DiscordWeeklyTop/internal/models"
)

// Repository handles database operations
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// IncrementMessageCount adds one message to a user's weekly record,
// creating the record if it does not exist yet.
func (r *Repository) IncrementMessageCount(userID string, week, year int) error {
	_, err := r.db.conn.Exec(`
		INSERT INTO weekly_activity (user_id, week, year, message_count)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (user_id, week, year) DO UPDATE SET message_count = weekly_activity.message_count + 1`,
		userID, week, year)
	if err != nil {
		return fmt.Errorf("failed to increment message count: %w", err)
	}
	return nil
}

// AddVoiceSeconds adds voice seconds to a user's weekly record,
// creating the record if it does not exist yet.
func (r *Repository) AddVoiceSeconds(userID string, week, year int, seconds float64) error {
	_, err := r.db.conn.Exec(`
		INSERT INTO weekly_activity (user_id, week, year, voice_seconds)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, week, year) DO UPDATE SET voice_seconds = weekly_activity.voice_seconds + EXCLUDED.voice_seconds`,
		userID, week, year, seconds)
	if err != nil {
		return fmt.Errorf("failed to add voice seconds: %w", err)
	}
	return nil
}

// metricColumn maps a metric to its column. The metric is a closed enum,
// never user input, so the column name can be spliced into the query.
func metricColumn(metric models.Metric) (string, error) {
	switch metric {
	case models.MetricMessages:
		return "message_count", nil
	case models.MetricVoice:
		return "voice_seconds", nil
	default:
		return "", fmt.Errorf("unknown metric %d", metric)
	}
}

// TopByMetric gets the top users of a week sorted descending by the given metric.
func (r *Repository) TopByMetric(metric models.Metric, week, year, limit int) ([]models.ActivityRecord, error) {
	column, err := metricColumn(metric)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.conn.Query(fmt.Sprintf(`
		SELECT user_id, week, year, message_count, voice_seconds
		FROM weekly_activity
		WHERE week = $1 AND year = $2
		ORDER BY %s DESC
		LIMIT $3`, column),
		week, year, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top by %s: %w", column, err)
	}
	defer rows.Close()

	var records []models.ActivityRecord
	for rows.Next() {
		var rec models.ActivityRecord
		if err := rows.Scan(&rec.UserID, &rec.Week, &rec.Year, &rec.MessageCount, &rec.VoiceSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activity rows: %w", err)
	}

	return records, nil
}

package models

// Metric identifies a leaderboard metric column.
type Metric int

const (
	MetricMessages Metric = iota
	MetricVoice
)

// ActivityRecord represents one user's activity in one ISO week.
// The tuple (UserID, Week, Year) is the unique key in the database.
type ActivityRecord struct {
	UserID       string
	Week         int
	Year         int
	MessageCount int64
	VoiceSeconds float64
}

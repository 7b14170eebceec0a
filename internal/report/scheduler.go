package report

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/MiguelLpG/DiscordWeeklyTop/internal/models"
	"github.com/MiguelLpG/DiscordWeeklyTop/internal/stats"
)

// weeklySpec fires every Monday at 00:00 in the scheduler's time zone.
const weeklySpec = "0 0 * * 1"

// Poster delivers a message to a channel.
type Poster interface {
	Post(channelID, content string) error
}

// Scheduler posts the weekly activity report. The report covers the week
// that just ended at the moment of firing, not the week that is starting.
type Scheduler struct {
	cron        *cron.Cron
	leaderboard *stats.Leaderboard
	poster      Poster
	channelID   string
	now         func() time.Time
}

// NewScheduler creates a scheduler posting to channelID. An empty
// channelID disables the report.
func NewScheduler(leaderboard *stats.Leaderboard, poster Poster, channelID string) *Scheduler {
	return &Scheduler{
		cron:        cron.New(cron.WithLocation(time.Local)),
		leaderboard: leaderboard,
		poster:      poster,
		channelID:   channelID,
		now:         time.Now,
	}
}

// Start arms the weekly trigger.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(weeklySpec, s.Fire); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop disarms the trigger. Does not interrupt a report in progress.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Fire builds and delivers both rankings. Failures skip the report;
// there are no retries.
func (s *Scheduler) Fire() {
	if s.channelID == "" {
		log.Debug().Msg("no report channel configured, skipping weekly report")
		return
	}

	week, year := stats.PreviousBucket(s.now())

	topMessages, err := s.leaderboard.TopN(models.MetricMessages, week, year, stats.DefaultLimit)
	if err != nil {
		log.Error().Err(err).Int("week", week).Int("year", year).Msg("weekly report: message query failed")
		return
	}
	topVoice, err := s.leaderboard.TopN(models.MetricVoice, week, year, stats.DefaultLimit)
	if err != nil {
		log.Error().Err(err).Int("week", week).Int("year", year).Msg("weekly report: voice query failed")
		return
	}

	log.Info().Int("week", week).Int("year", year).Msg("posting weekly report")

	if err := s.poster.Post(s.channelID, WeeklyMessageTop(week, year, topMessages)); err != nil {
		log.Error().Err(err).Str("channel", s.channelID).Msg("weekly report: message top not delivered")
	}
	if err := s.poster.Post(s.channelID, WeeklyVoiceTop(week, year, topVoice)); err != nil {
		log.Error().Err(err).Str("channel", s.channelID).Msg("weekly report: voice top not delivered")
	}
}

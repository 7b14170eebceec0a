package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/MiguelLpG/DiscordWeeklyTop/internal/models"
	"github.com/MiguelLpG/DiscordWeeklyTop/internal/report"
	"github.com/MiguelLpG/DiscordWeeklyTop/internal/stats"
	"github.com/MiguelLpG/DiscordWeeklyTop/internal/tracker"
)

// Bot represents the Discord bot
type Bot struct {
	session     *discordgo.Session
	sessions    tracker.SessionStore
	aggregator  *stats.Aggregator
	leaderboard *stats.Leaderboard

	// post delivers command replies. Points at Post; swappable in tests.
	post func(channelID, content string) error
}

// New creates a new Discord bot
func New(token string, sessions tracker.SessionStore, aggregator *stats.Aggregator, leaderboard *stats.Leaderboard) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentMessageContent

	bot := &Bot{
		session:     session,
		sessions:    sessions,
		aggregator:  aggregator,
		leaderboard: leaderboard,
	}
	bot.post = bot.Post

	// Add event handlers
	session.AddHandler(bot.ready)
	session.AddHandler(bot.voiceStateUpdate)
	session.AddHandler(bot.messageCreate)

	return bot, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() error {
	return b.session.Close()
}

// Post sends a message to a channel. Implements report.Poster.
func (b *Bot) Post(channelID, content string) error {
	_, err := b.session.ChannelMessageSend(channelID, content)
	return err
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	log.Info().Str("user", r.User.Username).Msg("bot is running")
}

// voiceStateUpdate handles voice state updates. Only none-to-some and
// some-to-none channel transitions count: moving directly between two
// channels keeps the original session running.
func (b *Bot) voiceStateUpdate(s *discordgo.Session, vs *discordgo.VoiceStateUpdate) {
	if vs.Member != nil && vs.Member.User != nil && vs.Member.User.Bot {
		return
	}

	userID := vs.UserID
	now := time.Now()

	oldChannelID := ""
	if vs.BeforeUpdate != nil {
		oldChannelID = vs.BeforeUpdate.ChannelID
	}
	newChannelID := vs.ChannelID

	switch {
	case oldChannelID == "" && newChannelID != "":
		b.sessions.Enter(userID, now)
		log.Debug().Str("user", userID).Str("channel", newChannelID).Msg("voice join")

	case oldChannelID != "" && newChannelID == "":
		elapsed, ok := b.sessions.Leave(userID, now)
		if !ok {
			// Lost join, e.g. the process restarted mid-session.
			return
		}
		if err := b.aggregator.RecordVoiceTime(userID, now, elapsed.Seconds()); err != nil {
			log.Error().Err(err).Str("user", userID).Msg("failed to record voice time")
			return
		}
		log.Debug().Str("user", userID).Float64("seconds", elapsed.Seconds()).Msg("voice leave")
	}
}

// messageCreate counts the message and dispatches leaderboard commands.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.Bot {
		return
	}

	if err := b.aggregator.RecordMessage(m.Author.ID, time.Now()); err != nil {
		log.Error().Err(err).Str("user", m.Author.ID).Msg("failed to record message")
	}

	if metric, ok := parseCommand(m.Content); ok {
		b.handleLeaderboardCommand(m.ChannelID, metric)
	}
}

// parseCommand matches the leaderboard commands. Matching is exact:
// trailing text makes the message an ordinary message, not a command.
func parseCommand(content string) (models.Metric, bool) {
	switch content {
	case "!lb mensajes":
		return models.MetricMessages, true
	case "!lb voz":
		return models.MetricVoice, true
	default:
		return 0, false
	}
}

func (b *Bot) handleLeaderboardCommand(channelID string, metric models.Metric) {
	week, year := stats.Bucket(time.Now())

	records, err := b.leaderboard.TopN(metric, week, year, stats.DefaultLimit)
	if err != nil {
		log.Error().Err(err).Int("week", week).Int("year", year).Msg("leaderboard query failed")
		return
	}

	if err := b.post(channelID, report.CommandLeaderboard(metric, week, year, records)); err != nil {
		log.Error().Err(err).Str("channel", channelID).Msg("failed to send leaderboard")
	}
}

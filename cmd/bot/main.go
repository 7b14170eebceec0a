package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MiguelLpG/DiscordWeeklyTop/internal/config"
	"github.com/MiguelLpG/DiscordWeeklyTop/internal/database"
	"github.com/MiguelLpG/DiscordWeeklyTop/internal/discord"
	"github.com/MiguelLpG/DiscordWeeklyTop/internal/report"
	"github.com/MiguelLpG/DiscordWeeklyTop/internal/stats"
	"github.com/MiguelLpG/DiscordWeeklyTop/internal/tracker"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize database
	db, err := database.New(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	// Wire the aggregation services over the repository
	repository := database.NewRepository(db)
	aggregator := stats.NewAggregator(repository)
	leaderboard := stats.NewLeaderboard(repository)

	// Initialize Discord bot
	bot, err := discord.New(cfg.DiscordToken, tracker.NewMemoryStore(), aggregator, leaderboard)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	// Start bot
	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start bot")
	}
	defer bot.Stop()

	// Arm the weekly report
	scheduler := report.NewScheduler(leaderboard, bot, cfg.ReportChannelID)
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start weekly report scheduler")
	}
	defer scheduler.Stop()

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Info().Msg("shutting down bot")
}

package report

import (
	"fmt"
	"strings"

	"github.com/MiguelLpG/DiscordWeeklyTop/internal/models"
	"github.com/MiguelLpG/DiscordWeeklyTop/pkg/utils"
)

// User-facing labels for the on-demand leaderboard command.
const (
	labelMessages = "mensajes enviados"
	labelVoice    = "minutos en canales de voz"
)

// WeeklyMessageTop formats the scheduled report's message ranking.
func WeeklyMessageTop(week, year int, records []models.ActivityRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Usuarios con más mensajes en la semana nº %d del año %d**\n", week, year)
	for i, rec := range records {
		fmt.Fprintf(&b, "%d. %s: %d mensajes.\n", i+1, utils.FormatUserMention(rec.UserID), rec.MessageCount)
	}
	return b.String()
}

// WeeklyVoiceTop formats the scheduled report's voice-time ranking.
// Voice time is shown in whole minutes.
func WeeklyVoiceTop(week, year int, records []models.ActivityRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Usuarios con más tiempo en un canal de voz en la semana nº %d del año %d**\n", week, year)
	for i, rec := range records {
		fmt.Fprintf(&b, "%d. %s: %d minutos.\n", i+1, utils.FormatUserMention(rec.UserID), utils.WholeMinutes(rec.VoiceSeconds))
	}
	return b.String()
}

// CommandLeaderboard formats the response to the !lb commands.
func CommandLeaderboard(metric models.Metric, week, year int, records []models.ActivityRecord) string {
	label := labelMessages
	if metric == models.MetricVoice {
		label = labelVoice
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Top 5 usuarios de __%s__ en la semana nº %d del año %d**\n", label, week, year)
	for i, rec := range records {
		if metric == models.MetricVoice {
			fmt.Fprintf(&b, "%d. %s: %d %s\n", i+1, utils.FormatUserMention(rec.UserID), utils.WholeMinutes(rec.VoiceSeconds), label)
		} else {
			fmt.Fprintf(&b, "%d. %s: %d %s\n", i+1, utils.FormatUserMention(rec.UserID), rec.MessageCount, label)
		}
	}
	return b.String()
}

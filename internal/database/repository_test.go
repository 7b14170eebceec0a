package database

import (
	"testing"

	"github.com/MiguelLpG/DiscordWeeklyTop/internal/models"
)

func TestMetricColumn(t *testing.T) {
	tests := []struct {
		metric models.Metric
		want   string
	}{
		{models.MetricMessages, "message_count"},
		{models.MetricVoice, "voice_seconds"},
	}
	for _, tt := range tests {
		got, err := metricColumn(tt.metric)
		if err != nil {
			t.Fatalf("metricColumn(%v): %v", tt.metric, err)
		}
		if got != tt.want {
			t.Errorf("metricColumn(%v) = %q, want %q", tt.metric, got, tt.want)
		}
	}
}

func TestMetricColumnRejectsUnknown(t *testing.T) {
	if _, err := metricColumn(models.Metric(42)); err == nil {
		t.Error("unknown metric must not map to a column")
	}
}

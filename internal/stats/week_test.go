package stats

import (
	"testing"
	"time"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		name     string
		ts       time.Time
		wantWeek int
		wantYear int
	}{
		{
			// 2024-12-30 is a Monday belonging to ISO week 1 of 2025.
			name:     "late december in next iso year",
			ts:       time.Date(2024, 12, 30, 23, 59, 59, 0, time.UTC),
			wantWeek: 1,
			wantYear: 2025,
		},
		{
			name:     "new years eve same bucket",
			ts:       time.Date(2024, 12, 31, 0, 0, 1, 0, time.UTC),
			wantWeek: 1,
			wantYear: 2025,
		},
		{
			// 2021-01-01 is a Friday belonging to ISO week 53 of 2020.
			name:     "early january in prior iso year",
			ts:       time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC),
			wantWeek: 53,
			wantYear: 2020,
		},
		{
			name:     "mid year",
			ts:       time.Date(2025, 7, 16, 10, 30, 0, 0, time.UTC),
			wantWeek: 29,
			wantYear: 2025,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week, year := Bucket(tt.ts)
			if week != tt.wantWeek || year != tt.wantYear {
				t.Errorf("Bucket(%v) = (%d, %d), want (%d, %d)", tt.ts, week, year, tt.wantWeek, tt.wantYear)
			}
		})
	}
}

func TestPreviousBucketAtWeekBoundary(t *testing.T) {
	// Monday 2025-03-10 00:00, the instant the weekly report fires.
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	week, year := PreviousBucket(monday)
	if week != 10 || year != 2025 {
		t.Errorf("PreviousBucket = (%d, %d), want (10, 2025)", week, year)
	}

	// Sanity: the fire instant itself already belongs to the new week.
	week, year = Bucket(monday)
	if week != 11 || year != 2025 {
		t.Errorf("Bucket = (%d, %d), want (11, 2025)", week, year)
	}
}

func TestPreviousBucketAcrossYears(t *testing.T) {
	// Monday 2025-01-06 00:00 starts week 2; the prior week is week 1 of 2025,
	// which began back in calendar 2024.
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	week, year := PreviousBucket(monday)
	if week != 1 || year != 2025 {
		t.Errorf("PreviousBucket = (%d, %d), want (1, 2025)", week, year)
	}
}

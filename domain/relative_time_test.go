package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	tests := []struct {
		name     string
		elapsed  time.Duration
		expected string
	}{
		{"Thirty seconds", 30 * time.Second, "now"},
		{"Zero", 0, "now"},
		{"Future timestamp", -2 * time.Hour, "now"},
		{"Exactly one minute", time.Minute, "1m ago"},
		{"Five minutes", 5 * time.Minute, "5m ago"},
		{"Floors minutes", 5*time.Minute + 59*time.Second, "5m ago"},
		{"Just under an hour", 59*time.Minute + 59*time.Second, "59m ago"},
		{"Exactly one hour", time.Hour, "1h ago"},
		{"Two hours", 2 * time.Hour, "2h ago"},
		{"Just under a day", 23*time.Hour + 59*time.Minute, "23h ago"},
		{"Exactly one day", 24 * time.Hour, "1d ago"},
		{"Two days", 48 * time.Hour, "2d ago"},
		{"No upper bound", 400 * 24 * time.Hour, "400d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatTime(now.Add(-tt.elapsed), now))
		})
	}
}

func TestFormatTime_IsPure(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	then := now.Add(-90 * time.Minute)
	req.Equal(FormatTime(then, now), FormatTime(then, now))
	req.Equal("1h ago", FormatTime(then, now))
}

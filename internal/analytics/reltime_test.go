package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tastykitchen/admin-api/internal/analytics"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds", 10 * time.Second, "a few seconds ago"},
		{"one minute", 60 * time.Second, "a minute ago"},
		{"minutes", 30 * time.Minute, "30 minutes ago"},
		{"one hour", time.Hour, "an hour ago"},
		{"hours", 3 * time.Hour, "3 hours ago"},
		{"one day", 25 * time.Hour, "a day ago"},
		{"days", 48 * time.Hour, "2 days ago"},
		{"one month", 40 * 24 * time.Hour, "a month ago"},
		{"months", 100 * 24 * time.Hour, "3 months ago"},
		{"one year", 400 * 24 * time.Hour, "a year ago"},
		{"years", 1000 * 24 * time.Hour, "3 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analytics.RelativeTime(now.Add(-tt.ago), now))
		})
	}
}

func TestRelativeTimeFutureClampsToNow(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "a few seconds ago", analytics.RelativeTime(now.Add(time.Hour), now))
}

func TestRelativeTimeRecomputesAsNowMoves(t *testing.T) {
	created := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "3 hours ago", analytics.RelativeTime(created, created.Add(3*time.Hour)))
	assert.Equal(t, "5 hours ago", analytics.RelativeTime(created, created.Add(5*time.Hour)))
}

package analytics

import (
	"fmt"
	"math"
	"time"
)

const day = 24 * time.Hour

// RelativeTime renders how long ago t was relative to now ("3 hours ago").
// The absolute instant stays authoritative; this form is recomputed at every
// render because "now" moves between renders.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}

	switch {
	case d < 45*time.Second:
		return "a few seconds ago"
	case d < 90*time.Second:
		return "a minute ago"
	case d < 45*time.Minute:
		return fmt.Sprintf("%d minutes ago", round(d.Minutes()))
	case d < 90*time.Minute:
		return "an hour ago"
	case d < 22*time.Hour:
		return fmt.Sprintf("%d hours ago", round(d.Hours()))
	case d < 36*time.Hour:
		return "a day ago"
	case d < 26*day:
		return fmt.Sprintf("%d days ago", round(d.Hours()/24))
	case d < 46*day:
		return "a month ago"
	case d < 320*day:
		return fmt.Sprintf("%d months ago", round(d.Hours()/24/30.44))
	case d < 548*day:
		return "a year ago"
	default:
		return fmt.Sprintf("%d years ago", round(d.Hours()/24/365.25))
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

package format

import (
	"fmt"
	"time"
)

// Relative age bucket bounds, in seconds.
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerMonth  = 2592000  // 30 days
	secondsPerYear   = 31536000 // 365 days
)

// MaxRelativeAgeWidth is the width reserved for RelativeAge output.
const MaxRelativeAgeWidth = 20

// RelativeAge describes how long before now t was, e.g. "3 hours ago".
// Times in the future read as "just now".
func RelativeAge(t, now time.Time) string {
	// Unix seconds, since a time.Duration saturates at about 292 years.
	diff := now.Unix() - t.Unix()
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < secondsPerMinute:
		return "just now"
	case diff < secondsPerHour:
		return ago(diff/secondsPerMinute, "minute")
	case diff < secondsPerDay:
		return ago(diff/secondsPerHour, "hour")
	case diff < secondsPerMonth:
		return ago(diff/secondsPerDay, "day")
	case diff < secondsPerYear:
		return ago(diff/secondsPerMonth, "month")
	default:
		return ago(diff/secondsPerYear, "year")
	}
}

func ago(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

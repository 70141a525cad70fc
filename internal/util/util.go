package util

import (
	"fmt"
	"math"
	"time"
)

// HoursToDuration converts fractional hours, as used by the planner, to a time.Duration.
// Negative, NaN and infinite values yield zero.
func HoursToDuration(hours float64) time.Duration {
	if hours <= 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0
	}

	return time.Duration(hours * float64(time.Hour))
}

// FormatHours formats fractional hours into human readable format (e.g., "1h30m").
func FormatHours(hours float64) string {
	return FormatDuration(HoursToDuration(hours))
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

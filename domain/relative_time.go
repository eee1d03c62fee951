package domain

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// FormatTime labels how long ago then happened, seen from now.
// Values are floored; anything under a minute, future included, is "now".
func FormatTime(then, now time.Time) string {
	elapsed := now.Sub(then)
	switch {
	case elapsed < time.Minute:
		return "now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int64(elapsed/time.Minute))
	case elapsed < day:
		return fmt.Sprintf("%dh ago", int64(elapsed/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int64(elapsed/day))
	}
}

package feed

import (
	"fmt"
	"time"

	"springwatch/internal/features/reports"
)

// ElapsedLabel renders how long ago a report was created. Under 24
// hours the label counts whole hours; from 24 hours on it counts whole
// days. Both floor, so 23h59m is "23 hours" and exactly 24h is "1 day".
// A report with an unknown creation time gets the placeholder.
func ElapsedLabel(ts reports.Timestamp, now time.Time) string {
	if !ts.Known {
		return "-"
	}

	elapsed := now.Sub(ts.Time)
	if elapsed < 0 {
		elapsed = 0
	}

	if elapsed < 24*time.Hour {
		return pluralize(int(elapsed.Hours()), "hour")
	}
	return pluralize(int(elapsed.Hours())/24, "day")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"springwatch/internal/features/reports"
)

func TestElapsedLabel_UnknownIsPlaceholder(t *testing.T) {
	require.Equal(t, "-", ElapsedLabel(reports.Unknown(), time.Now()))
}

func TestElapsedLabel_HoursBelowOneDay(t *testing.T) {
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	cases := map[time.Duration]string{
		0:                              "0 hours",
		30 * time.Minute:               "0 hours",
		time.Hour:                      "1 hour",
		90 * time.Minute:               "1 hour",
		5 * time.Hour:                  "5 hours",
		23*time.Hour + 59*time.Minute: "23 hours",
	}

	for elapsed, want := range cases {
		ts := reports.At(now.Add(-elapsed))
		require.Equal(t, want, ElapsedLabel(ts, now), "elapsed %v", elapsed)
	}
}

func TestElapsedLabel_DaysFromOneDayOn(t *testing.T) {
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	cases := map[time.Duration]string{
		24 * time.Hour:                "1 day",
		47 * time.Hour:                "1 day",
		48 * time.Hour:                "2 days",
		10*24*time.Hour + time.Minute: "10 days",
	}

	for elapsed, want := range cases {
		ts := reports.At(now.Add(-elapsed))
		require.Equal(t, want, ElapsedLabel(ts, now), "elapsed %v", elapsed)
	}
}

func TestElapsedLabel_UnitSwitchAtExactly24Hours(t *testing.T) {
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	justUnder := reports.At(now.Add(-(23*time.Hour + 59*time.Minute)))
	require.Equal(t, "23 hours", ElapsedLabel(justUnder, now))

	exactly := reports.At(now.Add(-24 * time.Hour))
	require.Equal(t, "1 day", ElapsedLabel(exactly, now))
}

func TestElapsedLabel_FutureTimestampClampsToZero(t *testing.T) {
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	ts := reports.At(now.Add(10 * time.Minute))
	require.Equal(t, "0 hours", ElapsedLabel(ts, now))
}

package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"springwatch/internal/features/reports"
)

type fakeLister struct {
	reports []reports.Report
	err     error
	calls   int
}

func (f *fakeLister) ListAll(ctx context.Context) ([]reports.Report, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.reports, nil
}

func sampleReports(now time.Time) []reports.Report {
	return []reports.Report{
		{ImageURL: "https://example.com/c.jpg", Rating: 5, CreatedAt: reports.At(now)},
		{ImageURL: "https://example.com/b.jpg", Rating: 3, CreatedAt: reports.At(now.Add(-26 * time.Hour))},
		{ImageURL: "https://example.com/a.jpg", Rating: 1, CreatedAt: reports.At(now.Add(-72 * time.Hour))},
	}
}

func TestFeed_InitialStateIsLoading(t *testing.T) {
	f := New(&fakeLister{})
	require.Equal(t, StateLoading, f.State())
	require.Empty(t, f.Reports())
	require.Nil(t, f.Current())
	require.Nil(t, f.Latest())
}

func TestFeed_RefreshEmptyStore(t *testing.T) {
	f := New(&fakeLister{})

	items := f.Refresh(context.Background())
	require.Empty(t, items)
	require.Equal(t, StateEmpty, f.State())
	require.Nil(t, f.Current())
}

func TestFeed_RefreshFetchFailureDegradesToEmpty(t *testing.T) {
	store := &fakeLister{reports: sampleReports(time.Now())}
	f := New(store)
	f.Refresh(context.Background())
	require.Equal(t, StateLoaded, f.State())

	store.err = errors.New("connection reset")
	items := f.Refresh(context.Background())
	require.NotNil(t, items)
	require.Empty(t, items)
	require.Equal(t, StateEmpty, f.State())
}

func TestFeed_RefreshLoadsAndSelectsMostRecent(t *testing.T) {
	now := time.Now()
	f := New(&fakeLister{reports: sampleReports(now)})

	f.Select(2) // stale selection from a previous load
	items := f.Refresh(context.Background())

	require.Len(t, items, 3)
	require.Equal(t, StateLoaded, f.State())
	require.Equal(t, 0, f.Selected())
	require.Equal(t, "https://example.com/c.jpg", f.Latest().ImageURL)
	require.Equal(t, "https://example.com/c.jpg", f.Current().ImageURL)
}

func TestFeed_SelectOutOfRangeIsNoOp(t *testing.T) {
	f := New(&fakeLister{reports: sampleReports(time.Now())})
	f.Refresh(context.Background())

	f.Select(1)
	require.Equal(t, 1, f.Selected())

	f.Select(-1)
	require.Equal(t, 1, f.Selected())

	f.Select(3)
	require.Equal(t, 1, f.Selected())

	f.Select(2)
	require.Equal(t, 2, f.Selected())
	require.Equal(t, "https://example.com/a.jpg", f.Current().ImageURL)
}

// Package feed holds the cached, ordered view of the report history
// plus a current-selection pointer, the state the single-page client
// renders from.
package feed

import (
	"context"
	"sync"

	"springwatch/internal/features/reports"
	"springwatch/internal/pkg/logger"
)

// State of the feed cache.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateEmpty
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateEmpty:
		return "empty"
	default:
		return "loading"
	}
}

// Lister is the read side of the record store the feed refreshes from.
type Lister interface {
	ListAll(ctx context.Context) ([]reports.Report, error)
}

// Feed caches the ordered report history. A fetch failure leaves the
// cache as an empty sequence rather than an error, so consumers always
// have a well-defined "no data" state.
type Feed struct {
	mu       sync.RWMutex
	store    Lister
	state    State
	items    []reports.Report
	selected int
}

func New(store Lister) *Feed {
	return &Feed{
		store: store,
		state: StateLoading,
		items: []reports.Report{},
	}
}

// Refresh replaces the cached sequence from the record store and resets
// the current selection to the most recent report.
func (f *Feed) Refresh(ctx context.Context) []reports.Report {
	f.mu.Lock()
	f.state = StateLoading
	f.mu.Unlock()

	items, err := f.store.ListAll(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		logger.Warn("feed refresh failed: %v", err)
		items = nil
	}

	if items == nil {
		items = []reports.Report{}
	}
	f.items = items
	f.selected = 0

	if len(f.items) == 0 {
		f.state = StateEmpty
	} else {
		f.state = StateLoaded
	}

	return f.items
}

// Select moves the current selection. An out-of-range index is silently
// ignored.
func (f *Feed) Select(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if index >= 0 && index < len(f.items) {
		f.selected = index
	}
}

// Selected returns the current selection index.
func (f *Feed) Selected() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.selected
}

// Current returns the selected report, or nil when the feed is empty.
func (f *Feed) Current() *reports.Report {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.selected >= len(f.items) {
		return nil
	}
	r := f.items[f.selected]
	return &r
}

// Latest returns the most recent report, or nil when the feed is empty.
func (f *Feed) Latest() *reports.Report {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if len(f.items) == 0 {
		return nil
	}
	r := f.items[0]
	return &r
}

// Reports returns the cached sequence, newest first.
func (f *Feed) Reports() []reports.Report {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]reports.Report, len(f.items))
	copy(out, f.items)
	return out
}

// State returns the cache state.
func (f *Feed) State() State {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Package liveness tracks which visitor identities have been seen recently.
// The tracker is a sliding-window presence estimate; its content is lost on
// restart, which is acceptable because it is never a source of truth.
package liveness

import (
	"sync"
	"time"

	"groupsignup/internal/domain"
)

// Tracker maps visitor tokens to their last-seen instant and evicts entries
// unseen for longer than the window. The window is shared with the poll
// interval advertised to clients, so a visitor polling at the expected rate
// is never evicted while genuinely active.
type Tracker struct {
	mu       sync.Mutex
	window   time.Duration
	lastSeen map[string]time.Time
}

var _ domain.LivenessTracker = (*Tracker)(nil)

// New returns a Tracker with the given staleness window.
func New(window time.Duration) *Tracker {
	return &Tracker{
		window:   window,
		lastSeen: make(map[string]time.Time),
	}
}

// Touch records now as the last-seen instant for token. Empty tokens are
// ignored: a visitor with no cookie yet is not tracked.
func (t *Tracker) Touch(token string, now time.Time) {
	if token == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastSeen[token] = now
}

// Sweep removes every entry whose age measured at now exceeds the window.
func (t *Tracker) Sweep(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sweepLocked(now)
}

// ActiveCount sweeps and returns the number of remaining entries.
func (t *Tracker) ActiveCount(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sweepLocked(now)
	return len(t.lastSeen)
}

// Observe is the per-request form: sweep, touch when a token was presented,
// and report the active count, all under one lock so the count is a
// consistent snapshot taken at that instant.
func (t *Tracker) Observe(token string, now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sweepLocked(now)
	if token != "" {
		t.lastSeen[token] = now
	}
	return len(t.lastSeen)
}

func (t *Tracker) sweepLocked(now time.Time) {
	for token, seen := range t.lastSeen {
		if now.Sub(seen) > t.window {
			delete(t.lastSeen, token)
		}
	}
}

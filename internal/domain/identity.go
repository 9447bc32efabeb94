package domain

import "time"

// IdentityProvider resolves a request to a stable per-visitor token.
type IdentityProvider interface {
	// Identify returns the presented token unchanged when one was supplied,
	// or mints a fresh globally-unique token with isNew true. The caller is
	// responsible for propagating a new token back to the visitor.
	Identify(presented string) (token string, isNew bool)
}

// LivenessTracker keeps a sliding-window estimate of active visitors.
// Entries unseen for longer than the configured window are evicted; the
// tracker is an estimate, not a source of truth, and is not persisted.
type LivenessTracker interface {
	// Observe sweeps stale entries, refreshes the token when non-empty, and
	// returns the active-visitor count as of now. Called once per request.
	Observe(token string, now time.Time) int
	// ActiveCount sweeps stale entries and returns the remaining count.
	ActiveCount(now time.Time) int
}

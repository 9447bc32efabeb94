package domain

import "context"

// RegistrationService defines the visitor-facing operations: attempting a
// registration and reading the occupancy snapshot for the polling dashboard.
type RegistrationService interface {
	// Register trims and validates the input, then attempts the atomic
	// registration. Returns one of the sentinel errors on failure; the
	// ledger is never partially mutated.
	Register(ctx context.Context, name, email, identity, groupID string) (*RegistrationResult, error)
	// Snapshot returns all groups in configured order with their
	// registrants, reflecting a single consistent instant.
	Snapshot(ctx context.Context) []GroupSnapshot
}

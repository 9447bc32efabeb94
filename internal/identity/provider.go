// Package identity resolves requests to stable per-visitor tokens.
package identity

import (
	"github.com/google/uuid"

	"groupsignup/internal/domain"
)

// Provider mints opaque, collision-resistant visitor tokens. Tokens are
// never reused and never reassigned; persistence on the client side is the
// transport's responsibility (a long-lived cookie in practice).
type Provider struct{}

var _ domain.IdentityProvider = Provider{}

// NewProvider returns an identity provider backed by random UUIDs.
func NewProvider() Provider {
	return Provider{}
}

// Identify returns the presented token unchanged, or a freshly minted one
// with isNew true when the request carried none.
func (Provider) Identify(presented string) (string, bool) {
	if presented != "" {
		return presented, false
	}
	return uuid.NewString(), true
}

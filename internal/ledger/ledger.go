// Package ledger implements the in-memory registration ledger: per-group
// seat accounting plus the system-wide uniqueness indexes over names,
// emails, and visitor identities.
package ledger

import (
	"fmt"
	"sync"

	"groupsignup/internal/domain"
)

type group struct {
	id          string
	name        string
	description string
	available   int
	total       int
	registered  []domain.Registration
}

// Ledger is the authoritative record of groups, seats, and registrations for
// the lifetime of the process. A single mutex guards the whole check-then-act
// sequence in Register, so concurrent attempts racing for the same seat,
// name, email, or identity resolve to exactly one winner.
type Ledger struct {
	mu             sync.RWMutex
	order          []string
	groups         map[string]*group
	usedNames      map[string]struct{}
	usedEmails     map[string]struct{}
	usedIdentities map[string]struct{}
}

var _ domain.RegistrationLedger = (*Ledger)(nil)

// New builds a ledger from the configured groups, preserving their order for
// snapshots and export. Groups are expected to be validated already (unique
// ids, positive seat counts).
func New(groups []domain.Group) *Ledger {
	l := &Ledger{
		groups:         make(map[string]*group, len(groups)),
		usedNames:      make(map[string]struct{}),
		usedEmails:     make(map[string]struct{}),
		usedIdentities: make(map[string]struct{}),
	}
	for _, g := range groups {
		l.order = append(l.order, g.ID)
		l.groups[g.ID] = &group{
			id:          g.ID,
			name:        g.Name,
			description: g.Description,
			available:   g.Total,
			total:       g.Total,
		}
	}
	return l
}

// Register attempts a registration as one atomic unit. The precondition
// order is fixed and determines which error a caller sees: missing identity,
// duplicate name, duplicate email, duplicate identity, unknown group, group
// full. On success the seat decrement, the appended registration, and all
// three index insertions become visible together.
func (l *Ledger) Register(name, email, identity, groupID string) (*domain.RegistrationResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if identity == "" {
		return nil, domain.ErrMissingIdentity
	}
	if _, taken := l.usedNames[name]; taken {
		return nil, domain.ErrDuplicateName
	}
	if _, taken := l.usedEmails[email]; taken {
		return nil, domain.ErrDuplicateEmail
	}
	if _, taken := l.usedIdentities[identity]; taken {
		return nil, domain.ErrDuplicateIdentity
	}
	g, ok := l.groups[groupID]
	if !ok {
		return nil, domain.ErrUnknownGroup
	}
	if g.available <= 0 {
		return nil, domain.ErrGroupFull
	}

	g.available--
	g.registered = append(g.registered, domain.Registration{
		Name:     name,
		Email:    email,
		Identity: identity,
	})
	l.usedNames[name] = struct{}{}
	l.usedEmails[email] = struct{}{}
	l.usedIdentities[identity] = struct{}{}

	return &domain.RegistrationResult{
		GroupID:      g.id,
		GroupName:    g.name,
		Available:    g.available,
		Total:        g.total,
		SeatsDisplay: seatsDisplay(g.available, g.total),
	}, nil
}

// Snapshot returns every group in configured order with copies of its
// registrant list. The view reflects a single consistent instant: it never
// shows a decremented seat count without the matching registrant.
func (l *Ledger) Snapshot() []domain.GroupSnapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.GroupSnapshot, 0, len(l.order))
	for _, id := range l.order {
		g := l.groups[id]
		registrants := make([]domain.Registrant, 0, len(g.registered))
		for _, r := range g.registered {
			registrants = append(registrants, domain.Registrant{Name: r.Name, Email: r.Email})
		}
		out = append(out, domain.GroupSnapshot{
			ID:           g.id,
			Name:         g.name,
			Description:  g.description,
			Available:    g.available,
			Total:        g.total,
			SeatsDisplay: seatsDisplay(g.available, g.total),
			Registrants:  registrants,
		})
	}
	return out
}

func seatsDisplay(available, total int) string {
	if available <= 0 {
		return "No seats left"
	}
	return fmt.Sprintf("%d/%d seats available", available, total)
}

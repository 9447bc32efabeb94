package domain

// Group represents a capacity-limited signup group as configured at startup.
// Available seats only ever decrease; a seat committed at registration time
// is never released.
// swagger:model Group
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   int    `json:"available"`
	Total       int    `json:"total"`
}

// Registration is one committed signup. It is immutable once created and
// belongs to exactly one group. The identity token is never exposed to
// clients.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Identity string `json:"-"`
}

// Registrant is the client-visible projection of a Registration.
// swagger:model Registrant
type Registrant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GroupSnapshot is a consistent point-in-time view of one group: its
// remaining capacity and the registrants in registration order.
// swagger:model GroupSnapshot
type GroupSnapshot struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Available    int          `json:"available"`
	Total        int          `json:"total"`
	SeatsDisplay string       `json:"seats_display"`
	Registrants  []Registrant `json:"registrants"`
}

// RegistrationResult summarizes a successful registration.
// swagger:model RegistrationResult
type RegistrationResult struct {
	GroupID      string `json:"group_id"`
	GroupName    string `json:"group_name"`
	Available    int    `json:"available"`
	Total        int    `json:"total"`
	SeatsDisplay string `json:"seats_display"`
}

// RegistrationLedger is the authoritative in-memory record of groups, seats,
// and registrations. Register performs the whole check-then-act sequence as
// one atomic unit; Snapshot reflects a single consistent instant.
type RegistrationLedger interface {
	Register(name, email, identity, groupID string) (*RegistrationResult, error)
	Snapshot() []GroupSnapshot
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"groupsignup/internal/domain"
)

const defaultRefreshRateMS = 2000

// GroupDefinition is one group entry in the event file.
type GroupDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slots       int    `json:"slots"`
	Description string `json:"description"`
}

// EventSettings carries the technical settings shared with clients. The
// refresh rate doubles as the visitor liveness window, so a dashboard
// polling at the advertised rate is never counted as gone.
type EventSettings struct {
	RefreshRateMS int `json:"refresh_rate_ms"`
}

// EventFile is the organizer-edited JSON definition of the event: poll
// settings plus the groups visitors can register into.
type EventFile struct {
	Settings EventSettings     `json:"settings"`
	Groups   []GroupDefinition `json:"groups"`
}

// LoadEventFile reads and validates the event definition at path. Malformed
// definitions (duplicate or empty group ids, non-positive seat counts,
// negative refresh rate) are rejected before any ledger is built.
func LoadEventFile(path string) (*EventFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event file: %w", err)
	}
	var f EventFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse event file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("invalid event file %s: %w", path, err)
	}
	if f.Settings.RefreshRateMS == 0 {
		f.Settings.RefreshRateMS = defaultRefreshRateMS
	}
	return &f, nil
}

func (f *EventFile) validate() error {
	if f.Settings.RefreshRateMS < 0 {
		return fmt.Errorf("refresh_rate_ms must not be negative, got %d", f.Settings.RefreshRateMS)
	}
	seen := make(map[string]struct{}, len(f.Groups))
	for i, g := range f.Groups {
		if g.ID == "" {
			return fmt.Errorf("group #%d has an empty id", i)
		}
		if _, dup := seen[g.ID]; dup {
			return fmt.Errorf("duplicate group id %q", g.ID)
		}
		seen[g.ID] = struct{}{}
		if g.Slots <= 0 {
			return fmt.Errorf("group %q must have a positive slot count, got %d", g.ID, g.Slots)
		}
	}
	return nil
}

// PollInterval returns the shared refresh rate as a duration. It is both the
// interval clients are told to poll at and the liveness staleness window.
func (f *EventFile) PollInterval() time.Duration {
	return time.Duration(f.Settings.RefreshRateMS) * time.Millisecond
}

// DomainGroups converts the definitions into domain groups with all seats
// available.
func (f *EventFile) DomainGroups() []domain.Group {
	groups := make([]domain.Group, 0, len(f.Groups))
	for _, g := range f.Groups {
		groups = append(groups, domain.Group{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			Available:   g.Slots,
			Total:       g.Slots,
		})
	}
	return groups
}

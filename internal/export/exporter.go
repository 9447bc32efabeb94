// Package export writes the final flat registration report.
package export

import (
	"fmt"
	"io"
	"os"

	"groupsignup/internal/domain"
)

// Source provides the consistent ledger view the report is built from.
type Source interface {
	Snapshot() []domain.GroupSnapshot
}

// Exporter formats a ledger snapshot as a human-readable report: one header
// line per group with its remaining capacity, one line per registrant, groups
// separated by a blank line, in configured group order.
type Exporter struct {
	source Source
}

// New returns an Exporter reading from source.
func New(source Source) *Exporter {
	return &Exporter{source: source}
}

// WriteTo writes the report to w. The snapshot is taken once, so the report
// is internally consistent even if registrations are still arriving.
func (e *Exporter) WriteTo(w io.Writer) error {
	for _, g := range e.source.Snapshot() {
		if _, err := fmt.Fprintf(w, "Group %s (Capacity left: %d/%d):\n", g.ID, g.Available, g.Total); err != nil {
			return fmt.Errorf("write group header: %w", err)
		}
		for _, r := range g.Registrants {
			if _, err := fmt.Fprintf(w, "%s - %s\n", r.Name, r.Email); err != nil {
				return fmt.Errorf("write registrant: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("write separator: %w", err)
		}
	}
	return nil
}

// SaveToFile writes the report to path, truncating any previous report.
// Failures are returned to the caller; registrations already committed in
// memory remain valid regardless.
func (e *Exporter) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := e.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"groupsignup/internal/domain"
	"groupsignup/internal/metrics"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type registrationService struct {
	ledger       domain.RegistrationLedger
	emailService domain.EmailService
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// NewRegistrationService creates a RegistrationService over the given ledger.
// emailService and m may be nil; confirmation emails and metrics are then
// skipped.
func NewRegistrationService(ledger domain.RegistrationLedger, emailService domain.EmailService, m *metrics.Metrics, logger *slog.Logger) domain.RegistrationService {
	return &registrationService{
		ledger:       ledger,
		emailService: emailService,
		metrics:      m,
		logger:       logger,
	}
}

func (s *registrationService) Register(ctx context.Context, name, email, identity, groupID string) (*domain.RegistrationResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	// Input shape checks happen before the ledger is touched.
	if name == "" {
		return nil, s.reject(name, email, identity, groupID, domain.ErrMissingName)
	}
	if email == "" {
		return nil, s.reject(name, email, identity, groupID, domain.ErrMissingEmail)
	}
	if !emailRegexp.MatchString(email) {
		return nil, s.reject(name, email, identity, groupID, domain.ErrInvalidEmail)
	}

	result, err := s.ledger.Register(name, email, identity, groupID)
	if err != nil {
		return nil, s.reject(name, email, identity, groupID, err)
	}

	if s.metrics != nil {
		s.metrics.Registrations.WithLabelValues("success").Inc()
		s.metrics.SeatsAvailable.WithLabelValues(result.GroupID).Set(float64(result.Available))
	}
	s.logger.Info("registration accepted",
		"name", name,
		"email", email,
		"visitor", identity,
		"group", result.GroupID,
		"occupancy", s.occupancy(),
	)

	if s.emailService != nil {
		data := &domain.ConfirmationEmailData{
			Email:        email,
			Name:         name,
			GroupName:    result.GroupName,
			SeatsDisplay: result.SeatsDisplay,
		}
		if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
			// Best effort: the seat is committed either way.
			s.logger.Warn("confirmation email failed", "email", email, "error", err)
		}
	}
	return result, nil
}

func (s *registrationService) Snapshot(_ context.Context) []domain.GroupSnapshot {
	return s.ledger.Snapshot()
}

func (s *registrationService) reject(name, email, identity, groupID string, err error) error {
	if s.metrics != nil {
		s.metrics.Registrations.WithLabelValues(outcomeLabel(err)).Inc()
	}
	s.logger.Info("registration rejected",
		"name", name,
		"email", email,
		"visitor", identity,
		"group", groupID,
		"reason", err.Error(),
		"occupancy", s.occupancy(),
	)
	return err
}

// occupancy renders the current seat state of every group for log lines,
// e.g. ["A 1/2", "B 0/5"].
func (s *registrationService) occupancy() []string {
	snap := s.ledger.Snapshot()
	out := make([]string, 0, len(snap))
	for _, g := range snap {
		out = append(out, fmt.Sprintf("%s %d/%d", g.ID, g.Available, g.Total))
	}
	return out
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingName), errors.Is(err, domain.ErrMissingEmail), errors.Is(err, domain.ErrInvalidEmail):
		return "invalid_input"
	case errors.Is(err, domain.ErrMissingIdentity):
		return "missing_identity"
	case errors.Is(err, domain.ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return "duplicate_email"
	case errors.Is(err, domain.ErrDuplicateIdentity):
		return "duplicate_identity"
	case errors.Is(err, domain.ErrUnknownGroup):
		return "unknown_group"
	case errors.Is(err, domain.ErrGroupFull):
		return "group_full"
	default:
		return "error"
	}
}

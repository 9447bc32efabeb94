package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ConfirmationEmailData holds data for the registration confirmation email.
type ConfirmationEmailData struct {
	Email        string
	Name         string
	GroupName    string
	SeatsDisplay string
}

// EmailService defines the contract for sending domain-level emails.
// Sending is best effort: a failure never affects a committed registration.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *ConfirmationEmailData) error
}

// Package contact validates the contact form. Submission is simulated; nothing is sent over
// the network.
package contact

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const (
	// SubmitDelay is how long the simulated submission takes.
	SubmitDelay = 2 * time.Second

	SendingLabel   = "Envoi en cours..."
	SuccessMessage = "Message envoyé avec succès !"
)

var (
	ErrMissingField = errors.New("Veuillez remplir tous les champs")
	ErrInvalidEmail = errors.New("Veuillez entrer une adresse email valide")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is the contact form content.
type Form struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate checks every field is filled, then that the email looks like local@domain.tld.
func (f Form) Validate() error {
	for _, v := range []string{f.Name, f.Email, f.Subject, f.Message} {
		if v == "" {
			return ErrMissingField
		}
	}
	if !ValidEmail(f.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidEmail matches local@domain.tld with no whitespace and a single @.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Reason is a short metric-friendly name for a validation error.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrInvalidEmail):
		return "invalid_email"
	default:
		return strings.ReplaceAll(strings.ToLower(err.Error()), " ", "_")
	}
}

// Package submit builds quote requests from a finished quote and hands them
// off over NATS.
package submit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidContact is returned when contact details are missing or
// inconsistent with the preferred contact method.
var ErrInvalidContact = errors.New("invalid contact")

// ContactMethod is how the customer wants to be reached.
type ContactMethod string

const (
	ContactEmail ContactMethod = "email"
	ContactPhone ContactMethod = "phone"
)

// ParseContactMethod parses "email" or "phone". Empty means email.
func ParseContactMethod(s string) (ContactMethod, error) {
	switch ContactMethod(strings.ToLower(strings.TrimSpace(s))) {
	case "", ContactEmail:
		return ContactEmail, nil
	case ContactPhone:
		return ContactPhone, nil
	}
	return "", fmt.Errorf("%w: preferred contact %q (want email or phone)", ErrInvalidContact, s)
}

// Contact is the customer's details attached to a quote request.
type Contact struct {
	Name             string        `json:"customerName"`
	Email            string        `json:"email,omitempty"`
	Phone            string        `json:"phone,omitempty"`
	Address          string        `json:"address,omitempty"`
	PreferredContact ContactMethod `json:"preferredContact"`
	Notes            string        `json:"additionalNotes,omitempty"`
}

// Validate requires a name and the detail matching the preferred method.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidContact)
	}
	switch c.PreferredContact {
	case ContactEmail, "":
		if strings.TrimSpace(c.Email) == "" {
			return fmt.Errorf("%w: email is required when email is preferred", ErrInvalidContact)
		}
		if !strings.Contains(c.Email, "@") {
			return fmt.Errorf("%w: email %q is not an address", ErrInvalidContact, c.Email)
		}
	case ContactPhone:
		if strings.TrimSpace(c.Phone) == "" {
			return fmt.Errorf("%w: phone is required when phone is preferred", ErrInvalidContact)
		}
	default:
		return fmt.Errorf("%w: preferred contact %q", ErrInvalidContact, c.PreferredContact)
	}
	return nil
}

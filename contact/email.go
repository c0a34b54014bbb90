package contact

import (
	"fmt"
	"strings"

	"github.com/arloliu/santa/types"
)

// Email is an email ContactMethod.
type Email struct {
	value string
	opts  options
}

var _ types.ContactMethod = (*Email)(nil)

// NewEmail creates an email contact from raw input.
//
// The input must be at least 6 characters long and contain '@'.
//
// Parameters:
//   - raw: Raw email address, e.g. "alice@blah.com"
//   - opts: Optional transport and logger
//
// Returns:
//   - *Email: Email contact
//   - error: types.ErrInvalidFormat if the input fails the check
func NewEmail(raw string, opts ...Option) (*Email, error) {
	if len(raw) < minLength {
		return nil, fmt.Errorf("email %q shorter than %d characters: %w", raw, minLength, types.ErrInvalidFormat)
	}
	if !strings.Contains(raw, "@") {
		return nil, fmt.Errorf("email %q has no '@': %w", raw, types.ErrInvalidFormat)
	}

	return &Email{value: raw, opts: buildOptions(opts)}, nil
}

// Kind returns types.ContactEmail.
func (e *Email) Kind() types.ContactKind {
	return types.ContactEmail
}

// Value returns the email address.
func (e *Email) Value() string {
	return e.value
}

// Deliver sends message to the address through the configured transport.
func (e *Email) Deliver(message string) {
	deliver(e.opts, types.ContactEmail, e.value, message)
}

// String returns the email address.
func (e *Email) String() string {
	return e.value
}

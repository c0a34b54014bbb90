package contact

import (
	"fmt"
	"strings"

	"github.com/arloliu/santa/types"
)

// PhoneNumber is a phone ContactMethod.
type PhoneNumber struct {
	value string
	opts  options
}

var _ types.ContactMethod = (*PhoneNumber)(nil)

// NewPhoneNumber creates a phone contact from raw input.
//
// The input must be at least 6 characters long. A leading '+' is prepended
// when missing; no other digit validation is performed.
//
// Parameters:
//   - raw: Raw phone number, e.g. "441122334455" or "+441122334455"
//   - opts: Optional transport and logger
//
// Returns:
//   - *PhoneNumber: Normalized phone contact
//   - error: types.ErrInvalidFormat if the input is too short
//
// Example:
//
//	phone, err := contact.NewPhoneNumber("441122334455")
//	// phone.Value() == "+441122334455"
func NewPhoneNumber(raw string, opts ...Option) (*PhoneNumber, error) {
	if len(raw) < minLength {
		return nil, fmt.Errorf("phone number %q shorter than %d characters: %w", raw, minLength, types.ErrInvalidFormat)
	}

	value := raw
	if !strings.HasPrefix(value, "+") {
		value = "+" + value
	}

	return &PhoneNumber{value: value, opts: buildOptions(opts)}, nil
}

// Kind returns types.ContactPhone.
func (p *PhoneNumber) Kind() types.ContactKind {
	return types.ContactPhone
}

// Value returns the normalized phone number.
func (p *PhoneNumber) Value() string {
	return p.value
}

// Deliver sends message to the phone number through the configured transport.
func (p *PhoneNumber) Deliver(message string) {
	deliver(p.opts, types.ContactPhone, p.value, message)
}

// String returns the normalized phone number.
func (p *PhoneNumber) String() string {
	return p.value
}

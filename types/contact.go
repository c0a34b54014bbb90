package types

// ContactKind identifies the channel a ContactMethod delivers through.
type ContactKind string

const (
	// ContactPhone delivers via a phone number (SMS or similar).
	ContactPhone ContactKind = "phone"

	// ContactEmail delivers via an email address.
	ContactEmail ContactKind = "email"
)

// String returns the kind name.
func (k ContactKind) String() string {
	return string(k)
}

// ContactMethod is a pluggable channel through which a participant is notified.
//
// Implementations validate their value at construction time, so a ContactMethod
// value always carries a well-formed address. Built-in variants live in the
// contact package:
//   - contact.PhoneNumber: normalized with a leading '+'
//   - contact.Email: must contain '@'
//
// Custom channels can be implemented by satisfying this interface.
type ContactMethod interface {
	// Kind returns the channel kind of this contact.
	Kind() ContactKind

	// Value returns the normalized contact address.
	Value() string

	// Deliver sends a message to this contact.
	//
	// Delivery is fire-and-forget from the caller's perspective: transport
	// failures are handled (logged) by the implementation and never returned.
	Deliver(message string)
}

// Transport is the delivery capability a ContactMethod sends through.
//
// Transports are external collaborators: they own retries, batching and error
// reporting for the underlying channel. Implementations must be safe for
// concurrent use because a Santa may deliver in parallel.
type Transport interface {
	// Send delivers message to address over the given channel kind.
	//
	// Parameters:
	//   - kind: Channel kind of the destination contact
	//   - address: Normalized contact value
	//   - message: Message body
	//
	// Returns:
	//   - error: Transport failure, logged by the calling ContactMethod
	Send(kind ContactKind, address, message string) error
}

package santa

import "github.com/arloliu/santa/types"

// Re-export types from the types package.
//
// The types subpackage holds the actual definitions so that contact, algorithm
// and transport can depend on them without importing the root package, while
// users still get a convenient santa.Person, santa.Pairing, etc.
type (
	Person      = types.Person
	Pairing     = types.Pairing
	ContactKind = types.ContactKind
)

// Re-export interfaces from the types package for convenience.
type (
	ContactMethod    = types.ContactMethod
	Transport        = types.Transport
	Algorithm        = types.Algorithm
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export constants from the types package.
const (
	MinParticipants = types.MinParticipants
	ContactPhone    = types.ContactPhone
	ContactEmail    = types.ContactEmail
)

// NewPerson creates a participant. See types.NewPerson.
func NewPerson(name string, contact ContactMethod) Person {
	return types.NewPerson(name, contact)
}

// Assignment is a pairing resolved to the two participants it refers to.
type Assignment struct {
	Giver     Person
	Recipient Person
}

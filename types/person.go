package types

import "fmt"

// Person is a Secret Santa participant.
//
// A Person is immutable after construction. Equality is by name plus contact
// (kind and value); use Equal rather than == since the contact is an interface.
type Person struct {
	name    string
	contact ContactMethod
}

// NewPerson creates a participant with the given name and contact method.
//
// Parameters:
//   - name: Display name of the participant
//   - contact: Validated contact method (see the contact package)
//
// Returns:
//   - Person: Immutable participant value
//
// Example:
//
//	phone, err := contact.NewPhoneNumber("441122334455")
//	if err != nil { /* handle */ }
//	alice := types.NewPerson("Alice", phone)
func NewPerson(name string, contact ContactMethod) Person {
	return Person{name: name, contact: contact}
}

// Name returns the participant's name.
func (p Person) Name() string {
	return p.name
}

// Contact returns the participant's contact method.
func (p Person) Contact() ContactMethod {
	return p.contact
}

// Equal reports whether two participants have the same name and contact.
func (p Person) Equal(other Person) bool {
	if p.name != other.name {
		return false
	}
	if p.contact == nil || other.contact == nil {
		return p.contact == nil && other.contact == nil
	}

	return p.contact.Kind() == other.contact.Kind() && p.contact.Value() == other.contact.Value()
}

// String renders the participant as "Name <value>".
func (p Person) String() string {
	if p.contact == nil {
		return p.name
	}

	return fmt.Sprintf("%s <%s>", p.name, p.contact.Value())
}

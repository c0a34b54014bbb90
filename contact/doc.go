// Package contact provides the built-in ContactMethod variants.
//
// Variants:
//   - PhoneNumber: at least 6 characters, normalized with a leading '+'
//   - Email: at least 6 characters and containing '@'
//
// The format checks are deliberately weak; they reject obvious typos, not
// every invalid address. Construction is the only failure point. Delivery goes
// through an injected types.Transport (transport.Log by default) and never
// reports failures to the caller.
package contact

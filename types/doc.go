// Package types provides core type definitions and interfaces for the santa library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root santa package and the contact, algorithm and transport packages.
//
// Key types:
//   - ContactMethod: Pluggable notification channel (phone, email)
//   - Transport: Delivery capability a ContactMethod sends through
//   - Person: Participant name plus one ContactMethod
//   - Pairing: Index-based giver→recipient relation
//   - Algorithm: Pairing generation strategy
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types

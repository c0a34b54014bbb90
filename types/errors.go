package types

import "errors"

// Sentinel errors for the santa library.
//
// These errors provide type-safe error checking using errors.Is().
// Components wrap them with context using fmt.Errorf("%s: %w", msg, err).

// Construction errors - returned when building contacts, participants or a Santa.
var (
	// ErrInvalidFormat is returned when a raw contact value fails its variant's format check.
	ErrInvalidFormat = errors.New("invalid contact format")

	// ErrInsufficientParticipants is returned when fewer than MinParticipants are supplied.
	ErrInsufficientParticipants = errors.New("insufficient participants")

	// ErrAlgorithmRequired is returned when the pairing algorithm is nil.
	ErrAlgorithmRequired = errors.New("pairing algorithm is required")

	// ErrContactRequired is returned when a participant has no contact method.
	ErrContactRequired = errors.New("contact method is required")

	// ErrUnknownAlgorithm is returned when an algorithm name cannot be resolved.
	ErrUnknownAlgorithm = errors.New("unknown pairing algorithm")
)

// Pairing errors - returned when a pairing set breaks the single-cycle invariant.
var (
	// ErrInvalidPairings is returned when pairings are not a single cycle over all participants.
	ErrInvalidPairings = errors.New("invalid pairings")
)

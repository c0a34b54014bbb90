package santa

import "github.com/arloliu/santa/types"

// Sentinel errors returned by Santa and the packages it drives.
//
// They are re-exported from the types package so callers only need to import santa.
var (
	// ErrInvalidFormat is returned when a contact value fails its format check.
	ErrInvalidFormat = types.ErrInvalidFormat

	// ErrInsufficientParticipants is returned by New when fewer than MinParticipants are supplied.
	ErrInsufficientParticipants = types.ErrInsufficientParticipants

	// ErrAlgorithmRequired is returned by New when the algorithm is nil.
	ErrAlgorithmRequired = types.ErrAlgorithmRequired

	// ErrContactRequired is returned by New when a participant has no contact method.
	ErrContactRequired = types.ErrContactRequired

	// ErrUnknownAlgorithm is returned when an algorithm name cannot be resolved.
	ErrUnknownAlgorithm = types.ErrUnknownAlgorithm

	// ErrInvalidPairings is returned when pairings are not a single cycle over the participants.
	ErrInvalidPairings = types.ErrInvalidPairings
)

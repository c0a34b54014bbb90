package types

// MinParticipants is the smallest group that can form a meaningful gift cycle.
const MinParticipants = 3

// Algorithm generates Secret Santa pairings for an ordered list of participants.
//
// Algorithms implement different pairing strategies:
//   - InOrder: Deterministic cycle following input order
//   - RandomClosedLoop: Uniformly shuffled Hamiltonian cycle
//   - Custom: User-defined algorithms
//
// Algorithm implementations must:
//   - Return exactly len(participants) pairings
//   - Form a single cycle touching every participant once as giver and once as recipient
//   - Never pair a participant with themselves
//
// Callers guarantee len(participants) >= MinParticipants; implementations do not
// re-check it. Duplicate participants are not deduplicated.
type Algorithm interface {
	// Name returns a short identifier used in logs and metrics (e.g., "in-order").
	Name() string

	// GeneratePairings produces giver→recipient pairings as indices into participants.
	//
	// Parameters:
	//   - participants: Ordered participant list (len >= MinParticipants)
	//
	// Returns:
	//   - []Pairing: Exactly len(participants) pairings forming a single cycle
	GeneratePairings(participants []Person) []Pairing
}

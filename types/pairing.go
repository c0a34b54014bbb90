package types

import "fmt"

// Pairing is a directed giver→recipient relation between two participants.
//
// Giver and Recipient are indices into the participant list the pairing was
// generated from. Pairings never own participants; resolve them through the
// list (or Santa.Resolve) that produced them.
type Pairing struct {
	// Giver is the index of the gift giver.
	Giver int `json:"giver"`

	// Recipient is the index of the gift recipient.
	Recipient int `json:"recipient"`
}

// NewPairing creates a pairing from giver index to recipient index.
func NewPairing(giver, recipient int) Pairing {
	return Pairing{Giver: giver, Recipient: recipient}
}

// String renders the pairing as "giver->recipient".
func (p Pairing) String() string {
	return fmt.Sprintf("%d->%d", p.Giver, p.Recipient)
}

// VerifyPairings checks that pairings form exactly one cycle over n participants.
//
// The check enforces, in order:
//   - exactly n pairings
//   - every index within [0, n)
//   - no self-pairing
//   - every participant gives exactly once and receives exactly once
//   - following giver→recipient edges from participant 0 visits all n
//     participants before returning to the start
//
// Parameters:
//   - pairings: Pairings to verify
//   - n: Number of participants the pairings index into
//
// Returns:
//   - error: ErrInvalidPairings wrapped with the first violation, nil if valid
func VerifyPairings(pairings []Pairing, n int) error {
	if len(pairings) != n {
		return fmt.Errorf("%w: got %d pairings for %d participants", ErrInvalidPairings, len(pairings), n)
	}
	if n == 0 {
		return nil
	}

	next := make([]int, n)
	received := make([]bool, n)
	for i := range next {
		next[i] = -1
	}

	for _, p := range pairings {
		if p.Giver < 0 || p.Giver >= n || p.Recipient < 0 || p.Recipient >= n {
			return fmt.Errorf("%w: pairing %s out of range", ErrInvalidPairings, p)
		}
		if p.Giver == p.Recipient {
			return fmt.Errorf("%w: participant %d paired with themselves", ErrInvalidPairings, p.Giver)
		}
		if next[p.Giver] != -1 {
			return fmt.Errorf("%w: participant %d gives more than once", ErrInvalidPairings, p.Giver)
		}
		if received[p.Recipient] {
			return fmt.Errorf("%w: participant %d receives more than once", ErrInvalidPairings, p.Recipient)
		}
		next[p.Giver] = p.Recipient
		received[p.Recipient] = true
	}

	// Walk the permutation from 0; a single cycle returns to 0 after exactly n steps.
	steps := 0
	cur := 0
	for {
		cur = next[cur]
		steps++
		if cur == 0 {
			break
		}
	}
	if steps != n {
		return fmt.Errorf("%w: cycle through participant 0 has length %d, want %d", ErrInvalidPairings, steps, n)
	}

	return nil
}

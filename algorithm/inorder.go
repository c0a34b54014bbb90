package algorithm

import "github.com/arloliu/santa/types"

// InOrderName is the name reported by InOrder.
const InOrderName = "in-order"

// InOrder pairs participants in the order they appear in the list.
type InOrder struct{}

var _ types.Algorithm = (*InOrder)(nil)

// NewInOrder creates a new in-order algorithm.
//
// Example:
//
//	s, err := santa.New(participants, algorithm.NewInOrder())
func NewInOrder() *InOrder {
	return &InOrder{}
}

// Name returns InOrderName.
func (a *InOrder) Name() string {
	return InOrderName
}

// GeneratePairings pairs each participant with the next one in input order.
//
// For participants [p0, p1, ..., pn-1] the result is
// (p0→p1), (p1→p2), ..., (pn-2→pn-1), (pn-1→p0).
func (a *InOrder) GeneratePairings(participants []types.Person) []types.Pairing {
	return closeLoop(identity(len(participants)))
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	return order
}

// closeLoop pairs consecutive entries of order, then the last entry back to the first.
func closeLoop(order []int) []types.Pairing {
	if len(order) == 0 {
		return nil
	}

	pairings := make([]types.Pairing, 0, len(order))
	for i := 0; i+1 < len(order); i++ {
		pairings = append(pairings, types.NewPairing(order[i], order[i+1]))
	}
	pairings = append(pairings, types.NewPairing(order[len(order)-1], order[0]))

	return pairings
}

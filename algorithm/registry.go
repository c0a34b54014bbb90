package algorithm

import (
	"fmt"
	"strings"

	"github.com/arloliu/santa/types"
)

// Names lists the algorithm names ByName accepts.
func Names() []string {
	return []string{InOrderName, RandomClosedLoopName, HamiltonianName}
}

// ByName resolves an algorithm by name.
//
// Parameters:
//   - name: "in-order", "random-closed-loop" or "hamiltonian" (case-insensitive)
//   - src: Random source for the random algorithms (nil means system-seeded)
//
// Returns:
//   - types.Algorithm: Resolved algorithm
//   - error: types.ErrUnknownAlgorithm for any other name
func ByName(name string, src RandSource) (types.Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case InOrderName:
		return NewInOrder(), nil
	case RandomClosedLoopName, HamiltonianName:
		return NewRandomClosedLoop(src), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", types.ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
	}
}

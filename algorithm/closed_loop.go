package algorithm

import (
	"reflect"
	"sync"

	"github.com/arloliu/santa/types"
)

// RandomClosedLoopName is the name reported by RandomClosedLoop.
const RandomClosedLoopName = "random-closed-loop"

// HamiltonianName is accepted by ByName as an alias of RandomClosedLoopName.
const HamiltonianName = "hamiltonian"

// RandomClosedLoop pairs participants along a uniformly random Hamiltonian cycle.
//
// Each call consumes entropy from the injected source, so repeated calls on
// the same instance yield different (valid) cycles, while two instances built
// from identically seeded sources yield identical sequences of cycles.
type RandomClosedLoop struct {
	mu  sync.Mutex
	src RandSource
}

var _ types.Algorithm = (*RandomClosedLoop)(nil)

// NewRandomClosedLoop creates a random closed-loop algorithm using src.
//
// Parameters:
//   - src: Random source (nil, including a typed nil pointer, falls back to NewSystemSource)
//
// Returns:
//   - *RandomClosedLoop: Initialized algorithm
//
// Example:
//
//	draw := algorithm.NewRandomClosedLoop(algorithm.NewSeededSource(2026))
//	s, err := santa.New(participants, draw)
func NewRandomClosedLoop(src RandSource) *RandomClosedLoop {
	if isNilSource(src) {
		src = NewSystemSource()
	}

	return &RandomClosedLoop{src: src}
}

func isNilSource(src RandSource) bool {
	if src == nil {
		return true
	}

	v := reflect.ValueOf(src)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// NewDefaultRandomClosedLoop creates a random closed-loop algorithm on a system-seeded source.
func NewDefaultRandomClosedLoop() *RandomClosedLoop {
	return NewRandomClosedLoop(NewSystemSource())
}

// NewHamiltonian is an alias of NewRandomClosedLoop.
func NewHamiltonian(src RandSource) *RandomClosedLoop {
	return NewRandomClosedLoop(src)
}

// Name returns RandomClosedLoopName.
func (a *RandomClosedLoop) Name() string {
	return RandomClosedLoopName
}

// GeneratePairings shuffles the participant indices and closes them into a loop.
//
// The algorithm:
//  1. Build the index sequence [0, 1, ..., n-1]
//  2. Shuffle it uniformly with the injected source
//  3. Pair consecutive shuffled indices, then the last back to the first
func (a *RandomClosedLoop) GeneratePairings(participants []types.Person) []types.Pairing {
	order := identity(len(participants))

	// Sources such as *rand.Rand are not safe for concurrent use.
	a.mu.Lock()
	a.src.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	a.mu.Unlock()

	return closeLoop(order)
}

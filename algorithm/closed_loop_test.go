package algorithm

import (
	"fmt"
	rand "math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/santa/types"
)

// reverseSource reverses the sequence instead of shuffling it.
type reverseSource struct{}

func (reverseSource) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func TestRandomClosedLoop_GeneratePairings(t *testing.T) {
	t.Run("walks the shuffled order", func(t *testing.T) {
		people := phonePeople(t, "Alice", "Bob", "Charlie", "Dan")

		pairings := NewRandomClosedLoop(reverseSource{}).GeneratePairings(people)

		require.Equal(t, []types.Pairing{
			{Giver: 3, Recipient: 2},
			{Giver: 2, Recipient: 1},
			{Giver: 1, Recipient: 0},
			{Giver: 0, Recipient: 3},
		}, pairings)
	})

	t.Run("forms a single cycle for every size", func(t *testing.T) {
		algo := NewRandomClosedLoop(NewSeededSource(7))
		for n := types.MinParticipants; n <= 25; n++ {
			people := numberedPeople(t, n)
			for range 20 {
				requireSingleCycle(t, algo.GeneratePairings(people), n)
			}
		}
	})

	t.Run("includes every participant", func(t *testing.T) {
		people := numberedPeople(t, 5)
		pairings := NewRandomClosedLoop(NewSeededSource(1)).GeneratePairings(people)

		givers := make([]int, 0, len(pairings))
		for _, p := range pairings {
			givers = append(givers, p.Giver)
		}
		require.ElementsMatch(t, []int{0, 1, 2, 3, 4}, givers)
	})

	t.Run("same seed reproduces the same draws", func(t *testing.T) {
		people := numberedPeople(t, 10)
		first := NewRandomClosedLoop(NewSeededSource(2026))
		second := NewRandomClosedLoop(NewSeededSource(2026))

		for range 5 {
			require.Equal(t, first.GeneratePairings(people), second.GeneratePairings(people))
		}
	})

	t.Run("successive calls consume the source", func(t *testing.T) {
		people := numberedPeople(t, 10)
		algo := NewRandomClosedLoop(NewSeededSource(2026))

		require.NotEqual(t, algo.GeneratePairings(people), algo.GeneratePairings(people))
	})

	t.Run("nil source falls back to system source", func(t *testing.T) {
		algo := NewRandomClosedLoop(nil)
		requireSingleCycle(t, algo.GeneratePairings(numberedPeople(t, 6)), 6)
	})

	t.Run("typed nil source falls back to system source", func(t *testing.T) {
		var src *rand.Rand

		algo := NewRandomClosedLoop(src)
		require.NotPanics(t, func() {
			requireSingleCycle(t, algo.GeneratePairings(numberedPeople(t, 6)), 6)
		})
		require.NotPanics(t, func() {
			requireSingleCycle(t, NewHamiltonian(src).GeneratePairings(numberedPeople(t, 4)), 4)
		})
	})

	t.Run("default and alias constructors", func(t *testing.T) {
		requireSingleCycle(t, NewDefaultRandomClosedLoop().GeneratePairings(numberedPeople(t, 4)), 4)
		requireSingleCycle(t, NewHamiltonian(NewSeededSource(3)).GeneratePairings(numberedPeople(t, 4)), 4)
		require.Equal(t, RandomClosedLoopName, NewHamiltonian(nil).Name())
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		people := numberedPeople(t, 8)
		algo := NewRandomClosedLoop(NewSeededSource(9))

		var wg sync.WaitGroup
		results := make([][]types.Pairing, 16)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = algo.GeneratePairings(people)
			}()
		}
		wg.Wait()

		for _, pairings := range results {
			require.NoError(t, types.VerifyPairings(pairings, len(people)))
		}
	})
}

// cycleKey renders the successor of each participant, identifying a cycle uniquely.
func cycleKey(pairings []types.Pairing) string {
	next := make([]int, len(pairings))
	for _, p := range pairings {
		next[p.Giver] = p.Recipient
	}

	return fmt.Sprint(next)
}

func TestRandomClosedLoop_Uniformity(t *testing.T) {
	tests := []struct {
		n      int
		cycles int // (n-1)! distinct Hamiltonian cycles
		draws  int
	}{
		{n: 3, cycles: 2, draws: 6000},
		{n: 4, cycles: 6, draws: 12000},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			people := numberedPeople(t, tt.n)
			algo := NewRandomClosedLoop(NewSeededSource(uint64(tt.n)))

			counts := make(map[string]int)
			for range tt.draws {
				counts[cycleKey(algo.GeneratePairings(people))]++
			}

			require.Len(t, counts, tt.cycles)
			expected := tt.draws / tt.cycles
			for key, got := range counts {
				require.InDelta(t, expected, got, float64(expected)/10, "cycle %s", key)
			}
		})
	}
}

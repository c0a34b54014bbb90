package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/santa/types"
)

func TestInOrder_GeneratePairings(t *testing.T) {
	t.Run("pairs in input order and closes the loop", func(t *testing.T) {
		people := phonePeople(t, "Alice", "Bob", "Charlie", "Dan", "Evelyn")

		pairings := NewInOrder().GeneratePairings(people)

		require.Equal(t, []types.Pairing{
			{Giver: 0, Recipient: 1},
			{Giver: 1, Recipient: 2},
			{Giver: 2, Recipient: 3},
			{Giver: 3, Recipient: 4},
			{Giver: 4, Recipient: 0},
		}, pairings)
		require.Equal(t, "Evelyn", people[pairings[4].Giver].Name())
		require.Equal(t, "Alice", people[pairings[4].Recipient].Name())
	})

	t.Run("is deterministic", func(t *testing.T) {
		people := numberedPeople(t, 12)
		algo := NewInOrder()

		require.Equal(t, algo.GeneratePairings(people), algo.GeneratePairings(people))
	})

	t.Run("forms a single cycle for every size", func(t *testing.T) {
		for n := types.MinParticipants; n <= 25; n++ {
			requireSingleCycle(t, NewInOrder().GeneratePairings(numberedPeople(t, n)), n)
		}
	})

	t.Run("reports its name", func(t *testing.T) {
		require.Equal(t, InOrderName, NewInOrder().Name())
	})
}

func TestCloseLoop_Empty(t *testing.T) {
	require.Nil(t, closeLoop(nil))
}

package algorithm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/santa/contact"
	"github.com/arloliu/santa/types"
)

func phonePeople(t *testing.T, names ...string) []types.Person {
	t.Helper()

	people := make([]types.Person, len(names))
	for i, name := range names {
		phone, err := contact.NewPhoneNumber(fmt.Sprintf("4411223344%02d", i))
		require.NoError(t, err)
		people[i] = types.NewPerson(name, phone)
	}

	return people
}

func numberedPeople(t *testing.T, n int) []types.Person {
	t.Helper()

	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("person-%d", i)
	}

	return phonePeople(t, names...)
}

// requireSingleCycle asserts the derangement and single-cycle coverage properties.
func requireSingleCycle(t *testing.T, pairings []types.Pairing, n int) {
	t.Helper()

	require.Len(t, pairings, n)
	for _, p := range pairings {
		require.NotEqual(t, p.Giver, p.Recipient, "self pairing %s", p)
	}

	next := make(map[int]int, n)
	for _, p := range pairings {
		next[p.Giver] = p.Recipient
	}

	visited := make(map[int]bool, n)
	cur := pairings[0].Giver
	for range n {
		require.False(t, visited[cur], "participant %d visited twice", cur)
		visited[cur] = true
		cur = next[cur]
	}
	require.Equal(t, pairings[0].Giver, cur, "walk must return to start after n steps")
	require.Len(t, visited, n)

	require.NoError(t, types.VerifyPairings(pairings, n))
}

// Package algorithm provides built-in pairing algorithm implementations.
//
// Pairing algorithms turn an ordered participant list into giver→recipient
// pairings. Both built-in algorithms produce a single cycle over all
// participants, so nobody gives to themselves and no sub-group is isolated:
//
//   - InOrder: Deterministic; each participant gives to the next in input order
//     and the last gives to the first
//   - RandomClosedLoop: Shuffles the participant order with an injected random
//     source, then closes the shuffled order into a loop (a random Hamiltonian
//     cycle)
//
// # Algorithm Selection Guide
//
// InOrder:
//   - Use when the caller already randomized the list, or for tests and demos
//   - Same input order always yields the same pairings
//
// RandomClosedLoop:
//   - Use for a real draw
//   - Reproducible with NewSeededSource or SeedFromPhrase
//
// Custom algorithms can be implemented by satisfying the types.Algorithm interface.
package algorithm

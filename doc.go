// Package santa provides a Go library for drawing Secret Santa pairings and
// notifying participants through pluggable contact channels.
//
// A Santa owns an ordered list of participants, each with one validated
// contact method (phone number or email). It delegates pairing to an
// Algorithm and guarantees every draw is a single closed loop: nobody gives
// to themselves and following giver to recipient visits every participant
// exactly once before returning to the start.
//
// # Quick Start
//
//	import (
//	    "github.com/arloliu/santa"
//	    "github.com/arloliu/santa/algorithm"
//	    "github.com/arloliu/santa/contact"
//	)
//
//	alice, _ := contact.NewPhoneNumber("441122334455")
//	bob, _ := contact.NewEmail("bob@example.com")
//	carol, _ := contact.NewPhoneNumber("+441122334466")
//
//	s, err := santa.New([]santa.Person{
//	    santa.NewPerson("Alice", alice),
//	    santa.NewPerson("Bob", bob),
//	    santa.NewPerson("Carol", carol),
//	}, algorithm.NewDefaultRandomClosedLoop())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pairings := s.GeneratePairings()
//	if err := s.NotifyAssignments(pairings); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pairings
//
// Pairings are index based: Pairing{Giver: 0, Recipient: 2} refers to the
// participants at positions 0 and 2 of Santa.Participants(). Use
// Santa.Resolve or Santa.Assignments to turn them back into people.
//
// # Algorithms
//
//   - algorithm.NewInOrder: each participant gives to the next one in list order
//   - algorithm.NewRandomClosedLoop: uniformly random single cycle from an injected source
//
// Seeded sources (algorithm.NewSeededSource, algorithm.SeedFromPhrase) make
// random draws reproducible.
//
// # Delivery
//
// Contact methods hand messages to a Transport. The default transport logs
// each delivery; transport.NewNATS publishes them to NATS subjects. Delivery
// failures are logged by the contact method and never returned to the caller.
//
// See the examples/ directory for a complete working program.
package santa

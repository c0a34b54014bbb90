package types

// Hooks defines callbacks for Santa events.
//
// All hooks are optional and run synchronously on the calling goroutine, except
// OnDelivered which runs on the delivering goroutine when parallel delivery is
// enabled.
//
// Example:
//
//	hooks := &santa.Hooks{
//	    OnPairingsGenerated: func(algorithm string, pairings []santa.Pairing) {
//	        audit.Record(algorithm, len(pairings))
//	    },
//	}
type Hooks struct {
	// OnPairingsGenerated is called after each call to the algorithm, including
	// calls whose output failed verification.
	OnPairingsGenerated func(algorithm string, pairings []Pairing)

	// OnDelivered is called after a message was handed to a participant's contact.
	OnDelivered func(person Person, message string)
}

package santa

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/santa/internal/hooks"
	"github.com/arloliu/santa/internal/logging"
	"github.com/arloliu/santa/internal/metrics"
	"github.com/arloliu/santa/types"
)

// Santa owns a group of participants and the algorithm that pairs them.
//
// Santa is the main entry point of the library. It handles:
//   - Validating the participant group at construction
//   - Delegating pairing generation to the configured Algorithm
//   - Notifying participants through their contact methods
//
// A Santa has no lifecycle beyond construction: once New succeeds it is ready
// and stays ready. GeneratePairings and the notification methods may be called
// any number of times. The participant list is never mutated after New.
//
// Thread Safety:
//   - Read-only accessors are safe for concurrent use
//   - GeneratePairings is safe for concurrent use when the Algorithm is
//     (both built-in algorithms are)
type Santa struct {
	participants []Person
	algorithm    Algorithm

	hooks   types.Hooks
	metrics MetricsCollector
	logger  Logger

	greeting    func(Person) string
	assignment  func(giver, recipient Person) string
	concurrency int
}

// New creates a Santa for the given participants and algorithm.
//
// New takes a private copy of participants; later changes to the caller's
// slice do not affect the Santa. Pairings produced by the Santa index into
// this copy.
//
// Parameters:
//   - participants: Ordered participant list (at least MinParticipants)
//   - algorithm: Pairing algorithm (see the algorithm package)
//   - opts: Optional configuration (logger, metrics, hooks, messages, concurrency)
//
// Returns:
//   - *Santa: Ready orchestrator
//   - error: ErrInsufficientParticipants, ErrAlgorithmRequired or ErrContactRequired
//
// Example:
//
//	people := []santa.Person{
//	    santa.NewPerson("Alice", alicePhone),
//	    santa.NewPerson("Bob", bobPhone),
//	    santa.NewPerson("Charlie", charlieEmail),
//	}
//	s, err := santa.New(people, algorithm.NewDefaultRandomClosedLoop())
//	if err != nil { /* handle */ }
//	pairings := s.GeneratePairings()
func New(participants []Person, algorithm Algorithm, opts ...Option) (*Santa, error) {
	if len(participants) < MinParticipants {
		return nil, fmt.Errorf("need at least %d participants, got %d: %w",
			MinParticipants, len(participants), ErrInsufficientParticipants)
	}
	if algorithm == nil {
		return nil, ErrAlgorithmRequired
	}
	for i, p := range participants {
		if !hasContact(p) {
			return nil, fmt.Errorf("participant %d (%q): %w", i, p.Name(), ErrContactRequired)
		}
	}

	options := &santaOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	greeting := options.greeting
	if greeting == nil {
		greeting = DefaultGreeting
	}

	assignment := options.assignment
	if assignment == nil {
		assignment = DefaultAssignmentMessage
	}

	s := &Santa{
		participants: slices.Clone(participants),
		algorithm:    algorithm,
		hooks:        hooks.Fill(options.hooks),
		metrics:      metricsCollector,
		logger:       loggerInstance,
		greeting:     greeting,
		assignment:   assignment,
		concurrency:  max(options.concurrency, 1),
	}

	s.metrics.RecordParticipants(len(s.participants))
	s.logger.Info("created santa",
		"participants", len(s.participants),
		"algorithm", algorithm.Name(),
	)

	return s, nil
}

// hasContact reports whether p carries a usable contact method. A typed nil
// pointer wrapped in the interface counts as missing.
func hasContact(p Person) bool {
	c := p.Contact()
	if c == nil {
		return false
	}

	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !v.IsNil()
	default:
		return true
	}
}

// Algorithm returns the algorithm the Santa delegates to.
func (s *Santa) Algorithm() Algorithm {
	return s.algorithm
}

// GeneratePairings asks the algorithm for a fresh set of pairings.
//
// Pairings index into Participants(). With a deterministic algorithm every
// call returns the same pairings; with a random one every call draws a new
// cycle from the shared random source.
//
// Output that breaks the single-cycle invariant (only possible with custom
// algorithms) is still returned, but logged at Error level and counted in
// metrics; use Verify to reject it.
//
// Returns:
//   - []Pairing: One pairing per participant
func (s *Santa) GeneratePairings() []Pairing {
	name := s.algorithm.Name()

	start := time.Now()
	pairings := s.algorithm.GeneratePairings(slices.Clone(s.participants))
	elapsed := time.Since(start)

	s.metrics.RecordPairingsGenerated(name, len(pairings), elapsed.Seconds())

	if err := types.VerifyPairings(pairings, len(s.participants)); err != nil {
		s.metrics.RecordInvalidPairings(name)
		s.logger.Error("algorithm produced invalid pairings", "algorithm", name, "error", err)
	} else {
		s.logger.Debug("pairings generated",
			"algorithm", name,
			"pairings", len(pairings),
			"duration", elapsed,
		)
	}

	s.hooks.OnPairingsGenerated(name, pairings)

	return pairings
}

// Verify checks that pairings form a single cycle over this Santa's participants.
//
// Returns:
//   - error: ErrInvalidPairings wrapped with the violation, nil if valid
func (s *Santa) Verify(pairings []Pairing) error {
	return types.VerifyPairings(pairings, len(s.participants))
}

// InformParticipants sends every participant the greeting message.
//
// Each participant receives exactly one Deliver call. Delivery is sequential
// in participant order unless WithConcurrency enabled parallel delivery.
// Transport failures are handled by the contact methods and never surface here.
func (s *Santa) InformParticipants() {
	s.deliverAll(len(s.participants), func(i int) (Person, string) {
		p := s.participants[i]
		return p, s.greeting(p)
	})

	s.logger.Info("informed participants", "participants", len(s.participants))
}

// NotifyAssignments tells each giver who their recipient is.
//
// The pairings are verified first; nothing is delivered when they are not a
// single cycle over this Santa's participants.
//
// Parameters:
//   - pairings: Pairings previously returned by GeneratePairings
//
// Returns:
//   - error: ErrInvalidPairings if verification fails
func (s *Santa) NotifyAssignments(pairings []Pairing) error {
	if err := s.Verify(pairings); err != nil {
		return err
	}

	s.deliverAll(len(pairings), func(i int) (Person, string) {
		giver := s.participants[pairings[i].Giver]
		recipient := s.participants[pairings[i].Recipient]

		return giver, s.assignment(giver, recipient)
	})

	s.logger.Info("notified assignments", "pairings", len(pairings))

	return nil
}

// deliverAll delivers n messages, sequentially or with bounded parallelism.
func (s *Santa) deliverAll(n int, message func(i int) (Person, string)) {
	if s.concurrency <= 1 {
		for i := range n {
			s.deliver(message(i))
		}

		return
	}

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i := range n {
		g.Go(func() error {
			s.deliver(message(i))
			return nil
		})
	}
	_ = g.Wait() // deliveries never return errors
}

func (s *Santa) deliver(p Person, message string) {
	p.Contact().Deliver(message)
	s.metrics.RecordDelivery(p.Contact().Kind().String())
	s.hooks.OnDelivered(p, message)
}

// Len returns the number of participants.
func (s *Santa) Len() int {
	return len(s.participants)
}

// Participants returns a copy of the participant list.
func (s *Santa) Participants() []Person {
	return slices.Clone(s.participants)
}

// Person returns the participant at index i.
//
// Returns:
//   - Person: The participant
//   - bool: false if i is out of range
func (s *Santa) Person(i int) (Person, bool) {
	if i < 0 || i >= len(s.participants) {
		return Person{}, false
	}

	return s.participants[i], true
}

// All iterates over the participants in order without copying the list.
//
// Example:
//
//	for i, p := range s.All() {
//	    fmt.Println(i, p.Name())
//	}
func (s *Santa) All() iter.Seq2[int, Person] {
	return func(yield func(int, Person) bool) {
		for i, p := range s.participants {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Resolve maps a pairing to the participants it refers to.
//
// Returns:
//   - Assignment: Giver and recipient
//   - error: ErrInvalidPairings if either index is out of range
func (s *Santa) Resolve(p Pairing) (Assignment, error) {
	giver, ok := s.Person(p.Giver)
	if !ok {
		return Assignment{}, fmt.Errorf("%w: giver index %d out of range", ErrInvalidPairings, p.Giver)
	}
	recipient, ok := s.Person(p.Recipient)
	if !ok {
		return Assignment{}, fmt.Errorf("%w: recipient index %d out of range", ErrInvalidPairings, p.Recipient)
	}

	return Assignment{Giver: giver, Recipient: recipient}, nil
}

// Assignments resolves every pairing.
//
// Returns:
//   - []Assignment: Resolved pairings in input order
//   - error: ErrInvalidPairings for the first out-of-range index
func (s *Santa) Assignments(pairings []Pairing) ([]Assignment, error) {
	out := make([]Assignment, 0, len(pairings))
	for _, p := range pairings {
		a, err := s.Resolve(p)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

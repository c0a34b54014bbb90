package santa

import "fmt"

// Option configures a Santa with optional dependencies.
type Option func(*santaOptions)

// santaOptions holds optional Santa configuration.
type santaOptions struct {
	hooks       *Hooks
	metrics     MetricsCollector
	logger      Logger
	greeting    func(Person) string
	assignment  func(giver, recipient Person) string
	concurrency int
}

// WithHooks sets event hooks.
//
// Example:
//
//	hooks := &santa.Hooks{
//	    OnDelivered: func(p santa.Person, msg string) { audit(p.Name()) },
//	}
//	s, err := santa.New(people, algo, santa.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *santaOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *santaOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Example:
//
//	logger := logging.NewSlog(slog.Default())
//	s, err := santa.New(people, algo, santa.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *santaOptions) {
		o.logger = logger
	}
}

// WithGreeting overrides the message InformParticipants sends to each participant.
func WithGreeting(greeting func(Person) string) Option {
	return func(o *santaOptions) {
		o.greeting = greeting
	}
}

// WithAssignmentMessage overrides the message NotifyAssignments sends to each giver.
func WithAssignmentMessage(message func(giver, recipient Person) string) Option {
	return func(o *santaOptions) {
		o.assignment = message
	}
}

// WithConcurrency sets how many deliveries may run in parallel.
//
// Values below 2 keep delivery sequential in participant order (the default).
// With parallel delivery every participant still receives exactly one
// message, in no particular order.
func WithConcurrency(n int) Option {
	return func(o *santaOptions) {
		o.concurrency = n
	}
}

// DefaultGreeting is the message InformParticipants sends when no greeting is configured.
func DefaultGreeting(p Person) string {
	return fmt.Sprintf("Hello %s! This is a test!", p.Name())
}

// DefaultAssignmentMessage is the message NotifyAssignments sends when none is configured.
func DefaultAssignmentMessage(giver, recipient Person) string {
	return fmt.Sprintf("Hello %s! You are the Secret Santa for %s!", giver.Name(), recipient.Name())
}

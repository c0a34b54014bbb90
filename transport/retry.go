package transport

import (
	"fmt"
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/arloliu/santa/internal/logging"
	"github.com/arloliu/santa/types"
)

// Retry defaults.
const (
	DefaultMaxAttempts  = 3
	DefaultRetryBase    = 100 * time.Millisecond
	DefaultRetryFactor  = 2.0
	DefaultRetryCeiling = 2 * time.Second
)

// Retry wraps a transport and retries failed sends with jittered backoff.
//
// The final error is returned once all attempts fail; contact methods log it
// and move on. Retry is safe for concurrent use when the wrapped transport is.
type Retry struct {
	next        types.Transport
	maxAttempts int
	base        time.Duration
	factor      float64
	ceiling     time.Duration
	logger      types.Logger
	sleep       func(time.Duration)

	rngMu sync.Mutex
	rng   *rand.Rand
}

var _ types.Transport = (*Retry)(nil)

// RetryOption configures a Retry transport.
type RetryOption func(*Retry)

// WithMaxAttempts sets the total number of attempts per message (values below 1 mean 1).
func WithMaxAttempts(n int) RetryOption {
	return func(r *Retry) {
		r.maxAttempts = max(n, 1)
	}
}

// WithBackoff sets the first delay, the growth factor and the delay ceiling.
func WithBackoff(base time.Duration, factor float64, ceiling time.Duration) RetryOption {
	return func(r *Retry) {
		r.base = base
		r.factor = factor
		r.ceiling = ceiling
	}
}

// WithRetrySeed makes the jitter sequence deterministic. Zero keeps the
// package-level generator.
func WithRetrySeed(seed uint64) RetryOption {
	return func(r *Retry) {
		r.rng = newRetryRNG(seed)
	}
}

// WithRetryLogger sets the logger that reports each failed attempt.
func WithRetryLogger(logger types.Logger) RetryOption {
	return func(r *Retry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSleep replaces time.Sleep, mainly for tests.
func WithSleep(sleep func(time.Duration)) RetryOption {
	return func(r *Retry) {
		if sleep != nil {
			r.sleep = sleep
		}
	}
}

// NewRetry wraps next with retries.
//
// Parameters:
//   - next: Transport doing the actual delivery
//   - opts: Attempts, backoff, seed, logger and sleep overrides
//
// Returns:
//   - *Retry: Retrying transport
//
// Example:
//
//	tr := transport.NewRetry(natsTransport, transport.WithMaxAttempts(5))
//	phone, err := contact.NewPhoneNumber("441122334455", contact.WithTransport(tr))
func NewRetry(next types.Transport, opts ...RetryOption) *Retry {
	r := &Retry{
		next:        next,
		maxAttempts: DefaultMaxAttempts,
		base:        DefaultRetryBase,
		factor:      DefaultRetryFactor,
		ceiling:     DefaultRetryCeiling,
		logger:      logging.NewNop(),
		sleep:       time.Sleep,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Send delivers through the wrapped transport, retrying on error.
func (r *Retry) Send(kind types.ContactKind, address, message string) error {
	var (
		err   error
		delay time.Duration
	)
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err = r.next.Send(kind, address, message); err == nil {
			return nil
		}
		if attempt == r.maxAttempts {
			break
		}

		delay = r.nextDelay(delay)
		r.logger.Debug("send failed, retrying",
			"kind", kind.String(),
			"address", address,
			"attempt", attempt,
			"delay", delay,
			"error", err,
		)
		r.sleep(delay)
	}

	return fmt.Errorf("send to %s failed after %d attempts: %w", address, r.maxAttempts, err)
}

func (r *Retry) nextDelay(prev time.Duration) time.Duration {
	if r.rng == nil {
		return jitterBackoff(prev, r.base, r.factor, r.ceiling, nil)
	}

	r.rngMu.Lock()
	defer r.rngMu.Unlock()

	return jitterBackoff(prev, r.base, r.factor, r.ceiling, r.rng)
}

// jitterBackoff computes decorrelated jitter backoff with a cap.
//
//	next = min(ceiling, base + rand(prev*factor - base))
//
// Behavior:
//   - If prev <= 0, start from base
//   - factor < 1.0 falls back to 1.0 (no growth)
//   - ceiling below base returns ceiling
func jitterBackoff(prev, base time.Duration, factor float64, ceiling time.Duration, rng *rand.Rand) time.Duration {
	if base <= 0 {
		base = DefaultRetryBase
	}
	if factor < 1.0 {
		factor = 1.0
	}
	if ceiling > 0 && ceiling < base {
		return ceiling
	}
	if prev <= 0 {
		return base
	}

	spread := time.Duration(float64(prev)*factor) - base
	if spread <= 0 {
		spread = base
	}

	var jitter int64
	if rng != nil {
		jitter = rng.Int64N(int64(spread))
	} else {
		jitter = rand.Int64N(int64(spread)) //nolint:gosec // non-crypto backoff jitter
	}

	next := base + time.Duration(jitter)
	if ceiling > 0 && next > ceiling {
		return ceiling
	}

	return next
}

// newRetryRNG returns a deterministic generator for a non-zero seed and nil otherwise.
//
//nolint:gosec
func newRetryRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

package testing

import (
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/santa/types"
)

// Delivery is one message handed to a Recorder.
type Delivery struct {
	Kind    types.ContactKind
	Address string
	Message string
}

// Recorder is a types.Transport that records deliveries instead of sending them.
//
// Recorder is safe for concurrent use, so it can observe parallel delivery.
// An optional failure function lets tests simulate transport errors.
type Recorder struct {
	mu         sync.Mutex
	deliveries []Delivery
	counts     *xsync.Map[string, *atomic.Int64]
	fail       func(d Delivery) error
}

var _ types.Transport = (*Recorder)(nil)

// NewRecorder creates an empty recording transport.
func NewRecorder() *Recorder {
	return &Recorder{counts: xsync.NewMap[string, *atomic.Int64]()}
}

// FailWith makes Send return fn's result after recording each delivery.
// Passing nil restores successful sends.
func (r *Recorder) FailWith(fn func(d Delivery) error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fail = fn
}

// Send records the delivery.
func (r *Recorder) Send(kind types.ContactKind, address, message string) error {
	d := Delivery{Kind: kind, Address: address, Message: message}

	r.mu.Lock()
	r.deliveries = append(r.deliveries, d)
	fail := r.fail
	r.mu.Unlock()

	counter, _ := r.counts.LoadOrStore(address, &atomic.Int64{})
	counter.Add(1)

	if fail != nil {
		return fail(d)
	}

	return nil
}

// Deliveries returns a copy of all deliveries in the order they were received.
func (r *Recorder) Deliveries() []Delivery {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Delivery, len(r.deliveries))
	copy(out, r.deliveries)

	return out
}

// Len returns the total number of deliveries.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.deliveries)
}

// Count returns how many deliveries went to address.
func (r *Recorder) Count(address string) int {
	counter, ok := r.counts.Load(address)
	if !ok {
		return 0
	}

	return int(counter.Load())
}

// Addresses returns every address that received at least one delivery, in no particular order.
func (r *Recorder) Addresses() []string {
	addrs := make([]string, 0, r.counts.Size())
	r.counts.Range(func(addr string, _ *atomic.Int64) bool {
		addrs = append(addrs, addr)
		return true
	})

	return addrs
}

// Reset discards all recorded deliveries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.deliveries = nil
	r.mu.Unlock()

	r.counts.Clear()
}

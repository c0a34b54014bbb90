package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/arloliu/santa/types"
)

// DefaultSubjectPrefix is the subject prefix used when none is configured.
const DefaultSubjectPrefix = "santa.notify"

// ErrNATSConnectionRequired is returned when the NATS connection is nil.
var ErrNATSConnectionRequired = errors.New("NATS connection is required")

// Notification is the JSON payload published for each delivery.
type Notification struct {
	Kind    types.ContactKind `json:"kind"`
	Address string            `json:"address"`
	Message string            `json:"message"`
	SentAt  time.Time         `json:"sentAt"`
}

// NATS publishes deliveries to NATS so downstream senders (SMS, SMTP) can
// pick them up. Deliveries for kind K are published on "<prefix>.<K>".
type NATS struct {
	conn   *nats.Conn
	prefix string
	now    func() time.Time
}

var _ types.Transport = (*NATS)(nil)

// NATSOption configures a NATS transport.
type NATSOption func(*NATS)

// WithSubjectPrefix overrides DefaultSubjectPrefix.
func WithSubjectPrefix(prefix string) NATSOption {
	return func(n *NATS) {
		if prefix = strings.Trim(prefix, "."); prefix != "" {
			n.prefix = prefix
		}
	}
}

// WithClock overrides the timestamp source used for Notification.SentAt.
func WithClock(now func() time.Time) NATSOption {
	return func(n *NATS) {
		if now != nil {
			n.now = now
		}
	}
}

// NewNATS creates a NATS publishing transport.
//
// Parameters:
//   - conn: Connected NATS client
//   - opts: Optional subject prefix and clock
//
// Returns:
//   - *NATS: Initialized transport
//   - error: ErrNATSConnectionRequired if conn is nil
//
// Example:
//
//	nc, _ := nats.Connect(nats.DefaultURL)
//	tr, err := transport.NewNATS(nc, transport.WithSubjectPrefix("xmas.notify"))
//	phone, err := contact.NewPhoneNumber("441122334455", contact.WithTransport(tr))
func NewNATS(conn *nats.Conn, opts ...NATSOption) (*NATS, error) {
	if conn == nil {
		return nil, ErrNATSConnectionRequired
	}

	n := &NATS{conn: conn, prefix: DefaultSubjectPrefix, now: time.Now}
	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

// Subject returns the subject deliveries of the given kind are published on.
func (n *NATS) Subject(kind types.ContactKind) string {
	return n.prefix + "." + kind.String()
}

// Send publishes one Notification for the delivery.
func (n *NATS) Send(kind types.ContactKind, address, message string) error {
	payload, err := json.Marshal(Notification{
		Kind:    kind,
		Address: address,
		Message: message,
		SentAt:  n.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	if err := n.conn.Publish(n.Subject(kind), payload); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// Flush blocks until all published notifications were processed by the server.
func (n *NATS) Flush() error {
	return n.conn.Flush()
}

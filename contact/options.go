package contact

import (
	"github.com/arloliu/santa/internal/logging"
	"github.com/arloliu/santa/transport"
	"github.com/arloliu/santa/types"
)

// minLength is the shortest raw value any built-in variant accepts.
const minLength = 6

// Option configures a contact method.
type Option func(*options)

type options struct {
	transport types.Transport
	logger    types.Logger
}

// WithTransport sets the transport used by Deliver.
//
// Example:
//
//	rec := santatest.NewRecorder()
//	email, err := contact.NewEmail("alice@blah.com", contact.WithTransport(rec))
func WithTransport(t types.Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithLogger sets the logger used to report delivery failures.
//
// When no transport is configured, the default log transport writes to this
// logger as well.
func WithLogger(logger types.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	if o.transport == nil {
		o.transport = transport.NewLog(o.logger)
	}

	return o
}

// deliver hands message to the transport and logs, but never returns, failures.
func deliver(o options, kind types.ContactKind, address, message string) {
	if err := o.transport.Send(kind, address, message); err != nil {
		o.logger.Warn("delivery failed", "kind", kind.String(), "address", address, "error", err)
	}
}

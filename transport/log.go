package transport

import (
	"github.com/arloliu/santa/internal/logging"
	"github.com/arloliu/santa/types"
)

// Log is a transport that records deliveries in a logger instead of sending them.
type Log struct {
	logger types.Logger
}

var _ types.Transport = (*Log)(nil)

// NewLog creates a logging transport.
//
// Each delivery is logged at Info level as "<address> <-- <message>".
//
// Parameters:
//   - logger: Destination logger (nil discards deliveries)
//
// Returns:
//   - *Log: Initialized transport
func NewLog(logger types.Logger) *Log {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Log{logger: logger}
}

// Send logs the delivery. It never fails.
func (l *Log) Send(kind types.ContactKind, address, message string) error {
	l.logger.Info(address+" <-- "+message, "kind", kind.String())

	return nil
}

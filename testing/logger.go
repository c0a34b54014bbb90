package testing

import (
	"testing"

	"github.com/arloliu/santa/internal/logger"
	"github.com/arloliu/santa/types"
)

// NewTestLogger creates a new logger instance that writes to the testing.T logger.
// This is useful for seeing log output during test runs.
//
// Output is formatted as "LEVEL: msg k=v k=v", the same as the loggers used by
// this module's own tests.
func NewTestLogger(t testing.TB) types.Logger {
	return logger.NewTest(t)
}

package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/santa/internal/logger"
)

func TestNewTestLogger(t *testing.T) {
	t.Run("shares the internal test logger", func(t *testing.T) {
		require.IsType(t, &logger.TestLogger{}, NewTestLogger(t))
	})

	t.Run("non-fatal levels do not fail the test", func(t *testing.T) {
		l := NewTestLogger(t)
		l.Debug("debug", "k", 1)
		l.Info("info", "k", 2)
		l.Warn("warn", "k", 3)
		l.Error("error", "k", 4, "dangling")
	})
}

package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("wrapped errors maintain identity", func(t *testing.T) {
		wrapped := fmt.Errorf("participant %q: %w", "Alice", ErrInvalidFormat)
		require.ErrorIs(t, wrapped, ErrInvalidFormat)
		require.NotErrorIs(t, wrapped, ErrInsufficientParticipants)
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			ErrInvalidFormat,
			ErrInsufficientParticipants,
			ErrAlgorithmRequired,
			ErrContactRequired,
			ErrUnknownAlgorithm,
			ErrInvalidPairings,
		}

		for i, err1 := range allErrors {
			for j, err2 := range allErrors {
				if i == j {
					require.True(t, errors.Is(err1, err2), "error should equal itself: %v", err1)
				} else {
					require.False(t, errors.Is(err1, err2), "errors should be distinct: %v vs %v", err1, err2)
				}
			}
		}
	})
}

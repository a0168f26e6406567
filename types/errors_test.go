package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsufficientLeadersError(t *testing.T) {
	t.Parallel()

	t.Run("message carries both counts", func(t *testing.T) {
		err := &InsufficientLeadersError{Available: 2, Required: 3}
		require.EqualError(t, err, "number of leader candidates (2) must be greater than or equal to number of teams (3)")
	})

	t.Run("matches the sentinel through errors.Is", func(t *testing.T) {
		err := &InsufficientLeadersError{Available: 0, Required: 1}
		require.ErrorIs(t, err, ErrInsufficientLeaders)
	})

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("load roster: %w", &InsufficientLeadersError{Available: 1, Required: 4})

		require.ErrorIs(t, wrapped, ErrInsufficientLeaders)

		var lackErr *InsufficientLeadersError
		require.ErrorAs(t, wrapped, &lackErr)
		require.Equal(t, 1, lackErr.Available)
		require.Equal(t, 4, lackErr.Required)
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	require.EqualError(t, ErrTeamCountZero, "number of teams must be greater than zero")
	require.False(t, errors.Is(ErrTeamCountZero, ErrInsufficientLeaders))
}

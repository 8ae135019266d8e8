package guard_test

import (
	"errors"
	"testing"

	"flavorverse/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuardEmbeddedInQuery(t *testing.T) {
	errQueryNotConstructed := errors.New("ownerQuery must be created via newOwnerQuery")

	type ownerQuery struct {
		ownerID string
		guard   guard.ConstructorGuard
	}

	newOwnerQuery := func(ownerID string) (ownerQuery, error) {
		if ownerID == "" {
			return ownerQuery{}, errors.New("owner id is required")
		}
		return ownerQuery{ownerID: ownerID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_query_is_valid", func(t *testing.T) {
		q, err := newOwnerQuery("u1")

		require.NoError(t, err)
		require.NoError(t, q.guard.Validate(errQueryNotConstructed))
		assert.Equal(t, "u1", q.ownerID)
	})

	t.Run("literal_query_is_rejected", func(t *testing.T) {
		q := ownerQuery{ownerID: "u1"}

		assert.Equal(t, errQueryNotConstructed, q.guard.Validate(errQueryNotConstructed))
	})
}

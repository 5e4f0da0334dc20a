package registry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentError(t *testing.T) {
	t.Parallel()

	err := NewArgumentError("page_size", "must be greater than 0")

	assert.Equal(t, "invalid argument: page_size must be greater than 0", err.Error())
	require.ErrorIs(t, err, ErrInvalidArgument)

	wrapped := fmt.Errorf("officer: list officers: %w", err)
	require.ErrorIs(t, wrapped, ErrInvalidArgument)

	var argErr *ArgumentError
	require.True(t, errors.As(wrapped, &argErr))
	assert.Equal(t, "page_size", argErr.Field)
}

package inputerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("grid has %d rows", 0)

	require.EqualError(t, err, "invalid input: grid has 0 rows")
	require.True(t, Is(err))

	wrapped := fmt.Errorf("puzzle %q: %w", "sample", err)
	require.True(t, Is(wrapped), "wrapping must preserve the kind")
	require.False(t, Is(errors.New("invalid input")), "a look-alike message is not the sentinel")
}

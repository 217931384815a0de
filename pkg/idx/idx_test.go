package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesValidSortableIDs(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()

	require.False(t, a.IsZero())
	require.False(t, b.IsZero())

	// Monotonic entropy guarantees strict ordering within a process.
	require.Less(t, a.String(), b.String())

	_, err := Parse(a.String())
	require.NoError(t, err)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"", "   ", "not-a-ulid", "0000"} {
		_, err := Parse(bad)
		require.ErrorIs(t, err, ErrInvalid)
	}
}

func TestNewAtEmbedsTimestamp(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	id := NewAt(at)

	require.WithinDuration(t, at, id.Time(), time.Millisecond)
}

package cachematrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cachematrix/cachematrix"
	"github.com/katalvlaran/cachematrix/matrix"
)

func TestSlot(t *testing.T) {
	t.Parallel()

	var zero cachematrix.Slot
	require.False(t, zero.IsPresent())
	require.Equal(t, cachematrix.Absent(), zero)
	require.Equal(t, "absent", zero.String())

	m := matrix.MustParse("[[1, 2, 3], [4, 5, 6]]")
	s := cachematrix.Present(m)
	got, ok := s.Get()
	require.True(t, ok)
	require.Same(t, m, got)
	require.Equal(t, "present(2x3)", s.String())

	// Present stores whatever it is given, nil included.
	nilSlot := cachematrix.Present(nil)
	require.True(t, nilSlot.IsPresent())
	require.Equal(t, "present(nil)", nilSlot.String())
}

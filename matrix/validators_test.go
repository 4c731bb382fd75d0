package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cachematrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	t.Parallel()

	sq := MustDense(t, 2, 2)
	rect := MustDense(t, 2, 3)

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil((*matrix.Dense)(nil)), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(sq))

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquare(&matrix.Dense{}), matrix.ErrInvalidDimensions)

	require.NoError(t, matrix.ValidateSameShape(rect, rect.Clone()))
	require.ErrorIs(t, matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(sq, nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(sq, rect))
	require.ErrorIs(t, matrix.ValidateMulCompatible(rect, sq), matrix.ErrDimensionMismatch)
}

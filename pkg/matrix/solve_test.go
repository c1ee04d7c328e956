package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveIdentity(t *testing.T) {
	a := []float64{1, 0, 0, 1}
	b := []float64{3, 4}

	x, err := Solve(2, a, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 4}, x, 1e-9)
}

func TestSolveRequiresPartialPivot(t *testing.T) {
	// Zero on the diagonal forces a row swap to find a usable pivot.
	a := []float64{0, 1, 1, 1}
	b := []float64{2, 3}

	x, err := Solve(2, a, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, x, 1e-9)
}

func TestSolveSingularReturnsError(t *testing.T) {
	a := []float64{1, 1, 1, 1}
	b := []float64{1, 2}

	_, err := Solve(2, a, b)
	assert.ErrorIs(t, err, ErrSingular)
}

func TestSolveDoesNotMutateInputs(t *testing.T) {
	a := []float64{2, 0, 0, 2}
	aCopy := append([]float64(nil), a...)
	b := []float64{4, 6}
	bCopy := append([]float64(nil), b...)

	_, err := Solve(2, a, b)
	require.NoError(t, err)

	assert.Equal(t, aCopy, a)
	assert.Equal(t, bCopy, b)
}

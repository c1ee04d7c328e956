package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStampContextRejectsNonPositiveSize(t *testing.T) {
	_, err := NewStampContext(0)
	assert.Error(t, err)

	_, err = NewStampContext(-3)
	assert.Error(t, err)
}

func TestAddAAccumulates(t *testing.T) {
	ctx, err := NewStampContext(2)
	require.NoError(t, err)

	ctx.AddA(0, 0, 1.5)
	ctx.AddA(0, 0, 2.5)
	ctx.AddA(1, 1, 1)

	dense := make([]float64, 4)
	ctx.AssembleDense(dense)

	assert.Equal(t, 4.0, dense[0])
	assert.Equal(t, 0.0, dense[1])
	assert.Equal(t, 0.0, dense[2])
	assert.Equal(t, 1.0, dense[3])
}

func TestAddAIgnoresOutOfRangeAndZero(t *testing.T) {
	ctx, err := NewStampContext(2)
	require.NoError(t, err)

	ctx.AddA(-1, 0, 5)
	ctx.AddA(0, -1, 5)
	ctx.AddA(5, 0, 5)
	ctx.AddA(0, 0, 0)

	assert.Empty(t, ctx.Triplets())
}

func TestAddZAccumulates(t *testing.T) {
	ctx, err := NewStampContext(2)
	require.NoError(t, err)

	ctx.AddZ(0, 3)
	ctx.AddZ(0, -1)
	ctx.AddZ(1, 2)

	assert.Equal(t, []float64{2, 2}, ctx.Z())
}

func TestResetClearsAccumulatedState(t *testing.T) {
	ctx, err := NewStampContext(2)
	require.NoError(t, err)

	ctx.AddA(0, 0, 1)
	ctx.AddZ(0, 1)
	ctx.AllocExtraVar()

	ctx.Reset()

	assert.Empty(t, ctx.Triplets())
	assert.Equal(t, []float64{0, 0, 0}, ctx.Z())
}

func TestAllocExtraVarReturnsIncreasingIndices(t *testing.T) {
	ctx, err := NewStampContext(2)
	require.NoError(t, err)

	a := ctx.AllocExtraVar()
	b := ctx.AllocExtraVar()

	assert.Equal(t, 2, a)
	assert.Equal(t, 3, b)
	assert.Equal(t, 2, ctx.NumExtraAllocated())
}

func TestAssembleDenseResetsBuffer(t *testing.T) {
	ctx, err := NewStampContext(2)
	require.NoError(t, err)
	ctx.AddA(0, 1, 7)

	dense := []float64{9, 9, 9, 9}
	ctx.AssembleDense(dense)

	assert.Equal(t, []float64{0, 7, 0, 0}, dense)
}

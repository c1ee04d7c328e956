package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyspice/mnaspice/pkg/matrix"
)

func TestCurrentSourceStampsOppositeSigns(t *testing.T) {
	s := NewCurrentSource("I1", []string{"1", "2"}, 2.5)
	s.SetTerminals([]int{0, 1})

	ctx, err := matrix.NewStampContext(2)
	require.NoError(t, err)
	require.NoError(t, s.StampNonlinear(ctx, IterState{}))

	assert.Equal(t, []float64{-2.5, 2.5}, ctx.Z())
}

func TestCurrentSourceSkipsGroundTerminal(t *testing.T) {
	s := NewCurrentSource("I1", []string{"1", "0"}, 1.0)
	s.SetTerminals([]int{0, -1})

	ctx, err := matrix.NewStampContext(1)
	require.NoError(t, err)
	require.NoError(t, s.StampNonlinear(ctx, IterState{}))

	assert.Equal(t, []float64{-1.0}, ctx.Z())
}

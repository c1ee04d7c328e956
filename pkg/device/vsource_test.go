package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyspice/mnaspice/pkg/matrix"
)

func TestVoltageSourceInitRequestsExtraVar(t *testing.T) {
	v := NewVoltageSource("V1", []string{"1", "0"}, 5)
	require.NoError(t, v.Init(nil))
	assert.Equal(t, ExtraVarRequested, v.ExtraVar().Kind)
}

func TestVoltageSourceStampsBranchEquation(t *testing.T) {
	v := NewVoltageSource("V1", []string{"1", "0"}, 5)
	v.SetTerminals([]int{0, -1})
	v.SetExtraVar(ExtraVar{Kind: ExtraVarAllocated, AllocatedIndex: 1})

	ctx, err := matrix.NewStampContext(2)
	require.NoError(t, err)
	require.NoError(t, v.StampNonlinear(ctx, IterState{}))

	dense := make([]float64, 4)
	ctx.AssembleDense(dense)

	assert.Equal(t, 1.0, dense[0*2+1])
	assert.Equal(t, 1.0, dense[1*2+0])
	assert.Equal(t, []float64{0, 5}, ctx.Z())
}

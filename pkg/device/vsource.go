package device

import (
	"github.com/tinyspice/mnaspice/pkg/matrix"
)

// VoltageSource is an independent DC voltage source. It imposes n1 - n2 =
// V via a branch-current variable requested during Init.
type VoltageSource struct {
	BaseDevice
	V float64
}

func NewVoltageSource(name string, nodeNames []string, v float64) *VoltageSource {
	return &VoltageSource{
		BaseDevice: BaseDevice{DeviceName: name, NodeNames: nodeNames, Nodes: make([]int, len(nodeNames))},
		V:          v,
	}
}

func (v *VoltageSource) Init(c Circuit) error {
	v.SetExtraVar(ExtraVar{Kind: ExtraVarRequested})
	return nil
}

func (v *VoltageSource) stamp(ctx *matrix.StampContext) {
	n1, n2 := v.Nodes[0], v.Nodes[1]
	k := v.ExtraVar().Index()

	if n1 >= 0 {
		ctx.AddA(n1, k, 1)
		ctx.AddA(k, n1, 1)
	}
	if n2 >= 0 {
		ctx.AddA(n2, k, -1)
		ctx.AddA(k, n2, -1)
	}
	ctx.AddZ(k, v.V)
}

func (v *VoltageSource) StampNonlinear(ctx *matrix.StampContext, iter IterState) error {
	v.stamp(ctx)
	return nil
}

func (v *VoltageSource) StampTransient(ctx *matrix.StampContext, ts TimeState) error {
	v.stamp(ctx)
	return nil
}

func (v *VoltageSource) UpdateState(x []float64, ts TimeState) {}

func (v *VoltageSource) Free() {}

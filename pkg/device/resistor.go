package device

import (
	"github.com/tinyspice/mnaspice/pkg/matrix"
)

// Resistor is a linear two-terminal element: g = 1/R stamped symmetrically
// between its terminals.
type Resistor struct {
	BaseDevice
	R float64
}

func NewResistor(name string, nodeNames []string, r float64) *Resistor {
	return &Resistor{
		BaseDevice: BaseDevice{DeviceName: name, NodeNames: nodeNames, Nodes: make([]int, len(nodeNames))},
		R:          r,
	}
}

func (r *Resistor) Init(c Circuit) error { return nil }

func (r *Resistor) stamp(ctx *matrix.StampContext) {
	n1, n2 := r.Nodes[0], r.Nodes[1]
	g := 1.0 / r.R

	if n1 >= 0 {
		ctx.AddA(n1, n1, g)
		if n2 >= 0 {
			ctx.AddA(n1, n2, -g)
		}
	}
	if n2 >= 0 {
		if n1 >= 0 {
			ctx.AddA(n2, n1, -g)
		}
		ctx.AddA(n2, n2, g)
	}
}

func (r *Resistor) StampNonlinear(ctx *matrix.StampContext, iter IterState) error {
	r.stamp(ctx)
	return nil
}

func (r *Resistor) StampTransient(ctx *matrix.StampContext, ts TimeState) error {
	r.stamp(ctx)
	return nil
}

func (r *Resistor) UpdateState(x []float64, ts TimeState) {}

func (r *Resistor) Free() {}

package device

import (
	"github.com/tinyspice/mnaspice/pkg/matrix"
)

// Capacitor is open-circuit at DC. Under StampTransient it is linearized
// to an equivalent conductance plus a history-dependent current source,
// per the integration method in force.
type Capacitor struct {
	BaseDevice
	C float64

	vPrev  float64
	vPrev2 float64
	iPrev  float64
}

func NewCapacitor(name string, nodeNames []string, c float64) *Capacitor {
	return &Capacitor{
		BaseDevice: BaseDevice{DeviceName: name, NodeNames: nodeNames, Nodes: make([]int, len(nodeNames))},
		C:          c,
	}
}

func (c *Capacitor) Init(ckt Circuit) error { return nil }

// StampNonlinear is the DC behavior: no stamp at all, an open circuit.
func (c *Capacitor) StampNonlinear(ctx *matrix.StampContext, iter IterState) error {
	return nil
}

func (c *Capacitor) StampTransient(ctx *matrix.StampContext, ts TimeState) error {
	n1, n2 := c.Nodes[0], c.Nodes[1]
	h := ts.H
	m := ts.Method

	gEq := m.Alpha0 * c.C / h
	iEq := (m.Alpha1*c.C/h)*c.vPrev + (m.Alpha2*c.C/h)*c.vPrev2
	if m.TrapezoidalExtra {
		iEq += c.iPrev
	}

	if n1 >= 0 {
		ctx.AddA(n1, n1, gEq)
		if n2 >= 0 {
			ctx.AddA(n1, n2, -gEq)
		}
		ctx.AddZ(n1, -iEq)
	}
	if n2 >= 0 {
		ctx.AddA(n2, n2, gEq)
		if n1 >= 0 {
			ctx.AddA(n2, n1, -gEq)
		}
		ctx.AddZ(n2, iEq)
	}

	return nil
}

// UpdateState shifts the stored voltage/current history after a
// converged transient step.
func (c *Capacitor) UpdateState(x []float64, ts TimeState) {
	n1, n2 := c.Nodes[0], c.Nodes[1]
	v1, v2 := 0.0, 0.0
	if n1 >= 0 {
		v1 = x[n1]
	}
	if n2 >= 0 {
		v2 = x[n2]
	}
	vd := v1 - v2

	c.iPrev = c.C * (vd - c.vPrev) / ts.H
	c.vPrev2 = c.vPrev
	c.vPrev = vd
}

func (c *Capacitor) Free() {}

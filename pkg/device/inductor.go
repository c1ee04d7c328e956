package device

import (
	"github.com/tinyspice/mnaspice/pkg/matrix"
)

// Inductor is a short circuit at DC and a companion voltage source under
// StampTransient, tracked through its own branch-current variable.
type Inductor struct {
	BaseDevice
	L float64

	iPrev  float64
	iPrev2 float64
	vPrev  float64
}

func NewInductor(name string, nodeNames []string, l float64) *Inductor {
	return &Inductor{
		BaseDevice: BaseDevice{DeviceName: name, NodeNames: nodeNames, Nodes: make([]int, len(nodeNames))},
		L:          l,
	}
}

func (l *Inductor) Init(c Circuit) error {
	l.SetExtraVar(ExtraVar{Kind: ExtraVarRequested})
	return nil
}

// StampNonlinear is the DC behavior: a zero-volt source through the
// branch current variable, i.e. a short circuit.
func (l *Inductor) StampNonlinear(ctx *matrix.StampContext, iter IterState) error {
	n1, n2 := l.Nodes[0], l.Nodes[1]
	k := l.ExtraVar().Index()

	if n1 >= 0 {
		ctx.AddA(n1, k, 1)
		ctx.AddA(k, n1, 1)
	}
	if n2 >= 0 {
		ctx.AddA(n2, k, -1)
		ctx.AddA(k, n2, -1)
	}
	return nil
}

func (l *Inductor) StampTransient(ctx *matrix.StampContext, ts TimeState) error {
	n1, n2 := l.Nodes[0], l.Nodes[1]
	k := l.ExtraVar().Index()
	h := ts.H
	m := ts.Method

	rEq := m.Beta0 * l.L / h
	vEq := (m.Beta1*l.L/h)*l.iPrev + (m.Beta2*l.L/h)*l.iPrev2
	if m.TrapezoidalExtra {
		vEq += l.vPrev
	}

	if n1 >= 0 {
		ctx.AddA(n1, k, 1)
		ctx.AddA(k, n1, 1)
	}
	if n2 >= 0 {
		ctx.AddA(n2, k, -1)
		ctx.AddA(k, n2, -1)
	}
	ctx.AddA(k, k, -rEq)
	ctx.AddZ(k, -vEq)

	return nil
}

// UpdateState shifts the stored current/voltage history using the
// branch current solved this step.
func (l *Inductor) UpdateState(x []float64, ts TimeState) {
	n1, n2 := l.Nodes[0], l.Nodes[1]
	k := l.ExtraVar().Index()

	v1, v2 := 0.0, 0.0
	if n1 >= 0 {
		v1 = x[n1]
	}
	if n2 >= 0 {
		v2 = x[n2]
	}

	iBranch := x[k]
	l.vPrev = v1 - v2
	l.iPrev2 = l.iPrev
	l.iPrev = iBranch
}

func (l *Inductor) Free() {}

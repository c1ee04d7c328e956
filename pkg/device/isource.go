package device

import (
	"github.com/tinyspice/mnaspice/pkg/matrix"
)

// CurrentSource is an independent DC current source driving I from n1 to
// n2 by KCL.
type CurrentSource struct {
	BaseDevice
	I float64
}

func NewCurrentSource(name string, nodeNames []string, i float64) *CurrentSource {
	return &CurrentSource{
		BaseDevice: BaseDevice{DeviceName: name, NodeNames: nodeNames, Nodes: make([]int, len(nodeNames))},
		I:          i,
	}
}

func (s *CurrentSource) Init(c Circuit) error { return nil }

func (s *CurrentSource) stamp(ctx *matrix.StampContext) {
	n1, n2 := s.Nodes[0], s.Nodes[1]
	if n1 >= 0 {
		ctx.AddZ(n1, -s.I)
	}
	if n2 >= 0 {
		ctx.AddZ(n2, s.I)
	}
}

func (s *CurrentSource) StampNonlinear(ctx *matrix.StampContext, iter IterState) error {
	s.stamp(ctx)
	return nil
}

func (s *CurrentSource) StampTransient(ctx *matrix.StampContext, ts TimeState) error {
	s.stamp(ctx)
	return nil
}

func (s *CurrentSource) UpdateState(x []float64, ts TimeState) {}

func (s *CurrentSource) Free() {}

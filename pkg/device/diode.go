package device

import (
	"math"

	"github.com/tinyspice/mnaspice/internal/consts"
	"github.com/tinyspice/mnaspice/pkg/matrix"
)

// Diode is the Shockley junction model, linearized at each Newton-Raphson
// iteration around the previous solution's junction voltage.
type Diode struct {
	BaseDevice
	Is float64 // saturation current
	N  float64 // emission coefficient
}

func NewDiode(name string, nodeNames []string, is, n float64) *Diode {
	return &Diode{
		BaseDevice: BaseDevice{DeviceName: name, NodeNames: nodeNames, Nodes: make([]int, len(nodeNames))},
		Is:         is,
		N:          n,
	}
}

func (d *Diode) Init(c Circuit) error { return nil }

// junctionVoltage reads n1-n2 out of x, defaulting to 0 when x is empty
// (the very first Newton-Raphson iteration).
func (d *Diode) junctionVoltage(x []float64) float64 {
	if x == nil {
		return 0
	}
	n1, n2 := d.Nodes[0], d.Nodes[1]
	v1, v2 := 0.0, 0.0
	if n1 >= 0 && n1 < len(x) {
		v1 = x[n1]
	}
	if n2 >= 0 && n2 < len(x) {
		v2 = x[n2]
	}
	return v1 - v2
}

// linearize clamps vd to keep the exponential from overflowing and
// returns the companion conductance and equivalent current source for
// the resulting operating point.
func (d *Diode) linearize(vd float64) (geq, ieq float64) {
	vt := d.N * consts.ThermalVoltage

	if vd > consts.DiodeForwardClamp {
		vd = consts.DiodeForwardClamp
	}
	if vd < -15*vt {
		vd = -15 * vt
	}

	ex := math.Exp(vd / vt)
	id := d.Is * (ex - 1)
	geq = d.Is * ex / vt
	if geq < consts.MinDiodeGeq {
		geq = consts.MinDiodeGeq
	}
	ieq = id - geq*vd
	return geq, ieq
}

func (d *Diode) stamp(ctx *matrix.StampContext, x []float64) {
	n1, n2 := d.Nodes[0], d.Nodes[1]
	vd := d.junctionVoltage(x)
	geq, ieq := d.linearize(vd)

	if n1 >= 0 {
		ctx.AddA(n1, n1, geq)
		if n2 >= 0 {
			ctx.AddA(n1, n2, -geq)
		}
		ctx.AddZ(n1, -ieq)
	}
	if n2 >= 0 {
		if n1 >= 0 {
			ctx.AddA(n2, n1, -geq)
		}
		ctx.AddA(n2, n2, geq)
		ctx.AddZ(n2, ieq)
	}
}

func (d *Diode) StampNonlinear(ctx *matrix.StampContext, iter IterState) error {
	d.stamp(ctx, iter.XCurrent)
	return nil
}

func (d *Diode) StampTransient(ctx *matrix.StampContext, ts TimeState) error {
	d.stamp(ctx, ts.XCurrent)
	return nil
}

func (d *Diode) UpdateState(x []float64, ts TimeState) {}

func (d *Diode) Free() {}

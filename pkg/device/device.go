// Package device implements the polymorphic device-stamping contract:
// six concrete element variants (resistor, independent current source,
// independent voltage source, capacitor, inductor, Shockley diode) behind
// a single Device interface dispatched uniformly by the circuit and the
// Newton-Raphson driver.
package device

import (
	"github.com/tinyspice/mnaspice/pkg/matrix"
	"github.com/tinyspice/mnaspice/pkg/util"
)

// ExtraVarKind tags the three-state branch-current allocation protocol,
// replacing the source's sentinel integers (-1 / -2 / >=0).
type ExtraVarKind int

const (
	ExtraVarNone ExtraVarKind = iota
	ExtraVarRequested
	ExtraVarAllocated
)

// ExtraVar records whether a device owns a branch-current variable and,
// once allocated, at which global index.
type ExtraVar struct {
	Kind           ExtraVarKind
	AllocatedIndex int
}

// Index returns the allocated variable index, or -1 if none has been
// allocated.
func (e ExtraVar) Index() int {
	if e.Kind != ExtraVarAllocated {
		return -1
	}
	return e.AllocatedIndex
}

// Circuit is the view of the owning circuit passed to Init. It carries
// only NumNodes today — a device that needs a branch-current variable signals
// that by setting its own ExtraVar to ExtraVarRequested during Init, and
// Circuit.Finalize grants the allocation afterwards — but keeping the
// parameter (rather than dropping it) matches the source's init(d,
// circuit) signature and leaves room for a device that needs to inspect
// circuit-wide state (e.g. temperature) during initialization.
type Circuit interface {
	NumNodes() int
}

// IterState is handed to StampNonlinear for one Newton-Raphson iteration.
// Linear devices ignore it.
type IterState struct {
	Iter     int
	XCurrent []float64
	TolAbs   float64
	TolRel   float64
}

// TimeState is handed to StampTransient. It carries the integration
// method in force, the step size, and the current Newton guess (transient
// analysis still linearizes nonlinear devices per timestep).
type TimeState struct {
	Method   util.IntegrationCoeffs
	H        float64
	Time     float64
	XCurrent []float64
}

// Device is the uniform polymorphic contract every circuit element
// implements. The core dispatches through this interface only; it never
// inspects a concrete variant.
type Device interface {
	Name() string
	Terminals() []int
	SetTerminals(nodes []int)
	ExtraVar() ExtraVar
	SetExtraVar(ev ExtraVar)

	Init(c Circuit) error
	StampNonlinear(ctx *matrix.StampContext, iter IterState) error
	StampTransient(ctx *matrix.StampContext, ts TimeState) error
	UpdateState(x []float64, ts TimeState)
	Free()
}

// BaseDevice holds the fields common to every variant: display name,
// terminal node names and their variable indices (as returned by the
// circuit's AddNode, -1 for ground), and extra-variable bookkeeping.
type BaseDevice struct {
	DeviceName string
	NodeNames  []string
	Nodes      []int
	extraVar   ExtraVar
}

func (b *BaseDevice) Name() string           { return b.DeviceName }
func (b *BaseDevice) Terminals() []int       { return b.Nodes }
func (b *BaseDevice) SetTerminals(n []int)   { b.Nodes = n }
func (b *BaseDevice) ExtraVar() ExtraVar     { return b.extraVar }
func (b *BaseDevice) SetExtraVar(e ExtraVar) { b.extraVar = e }

// Package matrix implements the stamp-accumulation arena and the dense
// linear algebra the Newton-Raphson driver solves against. Devices never
// see the dense matrix directly; they append triplets and RHS additions
// to a StampContext, which is assembled into a dense A once per iteration.
package matrix

import "github.com/pkg/errors"

// Triplet is one coordinate-format contribution to the system matrix.
// Duplicate (Row, Col) triplets accumulate on assembly.
type Triplet struct {
	Row int
	Col int
	Val float64
}

// StampContext is the per-assembly arena devices stamp into. It owns an
// append-only triplet list and a dense RHS vector, and centralizes
// extra-variable allocation so devices never reason about global layout.
type StampContext struct {
	numVars           int
	numExtraAllocated int
	triplets          []Triplet
	z                 []float64
}

// NewStampContext creates a context sized for n variables. n must be
// positive.
func NewStampContext(n int) (*StampContext, error) {
	if n <= 0 {
		return nil, errors.Errorf("matrix: stamp context size must be positive, got %d", n)
	}
	return &StampContext{
		numVars: n,
		z:       make([]float64, n),
	}, nil
}

// Reset clears the triplet list and zero-fills the RHS, leaving NumVars
// unchanged.
func (s *StampContext) Reset() {
	s.triplets = s.triplets[:0]
	for i := range s.z {
		s.z[i] = 0
	}
}

// AddA appends a Jacobian/conductance contribution. Out-of-range indices
// and zero values are silently dropped, by contract: devices may stamp
// unconditionally, including ground terminals represented by -1.
func (s *StampContext) AddA(row, col int, val float64) {
	if row < 0 || row >= s.numVars || col < 0 || col >= s.numVars || val == 0 {
		return
	}
	s.triplets = append(s.triplets, Triplet{Row: row, Col: col, Val: val})
}

// AddZ adds val to z[idx]. Out-of-range idx is silently dropped.
func (s *StampContext) AddZ(idx int, val float64) {
	if idx < 0 || idx >= s.numVars {
		return
	}
	s.z[idx] += val
}

// AllocExtraVar grants the next variable index, extends the RHS with a
// zero cell, and returns the newly allocated index. Existing triplets
// remain valid because allocation only extends the index space at the
// top.
func (s *StampContext) AllocExtraVar() int {
	idx := s.numVars
	s.numVars++
	s.numExtraAllocated++
	s.z = append(s.z, 0)
	return idx
}

// NumVars returns the current variable count.
func (s *StampContext) NumVars() int { return s.numVars }

// NumExtraAllocated returns how many extras have been granted so far.
func (s *StampContext) NumExtraAllocated() int { return s.numExtraAllocated }

// Triplets borrows the recorded triplets for read-only inspection.
func (s *StampContext) Triplets() []Triplet { return s.triplets }

// Z borrows the RHS vector. The driver is the only caller permitted to
// mutate it, and only after assembly.
func (s *StampContext) Z() []float64 { return s.z }

// AssembleDense zeroes out and fills it in row-major order with the sum
// of all recorded triplets. len(out) must equal NumVars()*NumVars().
func (s *StampContext) AssembleDense(out []float64) {
	n := s.numVars
	for i := range out {
		out[i] = 0
	}
	for _, t := range s.triplets {
		out[t.Row*n+t.Col] += t.Val
	}
}

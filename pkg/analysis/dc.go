// Package analysis drives the Newton-Raphson iteration that turns a
// finalized circuit's device stamps into an operating-point solution.
package analysis

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tinyspice/mnaspice/pkg/circuit"
	"github.com/tinyspice/mnaspice/pkg/device"
	"github.com/tinyspice/mnaspice/pkg/matrix"
)

// DCOptions controls the Newton-Raphson driver.
type DCOptions struct {
	MaxIter int
	TolAbs  float64
	TolRel  float64
}

func DefaultDCOptions() DCOptions {
	return DCOptions{
		MaxIter: 100,
		TolAbs:  1e-9,
		TolRel:  1e-6,
	}
}

// ErrDidNotConverge is wrapped with the iteration count when the
// Newton-Raphson loop exhausts MaxIter without satisfying the
// convergence test.
var ErrDidNotConverge = errors.New("analysis: did not converge")

// RunDC computes the DC operating point of c, returning the solved
// variable vector (node voltages followed by branch currents) and the
// iteration count it took to converge.
func RunDC(c *circuit.Circuit, opts DCOptions) ([]float64, int, error) {
	if !c.Finalized() {
		return nil, 0, errors.New("analysis: circuit must be finalized before RunDC")
	}

	n := c.NumVars()
	if n == 0 {
		return nil, 0, errors.New("analysis: circuit has no variables")
	}

	ctx, err := matrix.NewStampContext(n)
	if err != nil {
		return nil, 0, errors.Wrap(err, "analysis: building stamp context")
	}

	x := make([]float64, n)
	dense := make([]float64, n*n)

	var prev []float64
	for iter := 0; iter < opts.MaxIter; iter++ {
		ctx.Reset()

		iterState := device.IterState{
			Iter:     iter,
			XCurrent: x,
			TolAbs:   opts.TolAbs,
			TolRel:   opts.TolRel,
		}

		for _, dev := range c.Devices() {
			if err := dev.StampNonlinear(ctx, iterState); err != nil {
				return nil, iter, errors.Wrapf(err, "analysis: stamping device %s", dev.Name())
			}
		}

		ctx.AssembleDense(dense)
		next, err := matrix.Solve(n, dense, ctx.Z())
		if err != nil {
			return nil, iter, errors.Wrapf(err, "analysis: iteration %d", iter)
		}

		if prev != nil && converged(prev, next, opts) {
			logrus.WithFields(logrus.Fields{
				"iterations": iter + 1,
			}).Debug("dc operating point converged")
			return next, iter + 1, nil
		}

		prev = next
		x = next
	}

	return nil, opts.MaxIter, errors.Wrapf(ErrDidNotConverge, "after %d iterations", opts.MaxIter)
}

func converged(prev, next []float64, opts DCOptions) bool {
	for i := range next {
		diff := math.Abs(next[i] - prev[i])
		tol := opts.TolAbs + opts.TolRel*math.Abs(next[i])
		if diff > tol {
			return false
		}
	}
	return true
}

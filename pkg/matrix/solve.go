package matrix

import (
	"math"

	"github.com/pkg/errors"

	"github.com/tinyspice/mnaspice/internal/consts"
)

// ErrSingular is returned (wrapped) by Solve when a pivot falls below
// consts.SingularPivot.
var ErrSingular = errors.New("matrix: singular or ill-conditioned system")

// Solve solves a*x = b for x via dense Gaussian elimination with partial
// pivoting. a is row-major, length n*n; b has length n. Neither a nor b
// is modified; Solve works on local copies. Complexity is O(n^3).
func Solve(n int, a []float64, b []float64) ([]float64, error) {
	m := make([]float64, len(a))
	copy(m, a)
	rhs := make([]float64, len(b))
	copy(rhs, b)

	for k := 0; k < n; k++ {
		pivotRow := k
		pivotMag := math.Abs(m[k*n+k])
		for i := k + 1; i < n; i++ {
			if mag := math.Abs(m[i*n+k]); mag > pivotMag {
				pivotRow = i
				pivotMag = mag
			}
		}

		if pivotMag < consts.SingularPivot {
			return nil, errors.Wrapf(ErrSingular, "pivot at column %d has magnitude %g", k, pivotMag)
		}

		if pivotRow != k {
			swapRows(m, n, k, pivotRow)
			rhs[k], rhs[pivotRow] = rhs[pivotRow], rhs[k]
		}

		pivot := m[k*n+k]
		for i := k + 1; i < n; i++ {
			factor := m[i*n+k] / pivot
			if factor == 0 {
				continue
			}
			for j := k; j < n; j++ {
				m[i*n+j] -= factor * m[k*n+j]
			}
			rhs[i] -= factor * rhs[k]
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := rhs[i]
		for j := i + 1; j < n; j++ {
			sum -= m[i*n+j] * x[j]
		}
		x[i] = sum / m[i*n+i]
	}

	return x, nil
}

func swapRows(m []float64, n, r1, r2 int) {
	for j := 0; j < n; j++ {
		m[r1*n+j], m[r2*n+j] = m[r2*n+j], m[r1*n+j]
	}
}

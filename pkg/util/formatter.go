// Package util holds small stateless helpers shared across the solver:
// integration coefficients and result formatting.
package util

import (
	"fmt"
	"math"
)

// FormatValueFactor renders value with an SI prefix from pico up to unit
// (values of magnitude 1 or more get no prefix; values below 1e-12 use
// exponent notation), used for printing node voltages and branch
// currents in the CLI's operating-point report.
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1:
		return fmt.Sprintf("%.6f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.6f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.6f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.6f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.6f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.6e %s", value, unit)
	}
}

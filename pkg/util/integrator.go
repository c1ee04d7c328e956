package util

// IntegrationMethod names one of the three supported implicit integration
// rules reactive-device transient stamps consult.
type IntegrationMethod int

const (
	BackwardEuler IntegrationMethod = iota
	Trapezoidal
	Gear
)

// IntegrationCoeffs is the immutable coefficient record for one
// integration rule: a capacitor/inductor turns into an equivalent
// resistor-plus-source at each time step by combining these coefficients
// with the device value, the step size, and stored history.
type IntegrationCoeffs struct {
	Name             string
	Order            int
	Alpha0           float64
	Alpha1           float64
	Alpha2           float64
	Beta0            float64
	Beta1            float64
	Beta2            float64
	RequiredHistory  int
	TrapezoidalExtra bool // add i_prev/v_prev to the history term
}

var coeffsTable = map[IntegrationMethod]IntegrationCoeffs{
	BackwardEuler: {
		Name: "backward-euler", Order: 1,
		Alpha0: 1, Alpha1: 1, Alpha2: 0,
		Beta0: 1, Beta1: 1, Beta2: 0,
		RequiredHistory: 1,
	},
	Trapezoidal: {
		Name: "trapezoidal", Order: 2,
		Alpha0: 2, Alpha1: 2, Alpha2: 0,
		Beta0: 2, Beta1: 2, Beta2: 0,
		RequiredHistory:  1,
		TrapezoidalExtra: true,
	},
	Gear: {
		Name: "gear-bdf2", Order: 2,
		Alpha0: 1.5, Alpha1: 2, Alpha2: -0.5,
		Beta0: 1.5, Beta1: 2, Beta2: -0.5,
		RequiredHistory: 2,
	},
}

// Coeffs returns the coefficient record for method. Unknown methods
// return the zero-valued record (order 0); the transient stamps do not
// check for it.
func Coeffs(method IntegrationMethod) IntegrationCoeffs {
	return coeffsTable[method]
}

// Package consts holds the physical and numerical constants shared by
// the device models and the linear solver.
package consts

const (
	CHARGE    = 1.6021918e-19 // Elementary charge (C)
	BOLTZMANN = 1.3806226e-23 // Boltzmann constant (J/K)
	KELVIN    = 273.15        // 0 degrees Celsius in Kelvin

	RoomTemp = KELVIN + 27 // default device operating temperature (K)

	ThermalVoltage = 0.025852 // V_T = kT/q near 300 K, used by the diode model

	SingularPivot = 1e-15 // pivot magnitude below which the dense solver declares a matrix singular
	MinDiodeGeq   = 1e-12 // floor applied to the diode's linearized conductance

	DiodeForwardClamp = 0.7 // upper pre-clamp applied to the diode's junction voltage guess
)

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyspice/mnaspice/pkg/circuit"
	"github.com/tinyspice/mnaspice/pkg/device"
)

func buildVoltageDivider(t *testing.T) *circuit.Circuit {
	t.Helper()
	c := circuit.New("divider")

	vcc := c.AddNode("vcc")
	mid := c.AddNode("mid")
	gnd := c.AddNode("0")

	v := device.NewVoltageSource("V1", []string{"vcc", "0"}, 10)
	v.SetTerminals([]int{vcc, gnd})
	require.NoError(t, c.AddDevice(v))

	r1 := device.NewResistor("R1", []string{"vcc", "mid"}, 1000)
	r1.SetTerminals([]int{vcc, mid})
	require.NoError(t, c.AddDevice(r1))

	r2 := device.NewResistor("R2", []string{"mid", "0"}, 1000)
	r2.SetTerminals([]int{mid, gnd})
	require.NoError(t, c.AddDevice(r2))

	require.NoError(t, c.Finalize())
	return c
}

func TestRunDCVoltageDivider(t *testing.T) {
	c := buildVoltageDivider(t)

	x, iterations, err := RunDC(c, DefaultDCOptions())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, iterations, 1)

	assert.InDelta(t, 10.0, x[0], 1e-6)
	assert.InDelta(t, 5.0, x[1], 1e-6)
}

func TestRunDCCurrentSourceIntoResistor(t *testing.T) {
	c := circuit.New("isrc")
	n1 := c.AddNode("1")
	gnd := c.AddNode("0")

	i := device.NewCurrentSource("I1", []string{"0", "1"}, 1e-3)
	i.SetTerminals([]int{gnd, n1})
	require.NoError(t, c.AddDevice(i))

	r := device.NewResistor("R1", []string{"1", "0"}, 1000)
	r.SetTerminals([]int{n1, gnd})
	require.NoError(t, c.AddDevice(r))

	require.NoError(t, c.Finalize())

	x, _, err := RunDC(c, DefaultDCOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x[0], 1e-6)
}

func TestRunDCRequiresFinalizedCircuit(t *testing.T) {
	c := circuit.New("unfinalized")
	_, _, err := RunDC(c, DefaultDCOptions())
	assert.Error(t, err)
}

// TestRunDCDiodeForwardBias drives the Newton-Raphson loop through a
// genuinely nonlinear circuit (a voltage source and resistor forward
// biasing a diode) to convergence, exercising the multi-iteration fix
// that a single-pass linear solve cannot.
func TestRunDCDiodeForwardBias(t *testing.T) {
	c := circuit.New("diode-forward")

	vcc := c.AddNode("vcc")
	a := c.AddNode("a")
	gnd := c.AddNode("0")

	v := device.NewVoltageSource("V1", []string{"vcc", "0"}, 5)
	v.SetTerminals([]int{vcc, gnd})
	require.NoError(t, c.AddDevice(v))

	r := device.NewResistor("R1", []string{"vcc", "a"}, 1000)
	r.SetTerminals([]int{vcc, a})
	require.NoError(t, c.AddDevice(r))

	d := device.NewDiode("D1", []string{"a", "0"}, 1e-14, 1)
	d.SetTerminals([]int{a, gnd})
	require.NoError(t, c.AddDevice(d))

	require.NoError(t, c.Finalize())

	x, iterations, err := RunDC(c, DefaultDCOptions())
	require.NoError(t, err)
	assert.Greater(t, iterations, 1, "a nonlinear circuit must take more than one Newton-Raphson iteration")

	assert.InDelta(t, 0.7, x[a], 0.05)
}

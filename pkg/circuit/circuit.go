package circuit

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tinyspice/mnaspice/pkg/device"
)

// GroundNode is the sentinel used for the reference node. It never gets
// a matrix variable.
const GroundNode = -1

// groundAliases are the netlist spellings that all refer to the single
// ground node, independent of what node name a netlist author chooses.
// Matching is case-insensitive.
var groundAliases = map[string]bool{
	"0":      true,
	"gnd":    true,
	"ground": true,
}

func isGroundAlias(name string) bool {
	return groundAliases[strings.ToLower(name)]
}

type Circuit struct {
	Log *logrus.Entry

	nodeIndex map[string]int
	nodeNames []string

	devices []device.Device

	numVars      int
	numExtraVars int
	finalized    bool
}

func New(name string) *Circuit {
	return &Circuit{
		Log:       logrus.WithField("circuit", name),
		nodeIndex: make(map[string]int),
	}
}

// AddNode returns the variable index for name, allocating a fresh one on
// first use. Ground aliases always resolve to GroundNode.
func (c *Circuit) AddNode(name string) int {
	if isGroundAlias(name) {
		return GroundNode
	}
	if idx, ok := c.nodeIndex[name]; ok {
		return idx
	}
	idx := len(c.nodeNames)
	c.nodeIndex[name] = idx
	c.nodeNames = append(c.nodeNames, name)
	return idx
}

// AddDevice registers a device whose terminals have already been
// resolved to variable indices via AddNode. It must be called before
// Finalize.
func (c *Circuit) AddDevice(dev device.Device) error {
	if c.finalized {
		return errors.Errorf("circuit: cannot add device %s after Finalize", dev.Name())
	}
	c.devices = append(c.devices, dev)
	return nil
}

// NumNodes satisfies device.Circuit, the minimal view devices see during
// Init.
func (c *Circuit) NumNodes() int {
	return len(c.nodeNames)
}

// Finalize assigns the extra-variable block that follows the node
// variables: each device's Init is called once, and devices that requested
// a branch-current unknown are granted one, in insertion order. Terminal
// slices are left as they are: they already hold the variable indices
// AddNode returned. Finalize must run
// exactly once, after all nodes and devices are registered and before
// any Stamp call.
func (c *Circuit) Finalize() error {
	if c.finalized {
		return errors.New("circuit: Finalize called twice")
	}
	if len(c.nodeNames) == 0 {
		return errors.New("circuit: cannot finalize a circuit with no non-ground nodes")
	}

	for _, dev := range c.devices {
		if err := dev.Init(c); err != nil {
			return errors.Wrapf(err, "circuit: initializing device %s", dev.Name())
		}
	}

	nextExtra := len(c.nodeNames)
	for _, dev := range c.devices {
		ev := dev.ExtraVar()
		if ev.Kind != device.ExtraVarRequested {
			continue
		}
		dev.SetExtraVar(device.ExtraVar{Kind: device.ExtraVarAllocated, AllocatedIndex: nextExtra})
		nextExtra++
	}
	c.numExtraVars = nextExtra - len(c.nodeNames)
	c.numVars = nextExtra

	c.finalized = true
	c.Log.WithFields(logrus.Fields{
		"nodes":     len(c.nodeNames),
		"extraVars": c.numExtraVars,
		"devices":   len(c.devices),
	}).Debug("circuit finalized")

	return nil
}

func (c *Circuit) NumVars() int {
	return c.numVars
}

func (c *Circuit) NumExtraVars() int {
	return c.numExtraVars
}

func (c *Circuit) Devices() []device.Device {
	return c.devices
}

func (c *Circuit) Finalized() bool {
	return c.finalized
}

// NodeName returns the netlist name assigned to variable index idx, or
// "" for ground or an extra (branch-current) variable.
func (c *Circuit) NodeName(idx int) string {
	if idx < 0 || idx >= len(c.nodeNames) {
		return ""
	}
	return c.nodeNames[idx]
}

func (c *Circuit) NodeNames() []string {
	return c.nodeNames
}

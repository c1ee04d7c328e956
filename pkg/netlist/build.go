package netlist

import (
	"github.com/pkg/errors"

	"github.com/tinyspice/mnaspice/pkg/circuit"
	"github.com/tinyspice/mnaspice/pkg/device"
)

// Build constructs a finalized circuit.Circuit from a parsed netlist.
// Node names are registered in first-use order and every element is
// turned into its corresponding device.
func Build(nl *Netlist) (*circuit.Circuit, error) {
	c := circuit.New(nl.Title)

	for _, elem := range nl.Elements {
		dev, err := newDevice(elem)
		if err != nil {
			return nil, errors.Wrapf(err, "netlist: building device %s", elem.Name)
		}

		terminals := make([]int, len(elem.Nodes))
		for i, nodeName := range elem.Nodes {
			terminals[i] = c.AddNode(nodeName)
		}
		dev.SetTerminals(terminals)

		if err := c.AddDevice(dev); err != nil {
			return nil, err
		}
	}

	if err := c.Finalize(); err != nil {
		return nil, err
	}

	return c, nil
}

func newDevice(elem Element) (device.Device, error) {
	switch elem.Type {
	case "R":
		return device.NewResistor(elem.Name, elem.Nodes, elem.Value), nil
	case "C":
		return device.NewCapacitor(elem.Name, elem.Nodes, elem.Value), nil
	case "L":
		return device.NewInductor(elem.Name, elem.Nodes, elem.Value), nil
	case "V":
		return device.NewVoltageSource(elem.Name, elem.Nodes, elem.Value), nil
	case "I":
		return device.NewCurrentSource(elem.Name, elem.Nodes, elem.Value), nil
	case "D":
		is, n, err := elem.DiodeParam()
		if err != nil {
			return nil, err
		}
		return device.NewDiode(elem.Name, elem.Nodes, is, n), nil
	default:
		return nil, errors.Errorf("netlist: unknown device type %q", elem.Type)
	}
}

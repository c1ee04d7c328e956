// Command spice is a thin front end over the analysis package: read a
// netlist, solve its DC operating point, print node voltages and branch
// currents.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tinyspice/mnaspice/pkg/analysis"
	"github.com/tinyspice/mnaspice/pkg/circuit"
	"github.com/tinyspice/mnaspice/pkg/device"
	"github.com/tinyspice/mnaspice/pkg/netlist"
	"github.com/tinyspice/mnaspice/pkg/util"
)

var (
	maxIter int
	tolAbs  float64
	tolRel  float64
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "spice [netlist-file]",
		Short: "Solve the DC operating point of a SPICE-style netlist",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	root.Flags().IntVar(&maxIter, "max-iter", 100, "maximum Newton-Raphson iterations")
	root.Flags().Float64Var(&tolAbs, "tol-abs", 1e-9, "absolute convergence tolerance")
	root.Flags().Float64Var(&tolRel, "tol-rel", 1e-6, "relative convergence tolerance")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading netlist: %w", err)
	}

	nl, err := netlist.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("parsing netlist: %w", err)
	}

	c, err := netlist.Build(nl)
	if err != nil {
		return fmt.Errorf("building circuit: %w", err)
	}

	opts := analysis.DCOptions{MaxIter: maxIter, TolAbs: tolAbs, TolRel: tolRel}
	x, iterations, err := analysis.RunDC(c, opts)
	if err != nil {
		return fmt.Errorf("solving operating point: %w", err)
	}

	fmt.Printf("%s: converged in %d iterations\n\n", nl.Title, iterations)
	printSolution(c, x)

	return nil
}

func printSolution(c *circuit.Circuit, x []float64) {
	names := c.NodeNames()
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	fmt.Println("Node voltages:")
	for _, name := range sorted {
		idx := indexOf(names, name)
		fmt.Printf("  V(%s) = %s\n", name, util.FormatValueFactor(x[idx], "V"))
	}

	var branches []device.Device
	for _, dev := range c.Devices() {
		if dev.ExtraVar().Kind == device.ExtraVarAllocated {
			branches = append(branches, dev)
		}
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name() < branches[j].Name() })

	if len(branches) == 0 {
		return
	}
	fmt.Println("Branch currents:")
	for _, dev := range branches {
		idx := dev.ExtraVar().Index()
		fmt.Printf("  I(%s) = %s\n", dev.Name(), util.FormatValueFactor(x[idx], "A"))
	}
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

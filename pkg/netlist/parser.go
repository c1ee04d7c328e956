// Package netlist turns a SPICE-flavored text description into the
// device list a circuit.Circuit is built from.
package netlist

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Element is one parsed netlist line: a device type letter, its name,
// the node names in declaration order, a primary numeric value, and any
// trailing key=value parameters (used by diodes for Is/N).
type Element struct {
	Type   string
	Name   string
	Nodes  []string
	Value  float64
	Params map[string]string
}

// Netlist is the parsed result of a source file: its title line plus
// the ordered element list.
type Netlist struct {
	Title    string
	Elements []Element
}

// suffixMultipliers implements the SI-suffix table: longer suffixes are
// tried before shorter ones so "MEG" does not get shadowed by a bare
// "M", and matching is case-insensitive throughout.
var suffixMultipliers = []struct {
	suffix string
	mult   float64
}{
	{"meg", 1e6},
	{"mil", 25.4e-6},
	{"t", 1e12},
	{"g", 1e9},
	{"k", 1e3},
	{"m", 1e-3},
	{"u", 1e-6},
	{"n", 1e-9},
	{"p", 1e-12},
	{"f", 1e-15},
}

// ParseValue parses a SPICE numeric literal, recognizing the
// case-insensitive SI suffix table (T, G, MEG, k, m, mil, u, n, p, f).
// Trailing non-numeric text after a recognized suffix (e.g. the "ohm"
// in "4.7kohm") is ignored.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("netlist: empty numeric value")
	}

	lower := strings.ToLower(s)

	end := len(s)
	for end > 0 {
		c := s[end-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		end--
	}
	numPart := s[:end]
	suffixPart := lower[end:]

	value, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "netlist: invalid numeric value %q", s)
	}

	for _, sm := range suffixMultipliers {
		if strings.HasPrefix(suffixPart, sm.suffix) {
			return value * sm.mult, nil
		}
	}
	if suffixPart != "" {
		return 0, errors.Errorf("netlist: unrecognized suffix %q in %q", suffixPart, s)
	}
	return value, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "*") || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//")
}

// Parse reads a netlist from source text. Blank lines, comment lines
// (*, #, //), and directive lines (starting with .) are skipped; every
// other non-blank line is parsed as a device element. The first
// non-comment, non-blank line that is not itself a directive or
// element... in this simplified grammar, the very first line is always
// treated as the circuit title, matching common SPICE practice.
func Parse(source string) (*Netlist, error) {
	scanner := bufio.NewScanner(strings.NewReader(source))
	nl := &Netlist{}

	first := true
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if first {
			first = false
			nl.Title = strings.TrimPrefix(line, "*")
			nl.Title = strings.TrimSpace(nl.Title)
			continue
		}

		if line == "" || isComment(line) || strings.HasPrefix(line, ".") {
			continue
		}

		elem, err := parseElement(line)
		if err != nil {
			return nil, errors.Wrapf(err, "netlist: line %d", lineNo)
		}
		nl.Elements = append(nl.Elements, *elem)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "netlist: reading source")
	}

	return nl, nil
}

func parseElement(line string) (*Element, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil, errors.Errorf("netlist: malformed element line %q", line)
	}

	name := fields[0]
	devType := strings.ToUpper(name[:1])

	switch devType {
	case "D":
		if len(fields) < 3 {
			return nil, errors.Errorf("netlist: diode %s needs two nodes", name)
		}
		elem := &Element{
			Type:   devType,
			Name:   name,
			Nodes:  fields[1:3],
			Params: make(map[string]string),
		}
		for _, kv := range fields[3:] {
			parts := strings.SplitN(kv, "=", 2)
			if len(parts) != 2 {
				continue
			}
			elem.Params[strings.ToLower(parts[0])] = parts[1]
		}
		return elem, nil

	case "R", "C", "L", "V", "I":
		if len(fields) < 4 {
			return nil, errors.Errorf("netlist: %s needs two nodes and a value", name)
		}
		value, err := ParseValue(fields[len(fields)-1])
		if err != nil {
			return nil, errors.Wrapf(err, "netlist: parsing value for %s", name)
		}
		return &Element{
			Type:   devType,
			Name:   name,
			Nodes:  fields[1 : len(fields)-1],
			Value:  value,
			Params: make(map[string]string),
		}, nil

	default:
		return nil, errors.Errorf("netlist: unsupported element type %q in %q", devType, name)
	}
}

// DiodeParam reads the Is/N parameters off a diode element, applying
// the defaults the data model documents when absent.
func (e Element) DiodeParam() (is, n float64, err error) {
	is = 1e-14
	n = 1.0
	if v, ok := e.Params["is"]; ok {
		if is, err = ParseValue(v); err != nil {
			return 0, 0, errors.Wrap(err, "netlist: diode Is")
		}
	}
	if v, ok := e.Params["n"]; ok {
		if n, err = strconv.ParseFloat(v, 64); err != nil {
			return 0, 0, errors.Wrap(err, "netlist: diode N")
		}
	}
	return is, n, nil
}

// Package main provides the dimplot explain CLI.
//
// It resolves a chart kind plus an ordered dimension list against the
// slot-order registry and prints the resulting slot assignment, which is
// the fastest way to answer "which dimension ends up on which slot" before
// wiring up a real chart builder.
//
// Example:
//
//	dimplot -kind line -dims time,city,scenario -skip color
//	dimplot -kind box -dims time,city,scenario -set color=scenario
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"dimplot/darray"
	"dimplot/slots"
)

// sliceFlag collects repeated flag occurrences.
type sliceFlag []string

func (s *sliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *sliceFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	var (
		kindName = flag.String("kind", "line", "chart kind to resolve for")
		dimsCSV  = flag.String("dims", "", "comma-separated dimension names, in axis order")
		multiVar = flag.Bool("multivar", false, "append the variable pseudo-dimension (multi-variable source)")

		sets  sliceFlag
		skips sliceFlag
		autos sliceFlag
	)

	flag.Var(&sets, "set", "pin a slot to a dimension, as slot=dim (repeatable)")
	flag.Var(&skips, "skip", "remove a slot from consideration (repeatable)")
	flag.Var(&autos, "auto", "force a slot into positional auto-assignment (repeatable)")
	flag.Parse()

	if err := run(*kindName, *dimsCSV, *multiVar, sets, skips, autos); err != nil {
		fmt.Fprintln(os.Stderr, "dimplot:", err)
		os.Exit(1)
	}
}

func run(kindName, dimsCSV string, multiVar bool, sets, skips, autos []string) error {
	kind, err := slots.ParseKind(kindName)
	if err != nil {
		return err
	}

	dims := splitList(dimsCSV)
	if multiVar {
		dims = append(dims, darray.VariableDim)
	}

	overrides, err := parseOverrides(sets, skips, autos)
	if err != nil {
		return err
	}

	a, err := slots.Resolve(dims, kind, overrides)
	if err != nil {
		return err
	}

	printAssignment(a)

	return nil
}

// parseOverrides turns the flag values into the resolver's override set.
func parseOverrides(sets, skips, autos []string) (map[string]slots.Value, error) {
	overrides := map[string]slots.Value{}

	for _, s := range sets {
		slot, dim, ok := strings.Cut(s, "=")
		if !ok || slot == "" || dim == "" {
			return nil, fmt.Errorf("invalid -set %q: expected slot=dim", s)
		}

		overrides[slot] = slots.Dim(dim)
	}

	for _, slot := range skips {
		overrides[slot] = slots.Skip
	}

	for _, slot := range autos {
		overrides[slot] = slots.Auto
	}

	return overrides, nil
}

func printAssignment(a *slots.Assignment) {
	fmt.Printf("kind: %s\n", a.Kind)

	order := slots.MustOrderFor(a.Kind)

	for _, slot := range order.Slots {
		dim, ok := a.Slots[slot]
		if !ok {
			dim = "-"
		}

		fmt.Printf("  %-16s %s\n", slot, dim)
	}

	if len(a.Folded) > 0 {
		fmt.Printf("folded into aggregation: %s\n", strings.Join(a.Folded, ", "))
	}
}

func splitList(csv string) []string {
	if csv == "" {
		return nil
	}

	parts := strings.Split(csv, ",")

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

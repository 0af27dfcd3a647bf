package slotcfg

import (
	_ "embed"
	"fmt"
)

//go:embed orders.yaml
var canonicalYAML []byte

// Canonical parses and validates the embedded slot-order table. An error
// here means the embedded document itself is broken, which callers treat as
// a programming error.
func Canonical() (*File, error) {
	f, err := Parse(canonicalYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded slot-order table: %w", err)
	}

	if diags := Validate(f); diags.HasErrors() {
		return nil, fmt.Errorf("embedded slot-order table: %w", diags.Error())
	}

	return f, nil
}

// Package slots maps the named dimensions of a labeled array onto the
// visual slots of a chart kind.
//
// Resolution pipeline:
//  1. Look up the kind's slot order in the registry (built once from the
//     embedded table in internal/slotcfg)
//  2. Explicit pass: apply per-slot overrides (pin / skip) in slot order
//  3. Positional pass: zip the unclaimed dimensions against the remaining
//     auto slots, first to first, second to second
//  4. Validate that every dimension landed in a slot, unless the kind folds
//     leftovers into its aggregation (box)
//
// Resolution is a pure function of its inputs: no state survives a call and
// concurrent calls never interact.
package slots

// Package slotcfg provides the YAML schema, parsing, and validation for
// chart-kind slot orders, plus the embedded canonical table the registry is
// built from.
//
// The slot order of a chart kind is first-class configuration: it fixes the
// positional priority of visual slots (x, color, facet_col, ...) used when
// dimensions are assigned automatically. Keeping it in one validated
// document makes the per-kind differences (the imshow y/x leading pair, the
// box folding policy) data instead of code.
//
// # Schema Overview
//
//	version: "1"
//	kinds:
//	  - kind: line
//	    slots: [x, color, line_dash, symbol, facet_col, facet_row, animation_frame]
//	  - kind: box
//	    slots: [x, color, facet_col, facet_row, animation_frame]
//	    # Only x participates in positional auto-assignment by default;
//	    # leftover dimensions fold into the box statistics.
//	    default_auto: [x]
//	    allow_unassigned: true
//
// `default_auto` defaults to all declared slots, `allow_unassigned` to false.
package slotcfg

package slots

import (
	"sort"

	"dimplot/internal/match"
)

// Assignment is the resolved slot-to-dimension mapping for one plotting
// call.
type Assignment struct {
	// Kind the assignment was resolved for.
	Kind Kind
	// Slots maps slot name to the dimension it displays. Skipped and
	// unfilled slots are absent.
	Slots map[string]string
	// Folded lists dimensions absorbed into the chart's aggregation, in
	// source order. Only folding kinds (box) produce entries here.
	Folded []string
}

// Dim returns the dimension assigned to slot, or "" when the slot is empty.
func (a *Assignment) Dim(slot string) string {
	return a.Slots[slot]
}

// Resolve maps the ordered dimension list dims onto the slot order of kind,
// honoring the per-slot overrides. Missing override entries mean "kind
// default".
//
// Two passes: the explicit pass walks slots in declared order, removing
// skipped slots and applying pinned dimensions; the positional pass then
// zips the dimensions not yet claimed against the remaining auto slots,
// first to first, second to second, preserving both orders. Afterwards
// every dimension must sit in exactly one slot, except that folding kinds
// return the leftovers in Assignment.Folded instead of failing.
//
// Resolve never mutates its arguments and holds no state across calls.
func Resolve(dims []string, kind Kind, overrides map[string]Value) (*Assignment, error) {
	order, err := OrderFor(kind)
	if err != nil {
		return nil, err
	}

	if err := checkOverrideKeys(order, overrides); err != nil {
		return nil, err
	}

	dimSet := make(map[string]bool, len(dims))
	for _, d := range dims {
		dimSet[d] = true
	}

	assigned := make(map[string]string)
	claimedBy := make(map[string]string) // dimension -> slot that pinned it
	used := make(map[string]bool, len(dims))

	// Auto slots awaiting positional fill, in slot-order position.
	var queue []string

	// Explicit pass: walk slots in declared order.
	for _, slot := range order.Slots {
		v := overrides[slot]

		if dim, ok := v.Explicit(); ok {
			if !dimSet[dim] {
				return nil, &UnknownDimensionError{
					Slot:       slot,
					Dim:        dim,
					Dims:       dims,
					Suggestion: match.Closest(dim, dims),
				}
			}

			if prev, ok := claimedBy[dim]; ok {
				return nil, &DuplicateAssignmentError{Dim: dim, Slots: []string{prev, slot}}
			}

			claimedBy[dim] = slot
			assigned[slot] = dim
			used[dim] = true

			continue
		}

		if v.IsSkip() {
			continue
		}

		if v.mode == modeAuto || order.DefaultAuto(slot) {
			queue = append(queue, slot)
		}
		// Default mode on a slot the kind excludes from auto-assignment:
		// treated as skip (box non-x slots).
	}

	// Positional pass: unclaimed dimensions in source order.
	var unused []string
	for _, d := range dims {
		if !used[d] {
			unused = append(unused, d)
		}
	}

	// Zip with explicit bounds; the leftover on either side is handled
	// deliberately below, never truncated silently.
	for i := 0; i < len(queue) && i < len(unused); i++ {
		assigned[queue[i]] = unused[i]
		used[unused[i]] = true
	}

	var folded []string

	if len(unused) > len(queue) {
		leftover := append([]string{}, unused[len(queue):]...)

		if !order.AllowUnassigned {
			return nil, &UnassignedDimensionsError{Dims: leftover}
		}

		folded = leftover
	}

	return &Assignment{Kind: kind, Slots: assigned, Folded: folded}, nil
}

// checkOverrideKeys rejects override entries for slots the kind does not
// declare. Offending keys are reported smallest-first so the failure is
// deterministic when several are wrong.
func checkOverrideKeys(order *Order, overrides map[string]Value) error {
	var bad []string

	for slot := range overrides {
		if !order.Has(slot) {
			bad = append(bad, slot)
		}
	}

	if len(bad) == 0 {
		return nil
	}

	sort.Strings(bad)

	return &UnknownSlotError{
		Kind:       order.Kind,
		Slot:       bad[0],
		Suggestion: match.Closest(bad[0], order.Slots),
	}
}

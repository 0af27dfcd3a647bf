package slots

import (
	"fmt"
	"strings"
)

// UnknownKindError reports a chart kind missing from the registry.
type UnknownKindError struct {
	// Name of the requested kind.
	Name string
}

func (e *UnknownKindError) Error() string {
	kinds := make([]string, 0, int(KindPie)+1)
	for _, k := range Kinds() {
		kinds = append(kinds, k.String())
	}

	return fmt.Sprintf("unknown chart kind %q: supported kinds are %s",
		e.Name, strings.Join(kinds, ", "))
}

// UnknownSlotError reports an override keyed by a slot the chart kind does
// not define.
type UnknownSlotError struct {
	Kind Kind
	// Slot is the offending override key.
	Slot string
	// Suggestion is the closest declared slot name, if any.
	Suggestion string
}

func (e *UnknownSlotError) Error() string {
	msg := fmt.Sprintf("chart kind %q has no slot %q", e.Kind, e.Slot)

	order, err := OrderFor(e.Kind)
	if err == nil {
		msg += fmt.Sprintf(": available slots are %s", strings.Join(order.Slots, ", "))
	}

	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg
}

// UnknownDimensionError reports an override pinning a slot to a dimension
// the source does not have.
type UnknownDimensionError struct {
	// Slot the override was given for.
	Slot string
	// Dim is the unknown dimension name.
	Dim string
	// Dims are the dimensions the source actually has, in order.
	Dims []string
	// Suggestion is the closest existing dimension name, if any.
	Suggestion string
}

func (e *UnknownDimensionError) Error() string {
	msg := fmt.Sprintf("unknown dimension %q for slot %q: source has dimensions %s",
		e.Dim, e.Slot, strings.Join(e.Dims, ", "))

	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg
}

// DuplicateAssignmentError reports a dimension pinned to two slots by
// conflicting explicit overrides.
type DuplicateAssignmentError struct {
	// Dim is the dimension claimed twice.
	Dim string
	// Slots are the competing slots, in slot-order position.
	Slots []string
}

func (e *DuplicateAssignmentError) Error() string {
	return fmt.Sprintf("dimension %q is assigned to more than one slot: %s",
		e.Dim, strings.Join(e.Slots, ", "))
}

// UnassignedDimensionsError reports dimensions left over after both
// assignment passes for a kind that does not fold them.
type UnassignedDimensionsError struct {
	// Dims are the unconsumed dimensions, in source order.
	Dims []string
}

func (e *UnassignedDimensionsError) Error() string {
	return fmt.Sprintf("unassigned dimensions: %s; reduce the source before plotting "+
		"(select a single value along each, or aggregate it away)",
		strings.Join(e.Dims, ", "))
}

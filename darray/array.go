package darray

import "slices"

// valueColumn is the column name used for the plotted values when the
// source has no variable name of its own.
const valueColumn = "value"

// Attrs carries the display metadata of a variable or coordinate.
type Attrs struct {
	// LongName is the human-readable name (e.g. "Air temperature").
	LongName string
	// Units is the unit string (e.g. "K").
	Units string
}

// Label renders the display label for name: "<long_name> [<units>]" when
// both are set, falling back to the raw name when neither is.
func (a Attrs) Label(name string) string {
	long := a.LongName
	if long == "" {
		long = name
	}

	if a.Units != "" {
		return long + " [" + a.Units + "]"
	}

	return long
}

// Array is an N-dimensional labeled array: named axes in a fixed order,
// per-axis display metadata, and an opaque data handle passed through to
// the chart builder untouched.
type Array struct {
	// Name of the variable. Used as the value column name when set.
	Name string
	// Dims are the axis names, in the array's current axis order.
	Dims []string
	// Coords maps a dimension name to its display metadata.
	Coords map[string]Attrs
	// Attrs is the display metadata of the variable itself.
	Attrs Attrs
	// Data is the backing values, opaque to this module.
	Data any
}

// PlotDims returns the dimensions offered to slot assignment, in axis
// order.
func (a *Array) PlotDims() []string {
	return slices.Clone(a.Dims)
}

// HasDim reports whether the array has the named dimension.
func (a *Array) HasDim(name string) bool {
	return slices.Contains(a.Dims, name)
}

// ValueCol returns the column name the array's values are plotted under:
// the variable name, or "value" for unnamed arrays.
func (a *Array) ValueCol() string {
	if a.Name != "" {
		return a.Name
	}

	return valueColumn
}

// Label returns the display label for a dimension or for the value column.
func (a *Array) Label(name string) string {
	if attrs, ok := a.Coords[name]; ok {
		return attrs.Label(name)
	}

	if name == a.ValueCol() {
		return a.Attrs.Label(name)
	}

	return name
}

// Values returns the opaque data handle.
func (a *Array) Values() any {
	return a.Data
}

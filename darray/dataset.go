package darray

// VariableDim is the pseudo-dimension appended for multi-variable sources.
// It stands for "which variable" and participates in slot assignment like
// any real dimension.
const VariableDim = "variable"

// Dataset is an ordered collection of named variables sharing dimensions.
type Dataset struct {
	Vars []*Array
}

// PlotDims returns the union of the variables' dimensions in first-seen
// order, with the variable pseudo-dimension appended.
func (d *Dataset) PlotDims() []string {
	var dims []string

	seen := map[string]bool{}

	for _, v := range d.Vars {
		for _, dim := range v.Dims {
			if !seen[dim] {
				seen[dim] = true
				dims = append(dims, dim)
			}
		}
	}

	return append(dims, VariableDim)
}

// ValueCol returns "value": the variables are melted into a single value
// column keyed by the variable pseudo-dimension.
func (d *Dataset) ValueCol() string {
	return valueColumn
}

// Label returns the display label for a dimension. Coordinate metadata is
// taken from the first variable that declares it.
func (d *Dataset) Label(name string) string {
	if name == VariableDim {
		return VariableDim
	}

	for _, v := range d.Vars {
		if attrs, ok := v.Coords[name]; ok {
			return attrs.Label(name)
		}
	}

	return name
}

// Values returns the dataset itself as the opaque data handle; the chart
// builder decides how to melt it.
func (d *Dataset) Values() any {
	return d
}

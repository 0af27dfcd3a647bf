package darray

// Source is a plottable source of labeled values: a single Array or a
// multi-variable Dataset.
type Source interface {
	// PlotDims returns the dimensions offered to slot assignment, in order.
	PlotDims() []string
	// ValueCol returns the column name the values are plotted under.
	ValueCol() string
	// Label returns the display label for a dimension or the value column.
	Label(name string) string
	// Values returns the opaque data handle for the chart builder.
	Values() any
}

var (
	_ Source = (*Array)(nil)
	_ Source = (*Dataset)(nil)
)

package plot

import (
	"dimplot/darray"
	"dimplot/slots"
)

// Figure is the opaque renderable produced by a Builder. This module never
// inspects it.
type Figure any

// Style is an open-ended bag of styling parameters forwarded verbatim to
// the Builder.
type Style map[string]any

// FigureSpec is the fully-resolved hand-off from a plotting operation to a
// Builder.
type FigureSpec struct {
	// Slots maps slot name to the dimension driving it. Skipped and
	// unfilled slots are absent.
	Slots map[string]string
	// Folded lists dimensions absorbed into the chart's aggregation (box).
	Folded []string
	// ValueCol is the column holding the source's values.
	ValueCol string
	// YCol is the column plotted on the y axis when it is not the value
	// column (scatter's dimension-vs-dimension mode). Empty means ValueCol.
	YCol string
	// ColorCol is the column driving color when it is not a slot-assigned
	// dimension (scatter color-by-value, pie's names default). Empty means
	// use Slots["color"].
	ColorCol string
	// Values is the source's opaque data handle.
	Values any
	// Labels maps column names to display labels; derived from source
	// metadata with caller overrides already applied.
	Labels map[string]string
	// Style is the caller's pass-through styling bag.
	Style Style
}

// Builder renders a resolved figure specification into an opaque figure.
// Implementations live outside this module (plotly-JSON emitters, terminal
// renderers, test fakes).
type Builder interface {
	Build(kind slots.Kind, spec FigureSpec) (Figure, error)
}

// buildSpec assembles the common part of a FigureSpec from a resolved
// assignment.
func buildSpec(src darray.Source, a *slots.Assignment, labels map[string]string, style Style) FigureSpec {
	valueCol := src.ValueCol()

	return FigureSpec{
		Slots:    a.Slots,
		Folded:   a.Folded,
		ValueCol: valueCol,
		Values:   src.Values(),
		Labels:   buildLabels(src, a, valueCol, labels),
		Style:    style,
	}
}

// buildLabels derives display labels for every column in play: each
// assigned dimension plus the value column. Caller-supplied labels win.
func buildLabels(src darray.Source, a *slots.Assignment, valueCol string, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(a.Slots)+1+len(overrides))

	for _, dim := range a.Slots {
		out[dim] = src.Label(dim)
	}

	out[valueCol] = src.Label(valueCol)

	for col, label := range overrides {
		out[col] = label
	}

	return out
}

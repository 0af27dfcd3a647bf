package plot

import (
	"slices"

	"dimplot/darray"
	"dimplot/slots"
)

// Plotter resolves slot assignments and hands them to a Builder.
type Plotter struct {
	builder Builder
}

// New returns a Plotter rendering through b.
func New(b Builder) *Plotter {
	return &Plotter{builder: b}
}

// Line creates a line chart: values on the y axis, dimensions filling the
// line slot order positionally.
func (p *Plotter) Line(src darray.Source, opts LineOptions) (Figure, error) {
	return p.simple(src, slots.KindLine, opts.overrides(), opts.Labels, opts.Style)
}

// Bar creates a bar chart.
func (p *Plotter) Bar(src darray.Source, opts BarOptions) (Figure, error) {
	return p.simple(src, slots.KindBar, opts.overrides(), opts.Labels, opts.Style)
}

// FastBar creates a bar-like chart drawn with stepped stacked areas, which
// renders faster than Bar for large sources. Trace stacking and sign
// handling belong to the Builder.
func (p *Plotter) FastBar(src darray.Source, opts FastBarOptions) (Figure, error) {
	return p.simple(src, slots.KindFastBar, opts.overrides(), opts.Labels, opts.Style)
}

// Area creates a stacked area chart.
func (p *Plotter) Area(src darray.Source, opts AreaOptions) (Figure, error) {
	return p.simple(src, slots.KindArea, opts.overrides(), opts.Labels, opts.Style)
}

// Box creates a box plot. By default only x is auto-assigned; the other
// dimensions fold into the box statistics unless pinned to a slot.
func (p *Plotter) Box(src darray.Source, opts BoxOptions) (Figure, error) {
	return p.simple(src, slots.KindBox, opts.overrides(), opts.Labels, opts.Style)
}

// Imshow creates a heatmap: the first two dimensions fill the y (rows) and
// x (columns) axes, then facet_col and animation_frame.
func (p *Plotter) Imshow(src darray.Source, opts ImshowOptions) (Figure, error) {
	return p.simple(src, slots.KindImshow, opts.overrides(), opts.Labels, opts.Style)
}

// Scatter creates a scatter plot. See ScatterOptions for the y-axis and
// color-by-value modes.
func (p *Plotter) Scatter(src darray.Source, opts ScatterOptions) (Figure, error) {
	dims := src.PlotDims()

	// A dimension on the y axis is plotted directly and excluded from slot
	// assignment. Any other non-empty Y is passed through as a plain
	// column for the Builder to interpret.
	yCol := ""
	yIsDim := false

	if opts.Y != "" && opts.Y != src.ValueCol() {
		yCol = opts.Y
		yIsDim = slices.Contains(dims, opts.Y)

		if yIsDim {
			dims = slices.DeleteFunc(dims, func(d string) bool { return d == opts.Y })
		}
	}

	overrides := opts.overrides()

	// Coloring by the values is not a dimension assignment; keep the color
	// slot out of resolution and point the builder at the value column.
	colorCol := ""
	if dim, ok := opts.Color.Explicit(); ok && dim == "value" && !slices.Contains(dims, dim) {
		colorCol = src.ValueCol()
		overrides["color"] = slots.Skip
	}

	a, err := slots.Resolve(dims, slots.KindScatter, overrides)
	if err != nil {
		return nil, err
	}

	spec := buildSpec(src, a, opts.Labels, opts.Style)
	spec.YCol = yCol
	spec.ColorCol = colorCol

	if yIsDim {
		if _, ok := spec.Labels[yCol]; !ok {
			spec.Labels[yCol] = src.Label(yCol)
		}
	}

	return p.builder.Build(slots.KindScatter, spec)
}

// Pie creates a pie chart: the values size the slices, the names dimension
// labels them.
func (p *Plotter) Pie(src darray.Source, opts PieOptions) (Figure, error) {
	a, err := slots.Resolve(src.PlotDims(), slots.KindPie, opts.overrides())
	if err != nil {
		return nil, err
	}

	spec := buildSpec(src, a, opts.Labels, opts.Style)

	// Slice colors follow the names dimension unless the caller points
	// them elsewhere.
	spec.ColorCol = opts.Color
	if spec.ColorCol == "" {
		spec.ColorCol = a.Dim("names")
	}

	return p.builder.Build(slots.KindPie, spec)
}

// simple is the shared path for kinds without extra column modes: resolve,
// then hand off. The Builder is never invoked when resolution fails.
func (p *Plotter) simple(
	src darray.Source,
	kind slots.Kind,
	overrides map[string]slots.Value,
	labels map[string]string,
	style Style,
) (Figure, error) {
	a, err := slots.Resolve(src.PlotDims(), kind, overrides)
	if err != nil {
		return nil, err
	}

	return p.builder.Build(kind, buildSpec(src, a, labels, style))
}

package plot

import "dimplot/slots"

// Per-kind option structs. Slot fields left zero take the kind's default
// behavior; pin with slots.Dim, drop with slots.Skip, force participation
// with slots.Auto. Labels override derived display labels by column name;
// Style is forwarded to the Builder verbatim.

// LineOptions configures Line. Dimensions fill slots in order:
// x -> color -> line_dash -> symbol -> facet_col -> facet_row -> animation_frame.
type LineOptions struct {
	X              slots.Value
	Color          slots.Value
	LineDash       slots.Value
	Symbol         slots.Value
	FacetCol       slots.Value
	FacetRow       slots.Value
	AnimationFrame slots.Value

	Labels map[string]string
	Style  Style
}

func (o LineOptions) overrides() map[string]slots.Value {
	return map[string]slots.Value{
		"x":               o.X,
		"color":           o.Color,
		"line_dash":       o.LineDash,
		"symbol":          o.Symbol,
		"facet_col":       o.FacetCol,
		"facet_row":       o.FacetRow,
		"animation_frame": o.AnimationFrame,
	}
}

// BarOptions configures Bar. Dimensions fill slots in order:
// x -> color -> pattern_shape -> facet_col -> facet_row -> animation_frame.
type BarOptions struct {
	X              slots.Value
	Color          slots.Value
	PatternShape   slots.Value
	FacetCol       slots.Value
	FacetRow       slots.Value
	AnimationFrame slots.Value

	Labels map[string]string
	Style  Style
}

func (o BarOptions) overrides() map[string]slots.Value {
	return map[string]slots.Value{
		"x":               o.X,
		"color":           o.Color,
		"pattern_shape":   o.PatternShape,
		"facet_col":       o.FacetCol,
		"facet_row":       o.FacetRow,
		"animation_frame": o.AnimationFrame,
	}
}

// FastBarOptions configures FastBar. Dimensions fill slots in order:
// x -> color -> facet_col -> facet_row -> animation_frame.
type FastBarOptions struct {
	X              slots.Value
	Color          slots.Value
	FacetCol       slots.Value
	FacetRow       slots.Value
	AnimationFrame slots.Value

	Labels map[string]string
	Style  Style
}

func (o FastBarOptions) overrides() map[string]slots.Value {
	return map[string]slots.Value{
		"x":               o.X,
		"color":           o.Color,
		"facet_col":       o.FacetCol,
		"facet_row":       o.FacetRow,
		"animation_frame": o.AnimationFrame,
	}
}

// AreaOptions configures Area; same slot order as Bar.
type AreaOptions = BarOptions

// BoxOptions configures Box. Only x auto-fills by default; the other slots
// stay empty unless pinned or forced with slots.Auto, and leftover
// dimensions fold into the box statistics.
type BoxOptions struct {
	X              slots.Value
	Color          slots.Value
	FacetCol       slots.Value
	FacetRow       slots.Value
	AnimationFrame slots.Value

	Labels map[string]string
	Style  Style
}

func (o BoxOptions) overrides() map[string]slots.Value {
	return map[string]slots.Value{
		"x":               o.X,
		"color":           o.Color,
		"facet_col":       o.FacetCol,
		"facet_row":       o.FacetRow,
		"animation_frame": o.AnimationFrame,
	}
}

// ScatterOptions configures Scatter. Dimensions fill slots in order:
// x -> color -> symbol -> facet_col -> facet_row -> animation_frame.
//
// Y selects what the y axis shows: empty plots the values; a dimension
// name plots that dimension directly and excludes it from slot assignment.
// Color set to slots.Dim("value") colors points by the values instead of a
// dimension.
type ScatterOptions struct {
	Y              string
	X              slots.Value
	Color          slots.Value
	Symbol         slots.Value
	FacetCol       slots.Value
	FacetRow       slots.Value
	AnimationFrame slots.Value

	Labels map[string]string
	Style  Style
}

func (o ScatterOptions) overrides() map[string]slots.Value {
	return map[string]slots.Value{
		"x":               o.X,
		"color":           o.Color,
		"symbol":          o.Symbol,
		"facet_col":       o.FacetCol,
		"facet_row":       o.FacetRow,
		"animation_frame": o.AnimationFrame,
	}
}

// ImshowOptions configures Imshow. Both leading slots are positional axes;
// dimensions fill y (rows) -> x (columns) -> facet_col -> animation_frame.
type ImshowOptions struct {
	Y              slots.Value
	X              slots.Value
	FacetCol       slots.Value
	AnimationFrame slots.Value

	Labels map[string]string
	Style  Style
}

func (o ImshowOptions) overrides() map[string]slots.Value {
	return map[string]slots.Value{
		"y":               o.Y,
		"x":               o.X,
		"facet_col":       o.FacetCol,
		"animation_frame": o.AnimationFrame,
	}
}

// PieOptions configures Pie. Dimensions fill slots in order:
// names -> facet_col -> facet_row. Color names the column driving slice
// colors; empty follows the names dimension.
type PieOptions struct {
	Names    slots.Value
	FacetCol slots.Value
	FacetRow slots.Value
	Color    string

	Labels map[string]string
	Style  Style
}

func (o PieOptions) overrides() map[string]slots.Value {
	return map[string]slots.Value{
		"names":     o.Names,
		"facet_col": o.FacetCol,
		"facet_row": o.FacetRow,
	}
}

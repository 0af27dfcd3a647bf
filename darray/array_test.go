package darray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttrs_Label(t *testing.T) {
	tests := []struct {
		name     string
		attrs    Attrs
		expected string
	}{
		{"time", Attrs{}, "time"},
		{"time", Attrs{LongName: "Time"}, "Time"},
		{"temp", Attrs{LongName: "Air temperature", Units: "K"}, "Air temperature [K]"},
		{"speed", Attrs{Units: "m/s"}, "speed [m/s]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.attrs.Label(tt.name))
		})
	}
}

func TestArray_ValueCol(t *testing.T) {
	named := &Array{Name: "temperature"}
	assert.Equal(t, "temperature", named.ValueCol())

	unnamed := &Array{}
	assert.Equal(t, "value", unnamed.ValueCol())
}

func TestArray_Label(t *testing.T) {
	a := &Array{
		Name: "temperature",
		Dims: []string{"time", "city"},
		Coords: map[string]Attrs{
			"time": {LongName: "Time", Units: "h"},
		},
		Attrs: Attrs{LongName: "Air temperature", Units: "K"},
	}

	// Coordinate with metadata
	assert.Equal(t, "Time [h]", a.Label("time"))
	// Coordinate without metadata falls back to the raw name
	assert.Equal(t, "city", a.Label("city"))
	// Value column uses the variable's own attrs
	assert.Equal(t, "Air temperature [K]", a.Label("temperature"))
	// Anything else passes through
	assert.Equal(t, "scenario", a.Label("scenario"))
}

func TestArray_PlotDims(t *testing.T) {
	a := &Array{Dims: []string{"time", "city"}}

	dims := a.PlotDims()
	assert.Equal(t, []string{"time", "city"}, dims)

	// Mutating the copy leaves the array alone.
	dims[0] = "clobbered"
	assert.Equal(t, []string{"time", "city"}, a.Dims)

	assert.True(t, a.HasDim("city"))
	assert.False(t, a.HasDim("lat"))
}

func TestDataset_PlotDims(t *testing.T) {
	ds := &Dataset{Vars: []*Array{
		{Name: "temperature", Dims: []string{"time", "city"}},
		{Name: "humidity", Dims: []string{"time", "city"}},
	}}

	assert.Equal(t, []string{"time", "city", "variable"}, ds.PlotDims())
	assert.Equal(t, "value", ds.ValueCol())
}

func TestDataset_PlotDims_UnionKeepsFirstSeenOrder(t *testing.T) {
	ds := &Dataset{Vars: []*Array{
		{Name: "temperature", Dims: []string{"time", "city"}},
		{Name: "pressure", Dims: []string{"time", "level"}},
	}}

	assert.Equal(t, []string{"time", "city", "level", "variable"}, ds.PlotDims())
}

func TestDataset_Label(t *testing.T) {
	ds := &Dataset{Vars: []*Array{
		{Name: "temperature", Dims: []string{"time"}, Coords: map[string]Attrs{
			"time": {LongName: "Time", Units: "h"},
		}},
	}}

	assert.Equal(t, "Time [h]", ds.Label("time"))
	assert.Equal(t, "variable", ds.Label(VariableDim))
	assert.Equal(t, "city", ds.Label("city"))
}

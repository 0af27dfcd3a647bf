package slotcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Basic(t *testing.T) {
	data := []byte(`
version: "1"
kinds:
  - kind: line
    slots: [x, color, facet_col]
  - kind: box
    slots: [x, color, facet_col]
    default_auto: [x]
    allow_unassigned: true
`)

	f, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Kinds, 2)

	line := f.Kinds[0]
	assert.Equal(t, "line", line.Kind)
	assert.Equal(t, []string{"x", "color", "facet_col"}, line.Slots)
	// default_auto omitted -> all slots participate
	assert.Equal(t, []string{"x", "color", "facet_col"}, line.DefaultAuto)
	assert.False(t, line.AllowUnassigned)

	box := f.Kinds[1]
	assert.Equal(t, []string{"x"}, box.DefaultAuto)
	assert.True(t, box.AllowUnassigned)
}

func TestParse_DefaultVersion(t *testing.T) {
	f, err := Parse([]byte(`
kinds:
  - kind: pie
    slots: [names]
`))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("kinds: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse slot-order YAML")
}

func TestCanonical(t *testing.T) {
	f, err := Canonical()
	require.NoError(t, err)

	byKind := map[string]KindSpec{}
	for _, k := range f.Kinds {
		byKind[k.Kind] = k
	}

	for _, kind := range []string{"line", "bar", "fast_bar", "area", "box", "scatter", "imshow", "pie"} {
		assert.Contains(t, byKind, kind)
	}

	// Heatmaps lead with the y/x positional pair.
	assert.Equal(t, []string{"y", "x", "facet_col", "animation_frame"}, byKind["imshow"].Slots)

	// Box is the only folding kind, and only x auto-fills by default.
	box := byKind["box"]
	assert.True(t, box.AllowUnassigned)
	assert.Equal(t, []string{"x"}, box.DefaultAuto)

	for _, k := range f.Kinds {
		if k.Kind == "box" {
			continue
		}

		assert.False(t, k.AllowUnassigned, "kind %s", k.Kind)
		assert.Equal(t, k.Slots, k.DefaultAuto, "kind %s", k.Kind)
	}
}

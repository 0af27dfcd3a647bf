package slots

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFor_AllKinds(t *testing.T) {
	for _, kind := range Kinds() {
		order, err := OrderFor(kind)
		require.NoError(t, err, "kind %s", kind)
		assert.Equal(t, kind, order.Kind)
		assert.NotEmpty(t, order.Slots)
	}
}

func TestOrderFor_SlotSequences(t *testing.T) {
	tests := []struct {
		kind  Kind
		slots []string
	}{
		{KindLine, []string{"x", "color", "line_dash", "symbol", "facet_col", "facet_row", "animation_frame"}},
		{KindBar, []string{"x", "color", "pattern_shape", "facet_col", "facet_row", "animation_frame"}},
		{KindFastBar, []string{"x", "color", "facet_col", "facet_row", "animation_frame"}},
		{KindArea, []string{"x", "color", "pattern_shape", "facet_col", "facet_row", "animation_frame"}},
		{KindBox, []string{"x", "color", "facet_col", "facet_row", "animation_frame"}},
		{KindScatter, []string{"x", "color", "symbol", "facet_col", "facet_row", "animation_frame"}},
		{KindImshow, []string{"y", "x", "facet_col", "animation_frame"}},
		{KindPie, []string{"names", "facet_col", "facet_row"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			order := MustOrderFor(tt.kind)
			assert.Equal(t, tt.slots, order.Slots)
		})
	}
}

func TestOrderFor_BoxPolicy(t *testing.T) {
	box := MustOrderFor(KindBox)

	assert.True(t, box.AllowUnassigned)
	assert.True(t, box.DefaultAuto("x"))

	for _, slot := range []string{"color", "facet_col", "facet_row", "animation_frame"} {
		assert.False(t, box.DefaultAuto(slot), "slot %s", slot)
	}

	// Every other kind auto-fills all of its slots and never folds.
	for _, kind := range Kinds() {
		if kind == KindBox {
			continue
		}

		order := MustOrderFor(kind)
		assert.False(t, order.AllowUnassigned, "kind %s", kind)

		for _, slot := range order.Slots {
			assert.True(t, order.DefaultAuto(slot), "kind %s slot %s", kind, slot)
		}
	}
}

func TestOrderFor_UnknownKind(t *testing.T) {
	_, err := OrderFor(Kind(97))
	require.Error(t, err)

	var unknownErr *UnknownKindError
	require.True(t, errors.As(err, &unknownErr))
	assert.Contains(t, err.Error(), "unknown chart kind")
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseKind("sparkline")
	var unknownErr *UnknownKindError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "sparkline", unknownErr.Name)
}

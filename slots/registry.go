package slots

import (
	"fmt"

	"dimplot/internal/slotcfg"
)

// Order is the slot-order entry for one chart kind: the ordered slot
// sequence plus the kind's auto-assignment policy. Entries are built once
// at init and never change; callers must not modify the returned slices.
type Order struct {
	// Kind this order belongs to.
	Kind Kind
	// Slots in positional priority order.
	Slots []string
	// AllowUnassigned permits leftover dimensions to fold into the chart's
	// aggregation instead of failing resolution.
	AllowUnassigned bool

	defaultAuto map[string]bool
}

// Has reports whether the kind declares the named slot.
func (o *Order) Has(slot string) bool {
	for _, s := range o.Slots {
		if s == slot {
			return true
		}
	}

	return false
}

// DefaultAuto reports whether the named slot participates in positional
// auto-assignment when the caller supplies no override for it.
func (o *Order) DefaultAuto(slot string) bool {
	return o.defaultAuto[slot]
}

// registry is the static slot-order table, one entry per Kind. Built once
// from the embedded configuration; a failure here is a programming error.
var registry = mustBuildRegistry()

func mustBuildRegistry() map[Kind]*Order {
	f, err := slotcfg.Canonical()
	if err != nil {
		panic(err)
	}

	out := make(map[Kind]*Order, len(f.Kinds))

	for i := range f.Kinds {
		spec := &f.Kinds[i]

		kind, err := ParseKind(spec.Kind)
		if err != nil {
			panic(fmt.Sprintf("slot-order table defines unsupported kind %q", spec.Kind))
		}

		if _, ok := out[kind]; ok {
			panic(fmt.Sprintf("slot-order table defines kind %q twice", spec.Kind))
		}

		auto := make(map[string]bool, len(spec.DefaultAuto))
		for _, s := range spec.DefaultAuto {
			auto[s] = true
		}

		out[kind] = &Order{
			Kind:            kind,
			Slots:           spec.Slots,
			AllowUnassigned: spec.AllowUnassigned,
			defaultAuto:     auto,
		}
	}

	for _, k := range Kinds() {
		if _, ok := out[k]; !ok {
			panic(fmt.Sprintf("slot-order table has no entry for kind %q", k))
		}
	}

	return out
}

// OrderFor returns the slot order for kind. An unknown kind is a
// programming error on the typed API, but the name-based callers (the
// explain CLI) still get a structured error.
func OrderFor(kind Kind) (*Order, error) {
	o, ok := registry[kind]
	if !ok {
		return nil, &UnknownKindError{Name: kind.String()}
	}

	return o, nil
}

// MustOrderFor is OrderFor for compile-time-constant kinds; it panics on an
// unknown kind.
func MustOrderFor(kind Kind) *Order {
	o, err := OrderFor(kind)
	if err != nil {
		panic(err)
	}

	return o
}

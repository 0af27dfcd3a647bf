package slots

// Value is the per-slot override for one resolution call. The zero Value
// means "use the kind's default": positional auto-assignment for most
// slots, skip for slots the kind excludes from auto-assignment (the
// non-x slots of box charts).
//
// The tagged representation keeps "auto and skip simultaneously" and
// similar illegal states unrepresentable.
type Value struct {
	mode valueMode
	dim  string
}

type valueMode int

const (
	modeDefault valueMode = iota
	modeAuto
	modeSkip
	modeDim
)

// Auto forces a slot to participate in positional auto-assignment, even
// where the kind excludes it by default.
var Auto = Value{mode: modeAuto}

// Skip removes a slot from consideration entirely; it never receives a
// dimension and later auto slots shift up to take its place.
var Skip = Value{mode: modeSkip}

// Dim pins a slot to the named dimension, regardless of position.
func Dim(name string) Value {
	return Value{mode: modeDim, dim: name}
}

// Explicit returns the pinned dimension name and true when the value pins
// one.
func (v Value) Explicit() (string, bool) {
	return v.dim, v.mode == modeDim
}

// IsSkip reports whether the value removes its slot from consideration.
func (v Value) IsSkip() bool {
	return v.mode == modeSkip
}

// String returns a human-readable form, used by the explain CLI.
func (v Value) String() string {
	switch v.mode {
	case modeDefault:
		return "default"
	case modeAuto:
		return "auto"
	case modeSkip:
		return "skip"
	case modeDim:
		return v.dim
	default:
		return "unknown"
	}
}

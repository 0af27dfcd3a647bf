package slots

// Kind identifies a supported chart kind.
type Kind int

//go:generate go tool stringer -type=Kind -linecomment

const (
	KindLine    Kind = iota // line
	KindBar                 // bar
	KindFastBar             // fast_bar
	KindArea                // area
	KindBox                 // box
	KindScatter             // scatter
	KindImshow              // imshow
	KindPie                 // pie
)

// Kinds returns all supported chart kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(KindPie)+1)
	for k := KindLine; k <= KindPie; k++ {
		out = append(out, k)
	}

	return out
}

// ParseKind maps a kind name ("line", "imshow", ...) to its Kind.
func ParseKind(name string) (Kind, error) {
	for k := KindLine; k <= KindPie; k++ {
		if k.String() == name {
			return k, nil
		}
	}

	return 0, &UnknownKindError{Name: name}
}

package slotcfg

// File is the top-level structure of a slot-order document.
type File struct {
	// Version of the schema. Currently always "1".
	Version string `yaml:"version"`
	// Kinds holds one slot-order definition per chart kind.
	Kinds []KindSpec `yaml:"kinds"`
}

// KindSpec defines the slot order and assignment policy for one chart kind.
type KindSpec struct {
	// Kind is the chart-kind name (e.g. "line", "imshow").
	Kind string `yaml:"kind"`
	// Slots is the ordered slot sequence used for positional auto-assignment.
	Slots []string `yaml:"slots"`
	// DefaultAuto lists the slots that participate in auto-assignment when
	// the caller supplies no override. Empty means all slots participate.
	DefaultAuto []string `yaml:"default_auto"`
	// AllowUnassigned permits dimensions left over after both passes to be
	// folded into the chart's aggregation instead of raising an error.
	AllowUnassigned bool `yaml:"allow_unassigned"`
}

// SlotSet returns the declared slots as a membership set.
func (k *KindSpec) SlotSet() map[string]bool {
	set := make(map[string]bool, len(k.Slots))
	for _, s := range k.Slots {
		set[s] = true
	}

	return set
}

package slotcfg

import (
	"fmt"

	"dimplot/internal/diagnostic"
)

// Validate validates a slot-order document. This is a structural validation
// step only; it checks name uniqueness and policy consistency, not whether
// any particular plotting backend supports a slot.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "slot-order document is nil", "", "")
		return res
	}

	if len(f.Kinds) == 0 {
		res.AddError("no_kinds", "slot-order document defines no chart kinds", "", "")
		return res
	}

	seenKinds := map[string]struct{}{}

	for i := range f.Kinds {
		k := &f.Kinds[i]

		if k.Kind == "" {
			res.AddError("kind_name_empty", fmt.Sprintf("kind entry %d has no name", i), "", "")
			continue
		}

		if _, ok := seenKinds[k.Kind]; ok {
			res.AddError("duplicate_kind", fmt.Sprintf("duplicate kind %q", k.Kind), k.Kind, "")
			continue
		}

		seenKinds[k.Kind] = struct{}{}

		validateKind(k, res)
	}

	return res
}

// validateKind checks a single kind entry.
func validateKind(k *KindSpec, res *diagnostic.Diagnostics) {
	if len(k.Slots) == 0 {
		res.AddError("no_slots", fmt.Sprintf("kind %q defines no slots", k.Kind), k.Kind, "")
		return
	}

	seenSlots := map[string]struct{}{}

	for _, s := range k.Slots {
		if s == "" {
			res.AddError("slot_name_empty", fmt.Sprintf("kind %q has an empty slot name", k.Kind), k.Kind, "")
			continue
		}

		if _, ok := seenSlots[s]; ok {
			res.AddError("duplicate_slot", fmt.Sprintf("duplicate slot %q", s), k.Kind, s)
			continue
		}

		seenSlots[s] = struct{}{}
	}

	declared := k.SlotSet()

	seenAuto := map[string]struct{}{}

	for _, s := range k.DefaultAuto {
		if !declared[s] {
			res.AddError("default_auto_unknown_slot",
				fmt.Sprintf("default_auto names slot %q which kind %q does not declare", s, k.Kind), k.Kind, s)
			continue
		}

		if _, ok := seenAuto[s]; ok {
			res.AddWarning("default_auto_duplicate_slot",
				fmt.Sprintf("default_auto lists slot %q more than once", s), k.Kind, s)
			continue
		}

		seenAuto[s] = struct{}{}
	}

	// A folding kind with every slot auto-assignable never folds anything in
	// the all-auto case; flag it as a likely authoring mistake.
	if k.AllowUnassigned && len(seenAuto) == len(k.Slots) {
		res.AddWarning("folding_without_exclusions",
			fmt.Sprintf("kind %q allows unassigned dimensions but keeps every slot auto-assignable", k.Kind),
			k.Kind, "")
	}
}

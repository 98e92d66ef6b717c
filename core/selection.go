package core

import "github.com/axees/scout/schema"

// Selection is an immutable set of selected creator IDs. Mutating operations
// return a new Selection and never touch the receiver, so callers can keep
// old snapshots around safely.
type Selection struct {
	ids map[string]bool
}

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return Selection{ids: map[string]bool{}}
}

// NewSelectionFromIDs returns a selection seeded with the given IDs.
func NewSelectionFromIDs(ids []string) Selection {
	s := Selection{ids: make(map[string]bool, len(ids))}
	for _, id := range ids {
		s.ids[id] = true
	}
	return s
}

// Toggle returns a new selection with the ID flipped: added when absent,
// removed when present. Toggling twice is the identity.
func (s Selection) Toggle(id string) Selection {
	next := s.clone()
	if next.ids[id] {
		delete(next.ids, id)
	} else {
		next.ids[id] = true
	}
	return next
}

// Clear returns an empty selection.
func (s Selection) Clear() Selection {
	return NewSelection()
}

// Has reports whether the ID is selected.
func (s Selection) Has(id string) bool {
	return s.ids[id]
}

// Count returns the number of selected IDs.
func (s Selection) Count() int {
	return len(s.ids)
}

// CountIn returns how many of the given creators are selected. Selection
// membership is independent of filtering, so a selected creator that falls
// out of view stays selected.
func (s Selection) CountIn(creators []schema.NormalizedCreator) int {
	n := 0
	for _, c := range creators {
		if s.ids[c.ID] {
			n++
		}
	}
	return n
}

// IDs returns the selected IDs in no particular order.
func (s Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}

func (s Selection) clone() Selection {
	next := Selection{ids: make(map[string]bool, len(s.ids))}
	for id := range s.ids {
		next.ids[id] = true
	}
	return next
}

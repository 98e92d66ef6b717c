package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggle(t *testing.T) {
	s := NewSelection()
	assert.Equal(t, 0, s.Count(), "fresh selection is empty")

	s2 := s.Toggle("a")
	assert.True(t, s2.Has("a"), "toggle adds an absent ID")
	assert.Equal(t, 1, s2.Count())
	assert.False(t, s.Has("a"), "original snapshot is untouched")

	s3 := s2.Toggle("a")
	assert.False(t, s3.Has("a"), "toggle removes a present ID")
	assert.Equal(t, 0, s3.Count(), "double toggle is the identity")
	assert.True(t, s2.Has("a"), "intermediate snapshot is untouched")
}

func TestSelectionClear(t *testing.T) {
	s := NewSelectionFromIDs([]string{"a", "b", "c"})
	assert.Equal(t, 3, s.Count())

	cleared := s.Clear()
	assert.Equal(t, 0, cleared.Count(), "clear empties the selection")
	assert.Equal(t, 3, s.Count(), "clear does not mutate the receiver")
}

func TestSelectionCountIn(t *testing.T) {
	creators := fixtureCreators()
	s := NewSelectionFromIDs([]string{"nano-1", "mega-1", "gone-from-view"})

	assert.Equal(t, 3, s.Count(), "selection keeps IDs that are not in the view")
	assert.Equal(t, 2, s.CountIn(creators), "CountIn intersects with the view")
	assert.Equal(t, 0, s.CountIn(nil), "empty view intersects to zero")
}

func TestSelectionIDs(t *testing.T) {
	s := NewSelectionFromIDs([]string{"a", "b"})
	got := s.IDs()
	assert.ElementsMatch(t, []string{"a", "b"}, got, "IDs returns every selected ID")
}

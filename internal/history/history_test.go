package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outliner/internal/outline"
)

func snapshot(title string) outline.Outline {
	return outline.Outline{
		Title:    title,
		Sections: []outline.Section{{ID: "section-0", Level: 1, Title: title + " body"}},
	}
}

func titles(h *History) []string {
	var out []string
	for _, e := range h.Entries() {
		out = append(out, e.Title)
	}
	return out
}

func TestCommitAfterUndoDiscardsFuture(t *testing.T) {
	a, b, c := snapshot("A"), snapshot("B"), snapshot("C")
	h := New(a)
	assert.Equal(t, 0, h.Cursor())

	h.Commit(b)
	assert.Equal(t, []string{"A", "B"}, titles(h))
	assert.Equal(t, 1, h.Cursor())

	got, moved := h.Undo()
	assert.True(t, moved)
	assert.Equal(t, a, got)
	assert.Equal(t, 0, h.Cursor())

	h.Commit(c)
	assert.Equal(t, []string{"A", "C"}, titles(h))
	assert.Equal(t, 1, h.Cursor())
	assert.False(t, h.CanRedo())
}

func TestResetToInitialKeepsEntries(t *testing.T) {
	h := New(snapshot("A"))
	h.Commit(snapshot("B"))
	h.Commit(snapshot("C"))
	require.Equal(t, 2, h.Cursor())

	got := h.ResetToInitial()

	assert.Equal(t, "A", got.Title)
	assert.Equal(t, 0, h.Cursor())
	assert.Equal(t, "A", h.Current().Title)
	assert.Equal(t, []string{"A", "B", "C"}, titles(h))

	next, moved := h.Redo()
	assert.True(t, moved)
	assert.Equal(t, "B", next.Title)
}

func TestBoundsAreNoOps(t *testing.T) {
	h := New(snapshot("A"))

	got, moved := h.Undo()
	assert.False(t, moved)
	assert.Equal(t, "A", got.Title)

	got, moved = h.Redo()
	assert.False(t, moved)
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, 0, h.Cursor())
	assert.Equal(t, 1, h.Len())
}

func TestSnapshotsAreIsolated(t *testing.T) {
	a := snapshot("A")
	h := New(a)
	a.Sections[0].Title = "mutated"

	cur := h.Current()
	assert.Equal(t, "A body", cur.Sections[0].Title)

	cur.Sections[0].Title = "mutated again"
	assert.Equal(t, "A body", h.Current().Sections[0].Title)
}

func TestRestore(t *testing.T) {
	_, err := Restore(nil, 0)
	assert.ErrorIs(t, err, ErrEmpty)

	h, err := Restore([]outline.Outline{snapshot("A"), snapshot("B")}, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Cursor())
	assert.True(t, h.CanUndo())

	h, err = Restore([]outline.Outline{snapshot("A")}, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Cursor())
}

// Package history keeps a linear undo/redo sequence of outline snapshots.
package history

import (
	"errors"

	"outliner/internal/outline"
)

// ErrEmpty is returned when restoring a history with no entries.
var ErrEmpty = errors.New("history has no entries")

// History is an ordered list of immutable snapshots and a cursor. Entries
// after the cursor are the redoable ones. It is not safe for concurrent
// use; a host with several callers must serialize access.
type History struct {
	entries []outline.Outline
	cursor  int
}

// New starts a history whose only entry is initial.
func New(initial outline.Outline) *History {
	return &History{entries: []outline.Outline{initial.Clone()}}
}

// Restore rebuilds a history from stored entries and cursor. The cursor is
// clamped into range.
func Restore(entries []outline.Outline, cursor int) (*History, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	h := &History{entries: make([]outline.Outline, len(entries))}
	for i, e := range entries {
		h.entries[i] = e.Clone()
	}
	h.cursor = min(max(cursor, 0), len(entries)-1)
	return h, nil
}

// Commit drops every redoable entry, appends entry and moves the cursor
// onto it. Once an edit follows an undo the abandoned future is gone.
func (h *History) Commit(entry outline.Outline) {
	h.entries = append(h.entries[:h.cursor+1], entry.Clone())
	h.cursor = len(h.entries) - 1
}

// Undo steps back one entry. At the first entry it does nothing and
// reports false.
func (h *History) Undo() (outline.Outline, bool) {
	if !h.CanUndo() {
		return h.Current(), false
	}
	h.cursor--
	return h.Current(), true
}

// Redo steps forward one entry. At the last entry it does nothing and
// reports false.
func (h *History) Redo() (outline.Outline, bool) {
	if !h.CanRedo() {
		return h.Current(), false
	}
	h.cursor++
	return h.Current(), true
}

// ResetToInitial moves the cursor to the first entry without truncating,
// so the later entries stay reachable through Redo.
func (h *History) ResetToInitial() outline.Outline {
	h.cursor = 0
	return h.Current()
}

func (h *History) Current() outline.Outline {
	return h.entries[h.cursor].Clone()
}

func (h *History) CanUndo() bool { return h.cursor > 0 }

func (h *History) CanRedo() bool { return h.cursor < len(h.entries)-1 }

func (h *History) Cursor() int { return h.cursor }

func (h *History) Len() int { return len(h.entries) }

// Entries returns copies of all snapshots in order.
func (h *History) Entries() []outline.Outline {
	out := make([]outline.Outline, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Clone()
	}
	return out
}

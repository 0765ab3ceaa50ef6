// Package editor switches an outline between its structured views and a
// raw-text edit buffer, committing every saved edit to the history.
package editor

import (
	"errors"
	"fmt"
	"strings"

	"outliner/internal/history"
	"outliner/internal/outline"
)

var (
	// ErrNoOutline means the editor was opened without an outline. Callers
	// send the user back to generation instead of recovering inline.
	ErrNoOutline = errors.New("editor: no outline to edit")
	// ErrEditing is returned by history moves and structured edits while
	// the raw buffer is being edited; save or cancel first.
	ErrEditing = errors.New("editor: raw edit in progress")
	// ErrNotEditing is returned by buffer operations outside edit mode.
	ErrNotEditing = errors.New("editor: not in edit mode")
)

// ViewMode only affects display, never edit state.
type ViewMode int

const (
	// ViewBlog shows headings with their briefs.
	ViewBlog ViewMode = iota
	// ViewTree shows one indented, level-tagged line per section.
	ViewTree
	// ViewMarkdown shows canonical markdown headings.
	ViewMarkdown
)

var viewNames = map[ViewMode]string{
	ViewBlog:     "blog",
	ViewTree:     "tree",
	ViewMarkdown: "markdown",
}

func (v ViewMode) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("ViewMode(%d)", int(v))
}

func ParseViewMode(name string) (ViewMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, n := range viewNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown view mode: %q", name)
}

// Controller owns the history of one outline and its raw-text buffer.
type Controller struct {
	history  *history.History
	format   outline.Format
	buffer   string
	original string
	editing  bool
	view     ViewMode
}

// New opens an editor over h. raw is the generation output the outline
// came from; while h still holds only its first entry the buffer starts as
// that text in its detected format, otherwise the buffer is the annotated
// form of the current outline.
func New(h *history.History, raw string) (*Controller, error) {
	if h == nil || h.Len() == 0 {
		return nil, ErrNoOutline
	}
	c := &Controller{history: h, view: ViewBlog}
	if strings.TrimSpace(raw) != "" && h.Len() == 1 {
		c.buffer = raw
		c.format = outline.DetectFormat(raw)
		return c, nil
	}
	c.syncBuffer()
	return c, nil
}

func (c *Controller) syncBuffer() {
	c.format = outline.AnnotatedHeading
	c.buffer = outline.Serialize(c.history.Current(), c.format)
}

func (c *Controller) Current() outline.Outline { return c.history.Current() }

func (c *Controller) History() *history.History { return c.history }

func (c *Controller) Format() outline.Format { return c.format }

func (c *Controller) Buffer() string { return c.buffer }

func (c *Controller) Editing() bool { return c.editing }

func (c *Controller) View() ViewMode { return c.view }

func (c *Controller) SetView(v ViewMode) { c.view = v }

// BeginEdit enters raw edit mode and freezes the buffer for Cancel.
// Calling it while already editing keeps the first frozen copy.
func (c *Controller) BeginEdit() {
	if c.editing {
		return
	}
	c.original = c.buffer
	c.editing = true
}

func (c *Controller) SetBuffer(text string) error {
	if !c.editing {
		return ErrNotEditing
	}
	c.buffer = text
	return nil
}

// Save parses the buffer with the active format, commits the result and
// leaves edit mode. A listing buffer that yields no sections is committed
// as the fallback outline, as a fresh generation result would be.
func (c *Controller) Save() (outline.Outline, error) {
	if !c.editing {
		return outline.Outline{}, ErrNotEditing
	}
	title := c.history.Current().Title
	var next outline.Outline
	if c.format == outline.GeneratedListing {
		next, _ = outline.FromGenerated(c.buffer, title)
	} else {
		next = outline.Parse(c.buffer, c.format, title)
	}
	c.history.Commit(next)
	c.editing = false
	c.original = ""
	c.syncBuffer()
	return next, nil
}

// Cancel restores the frozen buffer and leaves edit mode without touching
// the history.
func (c *Controller) Cancel() error {
	if !c.editing {
		return ErrNotEditing
	}
	c.buffer = c.original
	c.original = ""
	c.editing = false
	return nil
}

func (c *Controller) Undo() (bool, error) {
	if c.editing {
		return false, ErrEditing
	}
	_, moved := c.history.Undo()
	if moved {
		c.syncBuffer()
	}
	return moved, nil
}

func (c *Controller) Redo() (bool, error) {
	if c.editing {
		return false, ErrEditing
	}
	_, moved := c.history.Redo()
	if moved {
		c.syncBuffer()
	}
	return moved, nil
}

func (c *Controller) Reset() error {
	if c.editing {
		return ErrEditing
	}
	c.history.ResetToInitial()
	c.syncBuffer()
	return nil
}

// UpdateTitle commits a copy of the current outline with a new title.
func (c *Controller) UpdateTitle(title string) error {
	if c.editing {
		return ErrEditing
	}
	title = strings.TrimSpace(title)
	if err := checkTitle(title); err != nil {
		return err
	}
	c.history.Commit(c.history.Current().WithTitle(title))
	c.syncBuffer()
	return nil
}

// UpdateSection replaces one section's title and brief as a new snapshot.
// It reports false when no section has the id.
func (c *Controller) UpdateSection(id, title, brief string) (bool, error) {
	if c.editing {
		return false, ErrEditing
	}
	title = strings.TrimSpace(title)
	if err := checkTitle(title); err != nil {
		return false, err
	}
	next, ok := c.history.Current().WithSection(id, title, brief)
	if !ok {
		return false, nil
	}
	c.history.Commit(next)
	c.syncBuffer()
	return true, nil
}

func checkTitle(title string) error {
	if title == "" || strings.ContainsAny(title, "\r\n") {
		return fmt.Errorf("title must be a non-empty single line")
	}
	return nil
}

// Display is the text of the active view.
func (c *Controller) Display() string {
	cur := c.history.Current()
	switch c.view {
	case ViewTree:
		return outline.RenderTree(cur)
	case ViewMarkdown:
		return outline.Serialize(cur, outline.CanonicalMarkdown)
	default:
		return outline.RenderBlog(cur)
	}
}

// ClipboardText is what a copy action places on the clipboard: canonical
// markdown in the markdown view, the raw buffer in every other view.
func (c *Controller) ClipboardText() string {
	if c.view == ViewMarkdown {
		return outline.Serialize(c.history.Current(), outline.CanonicalMarkdown)
	}
	return c.buffer
}

// Export returns the file name and canonical markdown payload for a
// download.
func (c *Controller) Export() (filename, content string) {
	cur := c.history.Current()
	return outline.ExportFilename(cur.Title), outline.Serialize(cur, outline.CanonicalMarkdown)
}

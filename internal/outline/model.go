package outline

import (
	"fmt"
	"strings"
)

// MaxLevel is the deepest heading level the text formats can express.
const MaxLevel = 5

// Section is one heading-level node of an outline.
type Section struct {
	ID    string `json:"id"`
	Level int    `json:"level"`
	Title string `json:"title"`
	Brief string `json:"brief,omitempty"`
}

// Outline is a document title plus its sections in document order.
// Level values are not checked against parent/child nesting.
type Outline struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Empty reports whether the outline has no sections. Parsers signal an
// empty result this way instead of returning an error.
func (o Outline) Empty() bool {
	return len(o.Sections) == 0
}

// Clone returns a deep copy so snapshots never share a section slice.
func (o Outline) Clone() Outline {
	cp := Outline{Title: o.Title}
	if o.Sections != nil {
		cp.Sections = append([]Section(nil), o.Sections...)
	}
	return cp
}

// SectionByID looks a section up by its id.
func (o Outline) SectionByID(id string) (Section, bool) {
	for _, s := range o.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// WithTitle returns a copy of o carrying a new title.
func (o Outline) WithTitle(title string) Outline {
	cp := o.Clone()
	cp.Title = title
	return cp
}

// WithSection returns a copy of o where the section with the given id has
// its title and brief replaced. The second return is false when no section
// has that id.
func (o Outline) WithSection(id, title, brief string) (Outline, bool) {
	cp := o.Clone()
	for i := range cp.Sections {
		if cp.Sections[i].ID != id {
			continue
		}
		cp.Sections[i].Title = title
		cp.Sections[i].Brief = brief
		return cp, true
	}
	return o, false
}

// Validate checks the invariants every stored snapshot must hold.
func (o Outline) Validate() error {
	seen := make(map[string]bool, len(o.Sections))
	for i, s := range o.Sections {
		if s.ID == "" {
			return fmt.Errorf("section %d: id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate section id: %s", s.ID)
		}
		seen[s.ID] = true
		if s.Level < 1 || s.Level > MaxLevel {
			return fmt.Errorf("section %s: level must be between 1 and %d, got %d", s.ID, MaxLevel, s.Level)
		}
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("section %s: title is required", s.ID)
		}
		if strings.ContainsAny(s.Title, "\r\n") {
			return fmt.Errorf("section %s: title must be a single line", s.ID)
		}
	}
	return nil
}

func sectionID(n int) string {
	return fmt.Sprintf("section-%d", n)
}

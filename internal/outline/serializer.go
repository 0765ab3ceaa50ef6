package outline

import (
	"regexp"
	"strconv"
	"strings"
)

// Serialize writes o in the given format. Output is deterministic and no
// section is ever dropped. Briefs are not written by either heading format.
//
// GeneratedListing has no writer of its own; it is written as
// CanonicalMarkdown, whose heading lines the listing reader also accepts.
func Serialize(o Outline, f Format) string {
	switch f {
	case AnnotatedHeading:
		return writeHeadings(o, true)
	default:
		return writeHeadings(o, false)
	}
}

func writeHeadings(o Outline, annotated bool) string {
	var sb strings.Builder
	sb.WriteString(headingPrefix(1, annotated) + o.Title + "\n\n")
	for _, s := range o.Sections {
		sb.WriteString(headingPrefix(s.Level, annotated) + s.Title + "\n")
	}
	return sb.String()
}

// RenderBlog writes the blog view: every heading followed by its brief as a
// paragraph. This is the only text form that carries briefs.
func RenderBlog(o Outline) string {
	var sb strings.Builder
	sb.WriteString("# " + o.Title + "\n\n")
	for _, s := range o.Sections {
		sb.WriteString(strings.Repeat("#", max(1, s.Level)) + " " + s.Title + "\n\n")
		if brief := strings.TrimSpace(s.Brief); brief != "" {
			sb.WriteString(brief + "\n\n")
		}
	}
	return sb.String()
}

// RenderTree writes the tree view, one indented line per section.
func RenderTree(o Outline) string {
	var sb strings.Builder
	sb.WriteString(o.Title + "\n")
	for _, s := range o.Sections {
		sb.WriteString(TreeIndent(s.Level) + "- " + TreeLabel(s) + "\n")
	}
	return sb.String()
}

// TreeIndent is the indentation of a section line in the tree view.
func TreeIndent(level int) string {
	return strings.Repeat("  ", max(0, level-1))
}

func TreeLabel(s Section) string {
	return "[H" + strconv.Itoa(s.Level) + "] " + s.Title
}

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// ExportFilename derives the markdown export file name from the title:
// lowercased, whitespace runs replaced with "-", ".md" appended.
func ExportFilename(title string) string {
	name := strings.ToLower(whitespaceRunRe.ReplaceAllString(strings.TrimSpace(title), "-"))
	name = strings.ReplaceAll(name, "/", "-")
	if name == "" {
		name = "untitled"
	}
	return name + ".md"
}

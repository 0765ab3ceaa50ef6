package outline

import (
	"fmt"
	"regexp"
	"strings"
)

// Format is one of the textual encodings an outline can be read from or
// written to.
type Format int

const (
	// GeneratedListing is raw generation output: roman/letter/number
	// markers, short markdown headings and free lines.
	GeneratedListing Format = iota
	// AnnotatedHeading is the editable text form, "## H2: Title".
	AnnotatedHeading
	// CanonicalMarkdown is plain "## Title" markdown.
	CanonicalMarkdown
)

var formatNames = map[Format]string{
	GeneratedListing:  "listing",
	AnnotatedHeading:  "annotated",
	CanonicalMarkdown: "markdown",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a format name as printed by String back to a Format.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown outline format: %q", name)
}

var annotatedLineRe = regexp.MustCompile(`^#{1,5} H[1-5]: `)

// DetectFormat guesses the encoding of raw text. Text carrying any
// annotated heading line is AnnotatedHeading, anything else is treated as
// GeneratedListing, which accepts every line shape the generator emits.
func DetectFormat(raw string) Format {
	for _, line := range strings.Split(raw, "\n") {
		if annotatedLineRe.MatchString(strings.TrimSpace(line)) {
			return AnnotatedHeading
		}
	}
	return GeneratedListing
}

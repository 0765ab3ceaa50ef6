package outline

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	listingHeadingRe = regexp.MustCompile(`^(#{1,3}) `)
	headingTokenRe   = regexp.MustCompile(`^H[1-6]:\s*`)
	romanMarkerRe    = regexp.MustCompile(`^[IVX]+\.\s`)
	letterMarkerRe   = regexp.MustCompile(`^[A-Z]\.\s`)
	numberMarkerRe   = regexp.MustCompile(`^\d+\.\s`)
)

// Lines starting with these prefixes are generator metadata, not headings.
var listingSkipPrefixes = []string{"Keywords:", "Content Brief:"}

// minFallbackRunes is the length a free line must exceed to become a section.
const minFallbackRunes = 3

// Parse reads raw text in the given format into an outline. title is the
// externally known title: GeneratedListing always uses it, the heading
// formats keep it when the text carries no title line.
//
// Parse never fails. Lines matching no rule are dropped and an outline with
// no sections is a valid result; callers check Empty. Section ids are
// numbered per call and are not stable across parses of edited text.
func Parse(raw string, f Format, title string) Outline {
	lines := splitLines(raw)
	switch f {
	case GeneratedListing:
		return parseListing(lines, title)
	case AnnotatedHeading:
		return parseHeadings(lines, title, annotatedRules)
	case CanonicalMarkdown:
		return parseHeadings(lines, title, markdownRules)
	default:
		return Outline{Title: title, Sections: []Section{}}
	}
}

func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	out := make([]string, 0, strings.Count(raw, "\n")+1)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

type sectionBuilder struct {
	sections []Section
}

func (b *sectionBuilder) add(level int, title string) {
	title = strings.TrimSpace(title)
	if title == "" || level < 1 {
		return
	}
	b.sections = append(b.sections, Section{
		ID:    sectionID(len(b.sections)),
		Level: level,
		Title: title,
	})
}

func (b *sectionBuilder) outline(title string) Outline {
	if b.sections == nil {
		b.sections = []Section{}
	}
	return Outline{Title: title, Sections: b.sections}
}

// parseListing classifies every line on its own by the first matching rule:
// short markdown heading, roman marker, letter marker, number marker, then
// any other line long enough to stand as a level-1 section.
func parseListing(lines []string, title string) Outline {
	var b sectionBuilder
	for _, line := range lines {
		if m := listingHeadingRe.FindStringSubmatch(line); m != nil {
			rest := strings.TrimSpace(line[len(m[0]):])
			b.add(len(m[1]), headingTokenRe.ReplaceAllString(rest, ""))
			continue
		}
		if loc := romanMarkerRe.FindStringIndex(line); loc != nil {
			b.add(1, line[loc[1]:])
			continue
		}
		if loc := letterMarkerRe.FindStringIndex(line); loc != nil {
			b.add(2, line[loc[1]:])
			continue
		}
		if loc := numberMarkerRe.FindStringIndex(line); loc != nil {
			b.add(3, line[loc[1]:])
			continue
		}
		if utf8.RuneCountInString(line) > minFallbackRunes && !hasAnyPrefix(line, listingSkipPrefixes) {
			b.add(1, line)
		}
	}
	return b.outline(title)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

type headingRule struct {
	level  int
	prefix string
}

// Both rule sets run from level 5 down to 1 so the longest prefix wins.
var (
	annotatedRules = buildHeadingRules(true)
	markdownRules  = buildHeadingRules(false)
)

func buildHeadingRules(annotated bool) []headingRule {
	rules := make([]headingRule, 0, MaxLevel)
	for level := MaxLevel; level >= 1; level-- {
		rules = append(rules, headingRule{level: level, prefix: headingPrefix(level, annotated)})
	}
	return rules
}

func headingPrefix(level int, annotated bool) string {
	prefix := strings.Repeat("#", level) + " "
	if annotated {
		prefix += "H" + strconv.Itoa(level) + ": "
	}
	return prefix
}

// parseHeadings reads the heading formats. The first non-empty line is the
// document title when it carries the level-1 prefix; a bare prefix is an
// empty title. Otherwise title is kept and that line is read as a section
// like the rest.
func parseHeadings(lines []string, title string, rules []headingRule) Outline {
	titlePrefix := rules[len(rules)-1].prefix
	if len(lines) > 0 {
		switch first := lines[0]; {
		case first == strings.TrimSpace(titlePrefix):
			title = ""
			lines = lines[1:]
		case strings.HasPrefix(first, titlePrefix):
			if t := strings.TrimSpace(first[len(titlePrefix):]); t != "" {
				title = t
				lines = lines[1:]
			}
		}
	}

	var b sectionBuilder
	for _, line := range lines {
		for _, r := range rules {
			if strings.HasPrefix(line, r.prefix) {
				b.add(r.level, line[len(r.prefix):])
				break
			}
		}
	}
	return b.outline(title)
}

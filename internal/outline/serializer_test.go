package outline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
)

func demoOutline() Outline {
	return Outline{
		Title: "Demo",
		Sections: []Section{
			{ID: "a", Level: 1, Title: "Part One", Brief: "Opening thoughts."},
			{ID: "b", Level: 2, Title: "Sub A"},
		},
	}
}

func TestSerialize_CanonicalMarkdown(t *testing.T) {
	assert.Equal(t, "# Demo\n\n# Part One\n## Sub A\n", Serialize(demoOutline(), CanonicalMarkdown))
}

func TestSerialize_Annotated(t *testing.T) {
	assert.Equal(t, "# H1: Demo\n\n# H1: Part One\n## H2: Sub A\n", Serialize(demoOutline(), AnnotatedHeading))
}

func TestSerialize_ListingWritesCanonicalMarkdown(t *testing.T) {
	assert.Equal(t, Serialize(demoOutline(), CanonicalMarkdown), Serialize(demoOutline(), GeneratedListing))
}

func TestSerialize_Deterministic(t *testing.T) {
	for _, f := range []Format{GeneratedListing, AnnotatedHeading, CanonicalMarkdown} {
		assert.Equal(t, Serialize(demoOutline(), f), Serialize(demoOutline(), f), f.String())
	}
}

// The text formats carry only levels and titles: a round trip keeps those
// and regenerates ids while dropping briefs.
func TestSerialize_AnnotatedRoundTripDropsIDsAndBriefs(t *testing.T) {
	in := Outline{
		Title: "Round Trip",
		Sections: []Section{
			{ID: "intro", Level: 1, Title: "Intro", Brief: "lost on purpose"},
			{ID: "why", Level: 2, Title: "Why"},
			{ID: "deep", Level: 5, Title: "Deep detail"},
			{ID: "back", Level: 1, Title: "Back to top"},
		},
	}

	out := Parse(Serialize(in, AnnotatedHeading), AnnotatedHeading, "ignored")

	assert.Equal(t, in.Title, out.Title)
	assert.Equal(t, levelTitles(in), levelTitles(out))
	assert.Equal(t, "section-0", out.Sections[0].ID)
	assert.Empty(t, out.Sections[0].Brief)
}

func TestSerialize_RoundTripEmptyTitle(t *testing.T) {
	in := Outline{Title: "", Sections: []Section{{ID: "a", Level: 1, Title: "Only"}}}

	for _, f := range []Format{AnnotatedHeading, CanonicalMarkdown} {
		out := Parse(Serialize(in, f), f, "caller title")
		assert.Equal(t, "", out.Title, f.String())
		assert.Equal(t, levelTitles(in), levelTitles(out), f.String())
	}
}

func TestSerialize_AnnotatedRoundTripEveryLevel(t *testing.T) {
	in := Outline{Title: "Levels", Sections: []Section{}}
	for level := 1; level <= MaxLevel; level++ {
		in.Sections = append(in.Sections, Section{ID: sectionID(level), Level: level, Title: "Level " + sectionID(level)})
	}

	out := Parse(Serialize(in, AnnotatedHeading), AnnotatedHeading, "")
	assert.Equal(t, levelTitles(in), levelTitles(out))
}

func TestSerialize_CanonicalRoundTrip(t *testing.T) {
	out := Parse(Serialize(demoOutline(), CanonicalMarkdown), CanonicalMarkdown, "")
	assert.Equal(t, "Demo", out.Title)
	assert.Equal(t, levelTitles(demoOutline()), levelTitles(out))
}

func TestSerialize_CanonicalIsValidMarkdownHeadings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, goldmark.New().Convert([]byte(Serialize(demoOutline(), CanonicalMarkdown)), &buf))

	html := buf.String()
	assert.Contains(t, html, "<h1>Demo</h1>")
	assert.Contains(t, html, "<h1>Part One</h1>")
	assert.Contains(t, html, "<h2>Sub A</h2>")
}

func TestRenderBlog_IncludesBriefs(t *testing.T) {
	assert.Equal(t, "# Demo\n\n# Part One\n\nOpening thoughts.\n\n## Sub A\n\n", RenderBlog(demoOutline()))
}

func TestRenderTree(t *testing.T) {
	assert.Equal(t, "Demo\n- [H1] Part One\n  - [H2] Sub A\n", RenderTree(demoOutline()))
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"SEO Basics", "seo-basics.md"},
		{"  Many   spaces\there  ", "many-spaces-here.md"},
		{"Input/Output Guide", "input-output-guide.md"},
		{"   ", "untitled.md"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExportFilename(tt.title), tt.title)
	}
}

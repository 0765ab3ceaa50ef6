package outline

// FallbackSectionTitle titles the single section of a fallback outline.
const FallbackSectionTitle = "Generated Content"

// FromGenerated parses raw generation output. When nothing usable is found
// it returns the fallback outline, one section holding the raw text as its
// brief, and reports fallback as true so the editor always has something
// to show.
func FromGenerated(raw, title string) (o Outline, fallback bool) {
	o = Parse(raw, GeneratedListing, title)
	if !o.Empty() {
		return o, false
	}
	return Fallback(raw, title), true
}

func Fallback(raw, title string) Outline {
	return Outline{
		Title: title,
		Sections: []Section{{
			ID:    sectionID(0),
			Level: 1,
			Title: FallbackSectionTitle,
			Brief: raw,
		}},
	}
}

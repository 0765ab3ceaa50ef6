package generation

import (
	"fmt"
	"strings"
)

// PromptBuilder constructs the outline prompt sent to LLM providers.
type PromptBuilder struct{}

func (pb *PromptBuilder) BuildOutlinePrompt(req Request) string {
	var sb strings.Builder
	sb.WriteString("Role: Senior content strategist and SEO editor. Task: Write a blog post outline.\n\n")
	fmt.Fprintf(&sb, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&sb, "Audience: %s\n", req.Audience)
	fmt.Fprintf(&sb, "Tone: %s\n", req.Tone)

	sb.WriteString("\n**FORMAT** (plain text, no markdown, no code fences):\n")
	sb.WriteString("- Main sections use Roman numerals: `I. Introduction`\n")
	sb.WriteString("- Subsections use capital letters: `A. Why it matters`\n")
	sb.WriteString("- Points under a subsection use numbers: `1. Keyword research`\n")
	if req.WantsBriefs() {
		sb.WriteString("- After each main section add one line starting with `Content Brief:` summarizing what it covers.\n")
	}
	if req.WantsIntro() {
		sb.WriteString("- Start the outline with an `I. Introduction` section whose first point is a full intro paragraph.\n")
	}
	sb.WriteString("- End with one line `Keywords:` followed by 5-8 comma separated SEO keywords.\n")
	sb.WriteString("\nReturn only the outline.\n")
	return sb.String()
}

package generation

import "strings"

func cleanMarkdownOutput(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```markdown") {
		text = strings.TrimPrefix(text, "```markdown")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

func resultFromText(req Request, text string) (*Result, error) {
	text = cleanMarkdownOutput(text)
	if text == "" {
		return nil, ErrInvalidResponse
	}
	return &Result{GeneratedContent: text, Topic: req.Topic}, nil
}

// Package render turns outline views into terminal output and HTML.
package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"

	"outliner/internal/outline"
)

const defaultWrap = 80

// Blog renders the blog view for a terminal.
func Blog(o outline.Outline, dark bool, width int) (string, error) {
	if width <= 0 {
		width = defaultWrap
	}
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render(outline.RenderBlog(o))
}

// HTML renders the blog view as a standalone HTML page.
func HTML(o outline.Outline) (string, error) {
	var body bytes.Buffer
	if err := goldmark.New().Convert([]byte(outline.RenderBlog(o)), &body); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>" + html.EscapeString(o.Title) + "</title>\n")
	sb.WriteString("</head>\n<body>\n")
	sb.Write(body.Bytes())
	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

var (
	treeTitleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	treeLevelStyles = []lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

// Tree renders the tree view with one color per heading level.
func Tree(o outline.Outline) string {
	var sb strings.Builder
	sb.WriteString(treeTitleStyle.Render(o.Title) + "\n")
	for _, s := range o.Sections {
		style := treeLevelStyles[min(max(s.Level, 1), len(treeLevelStyles))-1]
		sb.WriteString(outline.TreeIndent(s.Level) + "- " + style.Render(outline.TreeLabel(s)) + "\n")
	}
	return sb.String()
}

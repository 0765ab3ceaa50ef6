package generation

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidResponse means the generation service answered without any
// generated content.
var ErrInvalidResponse = errors.New("invalid generation response: missing generated_content")

// Request carries the generation form fields.
type Request struct {
	Topic      string `json:"topic" validate:"required"`
	OutputType string `json:"output_type" validate:"required,oneof=outline outline-brief outline-brief-intro"`
	Audience   string `json:"audience" validate:"required,oneof=general tech-savvy marketing students professionals"`
	Tone       string `json:"tone" validate:"required,oneof=friendly formal technical persuasive conversational"`
}

// Result is the payload handed to the outline parser.
type Result struct {
	GeneratedContent string `json:"generated_content"`
	Topic            string `json:"topic"`
}

// Title is the outline title for a result: the topic echoed by the service,
// or the keyword the user asked for when the service left it out.
func (r Result) Title(keyword string) string {
	if t := strings.TrimSpace(r.Topic); t != "" {
		return t
	}
	return strings.TrimSpace(keyword)
}

// Generator produces outline text for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

// Suggester proposes topics for a partial query.
type Suggester interface {
	Suggest(ctx context.Context, query string) ([]string, error)
}

type Option struct {
	Value string
	Label string
}

var OutputTypes = []Option{
	{Value: "outline", Label: "Outline Only"},
	{Value: "outline-brief", Label: "Outline + Content Brief"},
	{Value: "outline-brief-intro", Label: "Outline + Brief + Intro Paragraph"},
}

var Audiences = []Option{
	{Value: "general", Label: "General"},
	{Value: "tech-savvy", Label: "Tech-savvy"},
	{Value: "marketing", Label: "Marketing"},
	{Value: "students", Label: "Students"},
	{Value: "professionals", Label: "Professionals"},
}

var Tones = []Option{
	{Value: "friendly", Label: "Friendly"},
	{Value: "formal", Label: "Formal"},
	{Value: "technical", Label: "Technical"},
	{Value: "persuasive", Label: "Persuasive"},
	{Value: "conversational", Label: "Conversational"},
}

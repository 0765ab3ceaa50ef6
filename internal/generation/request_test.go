package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Validate(t *testing.T) {
	require.NoError(t, validRequest().Validate())

	err := Request{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Topic is required")
	assert.Contains(t, err.Error(), "Tone is required")

	req := validRequest()
	req.Tone = "sarcastic"
	err = req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Tone has unsupported value "sarcastic"`)
}

func TestRequest_WithDefaults(t *testing.T) {
	d := Defaults{OutputType: "outline-brief", Audience: "students", Tone: "formal"}

	got := Request{Topic: "  Go  ", Tone: "technical"}.WithDefaults(d)

	assert.Equal(t, Request{Topic: "Go", OutputType: "outline-brief", Audience: "students", Tone: "technical"}, got)
	assert.True(t, got.WantsBriefs())
	assert.False(t, got.WantsIntro())
}

func TestResult_Title(t *testing.T) {
	assert.Equal(t, "Echoed", Result{Topic: " Echoed "}.Title("asked"))
	assert.Equal(t, "asked", Result{}.Title(" asked "))
}

func TestSuggestKeywords(t *testing.T) {
	assert.Nil(t, SuggestKeywords("m"))
	assert.Equal(t, []string{"Market analysis", "Content marketing", "Email marketing", "Market research"}, SuggestKeywords("MARKET"))
	assert.Len(t, SuggestKeywords("in"), 5)
	assert.Empty(t, SuggestKeywords("zzz"))
}

func TestTrendingTopics_ReturnsCopy(t *testing.T) {
	topics := TrendingTopics()
	require.Len(t, topics, 5)
	topics[0] = "changed"
	assert.Equal(t, "AI & Machine Learning", TrendingTopics()[0])
}

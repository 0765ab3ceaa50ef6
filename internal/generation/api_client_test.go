package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() Request {
	return Request{Topic: "SEO Basics", OutputType: "outline", Audience: "general", Tone: "friendly"}
}

func TestAPIClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate-outline", r.URL.Path)

		var got Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, validRequest(), got)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"generated_content": "I. Introduction to SEO",
			"topic":             "SEO Basics",
		})
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL+"/api/", time.Second)
	res, err := c.Generate(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "I. Introduction to SEO", res.GeneratedContent)
	assert.Equal(t, "SEO Basics", res.Title("ignored"))
}

func TestAPIClient_GenerateMissingContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"topic":"SEO Basics"}`))
	}))
	defer srv.Close()

	_, err := NewAPIClient(srv.URL, time.Second).Generate(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestAPIClient_GenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewAPIClient(srv.URL, time.Second).Generate(context.Background(), validRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestAPIClient_Suggest(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/suggest-topics", r.URL.Path)
		assert.Equal(t, "seo tips", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(`{"suggestions":["SEO tips for beginners","SEO tips 2024"]}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL, time.Second)

	got, err := c.Suggest(context.Background(), "se")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, calls)

	got, err = c.Suggest(context.Background(), "seo tips")
	require.NoError(t, err)
	assert.Equal(t, []string{"SEO tips for beginners", "SEO tips 2024"}, got)
	assert.Equal(t, 1, calls)
}

func TestAPIClient_SuggestNullList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	got, err := NewAPIClient(srv.URL, time.Second).Suggest(context.Background(), "cloud")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

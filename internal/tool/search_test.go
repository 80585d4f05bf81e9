package tool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchServer(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
}

func TestWebSearch_PrefersDirectAnswer(t *testing.T) {
	t.Parallel()

	server := searchServer(`{"Answer":"42","AbstractText":"ignored","RelatedTopics":[{"Text":"ignored too"}]}`)
	defer server.Close()

	search := NewWebSearch(server.Client(), server.URL)

	result, err := search.Execute(context.Background(), map[string]any{"query": "meaning of life"})

	require.NoError(t, err)
	assert.Equal(t, "42", result)
}

func TestWebSearch_FallsBackToAbstractThenTopics(t *testing.T) {
	t.Parallel()

	server := searchServer(`{"AbstractText":"Go is a programming language."}`)
	defer server.Close()

	search := NewWebSearch(server.Client(), server.URL)

	result, err := search.Execute(context.Background(), map[string]any{"query": "golang"})
	require.NoError(t, err)
	assert.Equal(t, "Go is a programming language.", result)

	topicsOnly := searchServer(`{"RelatedTopics":[{"Text":"First related topic."}]}`)
	defer topicsOnly.Close()

	search = NewWebSearch(topicsOnly.Client(), topicsOnly.URL)

	result, err = search.Execute(context.Background(), map[string]any{"query": "golang"})
	require.NoError(t, err)
	assert.Equal(t, "First related topic.", result)
}

func TestWebSearch_NoResults(t *testing.T) {
	t.Parallel()

	server := searchServer(`{}`)
	defer server.Close()

	search := NewWebSearch(server.Client(), server.URL)

	_, err := search.Execute(context.Background(), map[string]any{"query": "gibberish zzz"})

	assert.ErrorContains(t, err, "no results found")
}

func TestWebSearch_MissingQuery(t *testing.T) {
	t.Parallel()

	search := NewWebSearch(http.DefaultClient, "http://unused.invalid")

	_, err := search.Execute(context.Background(), map[string]any{})

	assert.ErrorContains(t, err, "query is required")
}

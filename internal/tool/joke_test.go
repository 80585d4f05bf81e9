package tool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJoke_ReturnsRawJoke(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/joke/Programming", r.URL.Path)
		assert.Equal(t, "single", r.URL.Query().Get("type"))
		w.Write([]byte(`{"error":false,"joke":"There are 10 types of people."}`))
	}))
	defer server.Close()

	joke := NewGetJoke(server.Client(), server.URL)

	result, err := joke.Execute(context.Background(), map[string]any{"category": "Programming"})

	require.NoError(t, err)
	// The payload collapses to the joke itself, not a JSON wrapper.
	assert.Equal(t, "There are 10 types of people.", result)
}

func TestGetJoke_DefaultsToAnyCategory(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/joke/Any", r.URL.Path)
		w.Write([]byte(`{"error":false,"joke":"A joke."}`))
	}))
	defer server.Close()

	joke := NewGetJoke(server.Client(), server.URL)

	result, err := joke.Execute(context.Background(), map[string]any{})

	require.NoError(t, err)
	assert.Equal(t, "A joke.", result)
}

func TestGetJoke_UpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":true}`))
	}))
	defer server.Close()

	joke := NewGetJoke(server.Client(), server.URL)

	_, err := joke.Execute(context.Background(), map[string]any{"category": "Pun"})

	assert.EqualError(t, err, "No joke found.")
}

func TestGetJoke_MalformedResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	joke := NewGetJoke(server.Client(), server.URL)

	_, err := joke.Execute(context.Background(), map[string]any{})

	assert.ErrorContains(t, err, "malformed upstream response")
}

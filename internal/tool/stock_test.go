package tool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStockPrice_CondensesGlobalQuote(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "GLOBAL_QUOTE", r.URL.Query().Get("function"))
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.Write([]byte(`{"Global Quote":{"01. symbol":"AAPL","02. open":"230.0","05. price":"232.47","10. change percent":"1.25%"}}`))
	}))
	defer server.Close()

	stock := NewGetStockPrice(server.Client(), "test-key", server.URL)

	result, err := stock.Execute(context.Background(), map[string]any{"symbol": "aapl"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"symbol":"AAPL","price":"232.47","change_percent":"1.25%"}`, result)
}

func TestGetStockPrice_RateLimitNote(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Note":"Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."}`))
	}))
	defer server.Close()

	stock := NewGetStockPrice(server.Client(), "test-key", server.URL)

	_, err := stock.Execute(context.Background(), map[string]any{"symbol": "AAPL"})

	assert.ErrorContains(t, err, "rate limit")
}

func TestGetStockPrice_EmptyQuote(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Global Quote":{}}`))
	}))
	defer server.Close()

	stock := NewGetStockPrice(server.Client(), "test-key", server.URL)

	_, err := stock.Execute(context.Background(), map[string]any{"symbol": "zzzz"})

	assert.EqualError(t, err, "no quote found for ZZZZ")
}

func TestGetStockPrice_MissingAPIKey(t *testing.T) {
	t.Parallel()

	stock := NewGetStockPrice(http.DefaultClient, "", "http://unused.invalid")

	_, err := stock.Execute(context.Background(), map[string]any{"symbol": "AAPL"})

	assert.EqualError(t, err, "ALPHA_VANTAGE_API_KEY is not set")
}

func TestGetStockPrice_MissingSymbol(t *testing.T) {
	t.Parallel()

	stock := NewGetStockPrice(http.DefaultClient, "test-key", "http://unused.invalid")

	_, err := stock.Execute(context.Background(), map[string]any{})

	assert.ErrorContains(t, err, "symbol is required")
}

package tool

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	provider "github.com/jmallari/gofer/internal/provider/models"
)

const defaultStockBaseURL = "https://www.alphavantage.co"

// StockRequest names the stock symbol to quote.
type StockRequest struct {
	Symbol string `mapstructure:"symbol"`
}

// Validate implements Validator.
func (r StockRequest) Validate() error {
	if r.Symbol == "" {
		return errors.New("symbol is required")
	}
	return nil
}

// StockQuote is the condensed global-quote payload.
type StockQuote struct {
	Symbol        string `json:"symbol"`
	Price         string `json:"price"`
	ChangePercent string `json:"change_percent"`
}

type alphaVantageResponse struct {
	GlobalQuote map[string]string `json:"Global Quote"`
	Note        string            `json:"Note"`
}

// NewGetStockPrice returns the stock-quote tool backed by Alpha Vantage.
func NewGetStockPrice(client *http.Client, apiKey, baseURL string) Tool {
	if baseURL == "" {
		baseURL = defaultStockBaseURL
	}

	schema := &provider.ParameterSchema{
		Type: "object",
		Properties: map[string]provider.PropertySchema{
			"symbol": {
				Type:        "string",
				Description: "The stock symbol (e.g., 'AAPL', 'GOOGL', 'MSFT')",
			},
		},
		Required: []string{"symbol"},
	}

	return NewBase(
		"get_stock_price",
		"Fetch the current stock price for a given symbol.",
		schema,
		func(ctx context.Context, req StockRequest) (StockQuote, error) {
			if apiKey == "" {
				return StockQuote{}, errors.New("ALPHA_VANTAGE_API_KEY is not set")
			}

			symbol := strings.ToUpper(req.Symbol)
			endpoint := fmt.Sprintf("%s/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
				baseURL, url.QueryEscape(symbol), url.QueryEscape(apiKey))

			var resp alphaVantageResponse
			if err := getJSON(ctx, client, endpoint, &resp); err != nil {
				return StockQuote{}, err
			}
			if resp.Note != "" {
				return StockQuote{}, errors.New(resp.Note)
			}
			if len(resp.GlobalQuote) == 0 {
				return StockQuote{}, fmt.Errorf("no quote found for %s", symbol)
			}

			return StockQuote{
				Symbol:        resp.GlobalQuote["01. symbol"],
				Price:         resp.GlobalQuote["05. price"],
				ChangePercent: resp.GlobalQuote["10. change percent"],
			}, nil
		},
	)
}

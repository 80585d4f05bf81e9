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

const defaultCurrencyBaseURL = "https://openexchangerates.org"

// CurrencyRequest describes a conversion between two currencies.
type CurrencyRequest struct {
	Amount       float64 `mapstructure:"amount"`
	FromCurrency string  `mapstructure:"from_currency"`
	ToCurrency   string  `mapstructure:"to_currency"`
}

// Validate implements Validator.
func (r CurrencyRequest) Validate() error {
	if r.FromCurrency == "" || r.ToCurrency == "" {
		return errors.New("from_currency and to_currency are required")
	}
	return nil
}

type conversionResult struct {
	Result float64 `json:"result"`
}

type exchangeRatesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// NewConvertCurrency returns the currency tool backed by openexchangerates.
// Rates are quoted against USD, so the conversion is a cross rate.
func NewConvertCurrency(client *http.Client, apiKey, baseURL string) Tool {
	if baseURL == "" {
		baseURL = defaultCurrencyBaseURL
	}

	schema := &provider.ParameterSchema{
		Type: "object",
		Properties: map[string]provider.PropertySchema{
			"amount": {
				Type:        "number",
				Description: "The amount to convert",
			},
			"from_currency": {
				Type:        "string",
				Description: "Source currency (e.g., 'USD')",
			},
			"to_currency": {
				Type:        "string",
				Description: "Target currency (e.g., 'EUR')",
			},
		},
		Required: []string{"amount", "from_currency", "to_currency"},
	}

	return NewBase(
		"convert_currency",
		"Convert an amount from one currency to another.",
		schema,
		func(ctx context.Context, req CurrencyRequest) (conversionResult, error) {
			if apiKey == "" {
				return conversionResult{}, errors.New("EXCHANGE_API_KEY is not set")
			}

			endpoint := fmt.Sprintf("%s/api/latest.json?app_id=%s", baseURL, url.QueryEscape(apiKey))
			var resp exchangeRatesResponse
			if err := getJSON(ctx, client, endpoint, &resp); err != nil {
				return conversionResult{}, err
			}

			from, okFrom := resp.Rates[strings.ToUpper(req.FromCurrency)]
			to, okTo := resp.Rates[strings.ToUpper(req.ToCurrency)]
			if !okFrom || !okTo || from == 0 {
				return conversionResult{}, errors.New("Conversion failed.")
			}

			return conversionResult{Result: req.Amount * (to / from)}, nil
		},
	)
}

package tool

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	provider "github.com/jmallari/gofer/internal/provider/models"
)

const defaultWeatherBaseURL = "http://api.weatherapi.com/v1"

// WeatherRequest names the city to look up.
type WeatherRequest struct {
	City string `mapstructure:"city"`
}

// Validate implements Validator.
func (r WeatherRequest) Validate() error {
	if r.City == "" {
		return errors.New("city is required")
	}
	return nil
}

// WeatherReport is the condensed current-conditions payload.
type WeatherReport struct {
	City         string  `json:"city"`
	TemperatureC float64 `json:"temperature_c"`
	Condition    string  `json:"condition"`
	Humidity     int     `json:"humidity"`
}

type weatherAPIResponse struct {
	Current struct {
		TempC     float64 `json:"temp_c"`
		Humidity  int     `json:"humidity"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewFetchWeather returns the current-weather tool backed by weatherapi.com.
func NewFetchWeather(client *http.Client, apiKey, baseURL string) Tool {
	if baseURL == "" {
		baseURL = defaultWeatherBaseURL
	}

	schema := &provider.ParameterSchema{
		Type: "object",
		Properties: map[string]provider.PropertySchema{
			"city": {
				Type:        "string",
				Description: "The name of the city (e.g., 'London', 'New York')",
			},
		},
		Required: []string{"city"},
	}

	return NewBase(
		"fetch_weather",
		"Fetch the current weather for a given city.",
		schema,
		func(ctx context.Context, req WeatherRequest) (WeatherReport, error) {
			if apiKey == "" {
				return WeatherReport{}, errors.New("WEATHER_API_KEY is not set")
			}

			endpoint := fmt.Sprintf("%s/current.json?key=%s&q=%s", baseURL, url.QueryEscape(apiKey), url.QueryEscape(req.City))
			var resp weatherAPIResponse
			if err := getJSON(ctx, client, endpoint, &resp); err != nil {
				return WeatherReport{}, fmt.Errorf("failed to fetch weather: %w", err)
			}
			if resp.Error != nil {
				return WeatherReport{}, errors.New(resp.Error.Message)
			}

			return WeatherReport{
				City:         req.City,
				TemperatureC: resp.Current.TempC,
				Condition:    resp.Current.Condition.Text,
				Humidity:     resp.Current.Humidity,
			}, nil
		},
	)
}

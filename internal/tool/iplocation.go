package tool

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	provider "github.com/jmallari/gofer/internal/provider/models"
)

const defaultIPAPIBaseURL = "https://ipapi.co"

// IPLocationRequest names the IP address to geolocate.
type IPLocationRequest struct {
	IP string `mapstructure:"ip"`
}

// Validate implements Validator.
func (r IPLocationRequest) Validate() error {
	if r.IP == "" {
		return errors.New("ip is required")
	}
	return nil
}

// IPLocation is the condensed geolocation payload.
type IPLocation struct {
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ipAPIResponse struct {
	City        string  `json:"city"`
	CountryName string  `json:"country_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Error       bool    `json:"error"`
	Reason      string  `json:"reason"`
}

// NewGetIPLocation returns the IP geolocation tool backed by ipapi.co.
func NewGetIPLocation(client *http.Client, baseURL string) Tool {
	if baseURL == "" {
		baseURL = defaultIPAPIBaseURL
	}

	schema := &provider.ParameterSchema{
		Type: "object",
		Properties: map[string]provider.PropertySchema{
			"ip": {
				Type:        "string",
				Description: "The IP address (e.g., '8.8.8.8')",
			},
		},
		Required: []string{"ip"},
	}

	return NewBase(
		"get_ip_location",
		"Fetch location info for a given IP address.",
		schema,
		func(ctx context.Context, req IPLocationRequest) (IPLocation, error) {
			endpoint := fmt.Sprintf("%s/%s/json/", baseURL, url.PathEscape(req.IP))
			var resp ipAPIResponse
			if err := getJSON(ctx, client, endpoint, &resp); err != nil {
				return IPLocation{}, err
			}
			if resp.Error {
				return IPLocation{}, errors.New(resp.Reason)
			}

			return IPLocation{
				City:      resp.City,
				Country:   resp.CountryName,
				Latitude:  resp.Latitude,
				Longitude: resp.Longitude,
			}, nil
		},
	)
}

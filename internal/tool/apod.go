package tool

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

const defaultNASABaseURL = "https://api.nasa.gov"

// explanationLimit truncates APOD explanations, which run to paragraphs.
const explanationLimit = 200

type apodRequest struct{}

// APODPayload is the condensed astronomy-picture-of-the-day payload.
type APODPayload struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	ImageURL    string `json:"image_url"`
}

type nasaAPIResponse struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	URL         string `json:"url"`
}

// NewGetNASAAPOD returns the NASA Astronomy Picture of the Day tool.
func NewGetNASAAPOD(client *http.Client, apiKey, baseURL string) Tool {
	if baseURL == "" {
		baseURL = defaultNASABaseURL
	}

	return NewBase(
		"get_nasa_apod",
		"Fetch NASA's Astronomy Picture of the Day (APOD).",
		nil,
		func(ctx context.Context, _ apodRequest) (APODPayload, error) {
			if apiKey == "" {
				return APODPayload{}, errors.New("NASA_API_KEY is not set")
			}

			endpoint := fmt.Sprintf("%s/planetary/apod?api_key=%s", baseURL, url.QueryEscape(apiKey))
			var resp nasaAPIResponse
			if err := getJSON(ctx, client, endpoint, &resp); err != nil {
				return APODPayload{}, err
			}

			explanation := resp.Explanation
			if runes := []rune(explanation); len(runes) > explanationLimit {
				explanation = string(runes[:explanationLimit])
			}

			return APODPayload{
				Title:       resp.Title,
				Explanation: explanation,
				ImageURL:    resp.URL,
			}, nil
		},
	)
}

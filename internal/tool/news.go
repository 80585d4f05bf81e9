package tool

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	provider "github.com/jmallari/gofer/internal/provider/models"
)

const defaultNewsBaseURL = "https://newsapi.org"

// NewsRequest names the topic to search headlines for.
type NewsRequest struct {
	Topic string `mapstructure:"topic"`
}

// Validate implements Validator.
func (r NewsRequest) Validate() error {
	if r.Topic == "" {
		return errors.New("topic is required")
	}
	return nil
}

type headlines struct {
	Headlines []string `json:"headlines"`
}

type newsAPIResponse struct {
	Articles []struct {
		Title string `json:"title"`
	} `json:"articles"`
}

// NewFetchNews returns the headline tool backed by newsapi.org.
func NewFetchNews(client *http.Client, apiKey, baseURL string) Tool {
	if baseURL == "" {
		baseURL = defaultNewsBaseURL
	}

	schema := &provider.ParameterSchema{
		Type: "object",
		Properties: map[string]provider.PropertySchema{
			"topic": {
				Type:        "string",
				Description: "The news topic (e.g., 'technology', 'sports')",
			},
		},
		Required: []string{"topic"},
	}

	return NewBase(
		"fetch_news",
		"Fetch latest news headlines on a given topic.",
		schema,
		func(ctx context.Context, req NewsRequest) (headlines, error) {
			if apiKey == "" {
				return headlines{}, errors.New("NEWS_API_KEY is not set")
			}

			endpoint := fmt.Sprintf("%s/v2/everything?q=%s&apiKey=%s&pageSize=5",
				baseURL, url.QueryEscape(req.Topic), url.QueryEscape(apiKey))

			var resp newsAPIResponse
			if err := getJSON(ctx, client, endpoint, &resp); err != nil {
				return headlines{}, err
			}
			if len(resp.Articles) == 0 {
				return headlines{}, errors.New("No news found.")
			}

			titles := make([]string, 0, len(resp.Articles))
			for _, a := range resp.Articles {
				titles = append(titles, a.Title)
			}
			return headlines{Headlines: titles}, nil
		},
	)
}

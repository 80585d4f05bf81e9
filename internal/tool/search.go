package tool

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	provider "github.com/jmallari/gofer/internal/provider/models"
)

const defaultSearchBaseURL = "https://api.duckduckgo.com"

// SearchRequest carries the web search query.
type SearchRequest struct {
	Query string `mapstructure:"query"`
}

// Validate implements Validator.
func (r SearchRequest) Validate() error {
	if r.Query == "" {
		return errors.New("query is required")
	}
	return nil
}

type searchResult struct {
	Result string `json:"result"`
}

type duckDuckGoResponse struct {
	AbstractText  string `json:"AbstractText"`
	Answer        string `json:"Answer"`
	RelatedTopics []struct {
		Text string `json:"Text"`
	} `json:"RelatedTopics"`
}

// NewWebSearch returns the web search tool backed by the DuckDuckGo
// instant-answer API. It prefers the direct answer, then the abstract, then
// the first related topic.
func NewWebSearch(client *http.Client, baseURL string) Tool {
	if baseURL == "" {
		baseURL = defaultSearchBaseURL
	}

	schema := &provider.ParameterSchema{
		Type: "object",
		Properties: map[string]provider.PropertySchema{
			"query": {
				Type:        "string",
				Description: "The search query",
			},
		},
		Required: []string{"query"},
	}

	return NewBase(
		"web_search",
		"Search the web for up-to-date information on a query.",
		schema,
		func(ctx context.Context, req SearchRequest) (searchResult, error) {
			endpoint := fmt.Sprintf("%s/?q=%s&format=json&no_html=1&skip_disambig=1",
				baseURL, url.QueryEscape(req.Query))

			var resp duckDuckGoResponse
			if err := getJSON(ctx, client, endpoint, &resp); err != nil {
				return searchResult{}, err
			}

			switch {
			case resp.Answer != "":
				return searchResult{Result: resp.Answer}, nil
			case resp.AbstractText != "":
				return searchResult{Result: resp.AbstractText}, nil
			case len(resp.RelatedTopics) > 0 && resp.RelatedTopics[0].Text != "":
				return searchResult{Result: resp.RelatedTopics[0].Text}, nil
			default:
				return searchResult{}, fmt.Errorf("no results found for %q", req.Query)
			}
		},
	)
}

package tool

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	provider "github.com/jmallari/gofer/internal/provider/models"
)

const defaultJokeBaseURL = "https://v2.jokeapi.dev"

// JokeCategories are the categories the joke API accepts. The decision step
// draws random categories from this set for multi-joke requests.
var JokeCategories = []string{"Any", "Programming", "Pun", "Misc"}

// JokeRequest selects the joke category; empty means "Any".
type JokeRequest struct {
	Category string `mapstructure:"category"`
}

type jokePayload struct {
	Joke string `json:"joke"`
}

type jokeAPIResponse struct {
	Error bool   `json:"error"`
	Joke  string `json:"joke"`
}

// NewGetJoke returns the joke-fetching tool backed by jokeapi.dev.
// baseURL overrides the upstream endpoint; pass "" for the real API.
func NewGetJoke(client *http.Client, baseURL string) Tool {
	if baseURL == "" {
		baseURL = defaultJokeBaseURL
	}

	schema := &provider.ParameterSchema{
		Type: "object",
		Properties: map[string]provider.PropertySchema{
			"category": {
				Type:        "string",
				Description: "Joke category. Default: 'Any'.",
				Enum:        JokeCategories,
			},
		},
	}

	return NewBase(
		"get_joke",
		"Fetch a random joke from a category (e.g., 'Programming', 'Pun', 'Misc', 'Any').",
		schema,
		func(ctx context.Context, req JokeRequest) (jokePayload, error) {
			category := req.Category
			if category == "" {
				category = "Any"
			}

			endpoint := fmt.Sprintf("%s/joke/%s?type=single", baseURL, url.PathEscape(category))
			var resp jokeAPIResponse
			if err := getJSON(ctx, client, endpoint, &resp); err != nil {
				return jokePayload{}, err
			}
			if resp.Error || resp.Joke == "" {
				return jokePayload{}, errors.New("No joke found.")
			}
			return jokePayload{Joke: resp.Joke}, nil
		},
	)
}

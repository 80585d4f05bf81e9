package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// getJSON performs a GET request and decodes the JSON body into out. Non-2xx
// responses are still decoded: several upstream APIs report failures as JSON
// error bodies with an error status, and tools inspect those fields
// themselves.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed upstream response: %w", err)
	}

	return nil
}

package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	geocodeBaseURL     = "https://geocode.search.hereapi.com/v1/geocode"
	autosuggestBaseURL = "https://autosuggest.search.hereapi.com/v1/autosuggest"

	// Autosuggest is biased around Paris, matching the marketplace's
	// home market.
	autosuggestAt = "48.8566,2.3522"
)

// Result is a resolved address with coordinates.
type Result struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Suggestion is one autocomplete candidate.
type Suggestion struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// HereClient is a thin proxy to the HERE geocoding API. The API key
// stays server-side; browsers only ever talk to our /geocode endpoint.
type HereClient struct {
	apiKey string
	http   *http.Client
}

func NewHereClient(apiKey string) *HereClient {
	return &HereClient{
		apiKey: apiKey,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

type hereAddress struct {
	Label string `json:"label"`
}

type hereItem struct {
	ID         string      `json:"id"`
	ResultType string      `json:"resultType"`
	Address    hereAddress `json:"address"`
	Position   struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"position"`
}

type hereResponse struct {
	Items []hereItem `json:"items"`
}

// Geocode resolves a free-form query to its best matching address, or
// nil when HERE has no result.
func (c *HereClient) Geocode(ctx context.Context, query string) (*Result, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("apiKey", c.apiKey)
	q.Set("lang", "fr")

	var resp hereResponse
	if err := c.get(ctx, geocodeBaseURL+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}

	item := resp.Items[0]
	return &Result{
		Lat:     item.Position.Lat,
		Lng:     item.Position.Lng,
		Address: item.Address.Label,
	}, nil
}

// Autocomplete returns up to five address suggestions, keeping only
// locality/street/house-number results.
func (c *HereClient) Autocomplete(ctx context.Context, query string) ([]Suggestion, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("at", autosuggestAt)
	q.Set("apiKey", c.apiKey)
	q.Set("lang", "fr")
	q.Set("limit", "5")

	var resp hereResponse
	if err := c.get(ctx, autosuggestBaseURL+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	out := make([]Suggestion, 0, len(resp.Items))
	for _, item := range resp.Items {
		switch item.ResultType {
		case "locality", "street", "houseNumber":
			out = append(out, Suggestion{ID: item.ID, Label: item.Address.Label})
		}
	}
	return out, nil
}

func (c *HereClient) get(ctx context.Context, rawURL string, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("here api: unexpected status %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(into)
}

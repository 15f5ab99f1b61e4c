// Package overpass queries the Overpass API for places of worship
// around a point. Results come back as tagged OSM elements; converting
// them to venues and filtering out other denominations is left to the
// caller.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultEndpoint is the public Overpass API instance.
const DefaultEndpoint = "https://overpass-api.de/api/interpreter"

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient returns a client for the given Overpass endpoint. Callers
// hitting the public instance pass DefaultEndpoint; self-hosted
// instances avoid its rate limits.
func NewClient(endpoint string) *Client {
	return &Client{
		httpClient: http.DefaultClient,
		baseURL:    endpoint,
		userAgent:  "masstimes-finder/1.0",
	}
}

// NearbyPlacesOfWorship returns christian places of worship within
// radiusMeters of the given point. Both nodes and ways are requested;
// ways carry their centroid so Position works uniformly.
func (c *Client) NearbyPlacesOfWorship(ctx context.Context, lat, lon float64, radiusMeters int) ([]Element, error) {
	around := fmt.Sprintf("(around:%d,%.6f,%.6f)", radiusMeters, lat, lon)
	query := fmt.Sprintf(`[out:json][timeout:25];
(
  node["amenity"="place_of_worship"]["religion"="christian"]%s;
  way["amenity"="place_of_worship"]["religion"="christian"]%s;
);
out center;`, around, around)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass query: unexpected status %s", resp.Status)
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("overpass query: decoding response: %w", err)
	}
	return decoded.Elements, nil
}

package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ErrNotFound is returned when the geocoder has no result for a query.
// Callers should treat it as "unknown place", not as a transport
// failure.
var ErrNotFound = errors.New("location: no results")

// Location holds the geocoded position and labels for a place name.
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
	City      string
	Country   string
	Type      string
}

// Client is a Nominatim search client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewClient() *Client {
	return &Client{
		httpClient: http.DefaultClient,
		baseURL:    "https://nominatim.openstreetmap.org",
		userAgent:  "masstimes-finder/1.0",
	}
}

// nominatimResponse is shaped for the API response.
type nominatimResponse []struct {
	PlaceID     int64   `json:"place_id"`
	OsmType     string  `json:"osm_type"`
	OsmID       int64   `json:"osm_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Class       string  `json:"class"`
	Type        string  `json:"type"`
	Importance  float64 `json:"importance"`
	DisplayName string  `json:"display_name"`
	Address     struct {
		Road        string `json:"road"`
		Suburb      string `json:"suburb"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		Postcode    string `json:"postcode"`
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

// Geocode looks up a free-text place name and returns its coordinates
// and labels. ErrNotFound is returned when the service has no match.
func (c *Client) Geocode(ctx context.Context, query string) (*Location, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", "1")
	params.Set("accept-language", "en")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding %q: unexpected status %s", query, resp.Status)
	}

	var results nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}

	first := results[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: bad latitude %q", query, first.Lat)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: bad longitude %q", query, first.Lon)
	}

	city := first.Address.City
	if city == "" {
		city = first.Address.Town
	}
	if city == "" {
		city = first.Address.Village
	}

	return &Location{
		Name:      query,
		Type:      first.Type,
		Latitude:  lat,
		Longitude: lon,
		City:      city,
		Country:   first.Address.Country,
	}, nil
}

package overpass

import (
	"strings"

	"masstimes/internal/models"
)

// response is the top-level struct for the Overpass JSON response.
type response struct {
	Elements []Element `json:"elements"`
}

// Center carries the computed centroid Overpass returns for ways when
// queried with "out center".
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Element is one tagged OSM element (node or way) returned by a query.
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags"`
}

// Position returns the element's coordinates: a node's own lat/lon, or
// the centroid for a way.
func (e Element) Position() (lat, lon float64) {
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon
	}
	return e.Lat, e.Lon
}

// Name returns the element's display name tag, which may be empty.
func (e Element) Name() string {
	return e.Tags["name"]
}

// Address assembles a display address from the element's tags: the
// full-address tag when present, otherwise house number, street and
// locality joined by ", " from whichever sub-fields exist. Returns ""
// when the element carries no address tags at all.
func (e Element) Address() string {
	if full := e.Tags["addr:full"]; full != "" {
		return full
	}

	locality := e.Tags["addr:city"]
	if locality == "" {
		locality = e.Tags["addr:town"]
	}
	if locality == "" {
		locality = e.Tags["addr:suburb"]
	}

	var parts []string
	for _, p := range []string{e.Tags["addr:housenumber"], e.Tags["addr:street"], locality} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Venue converts the element into the application's venue model.
// Distance and schedule fields are left for the enrichment pipeline.
func (e Element) Venue() models.Venue {
	lat, lon := e.Position()
	return models.Venue{
		ID:          e.ID,
		Name:        e.Name(),
		Coordinates: models.Coordinates{Lat: lat, Lon: lon},
		Address:     e.Address(),
	}
}

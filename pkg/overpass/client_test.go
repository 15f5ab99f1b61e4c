package overpass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNearbyPlacesOfWorship(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parsing form: %v", err)
		}
		data := r.PostForm.Get("data")
		for _, want := range []string{"place_of_worship", "religion", "around:2000,-33.815100,151.001100", "out center"} {
			if !strings.Contains(data, want) {
				t.Errorf("query missing %q:\n%s", want, data)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"elements": [
				{"type": "node", "id": 1, "lat": -33.81, "lon": 151.0,
				 "tags": {"name": "St. Joseph's Church", "amenity": "place_of_worship"}},
				{"type": "way", "id": 2, "center": {"lat": -33.82, "lon": 151.01},
				 "tags": {"name": "Sacred Heart", "addr:street": "High St"}}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	elements, err := client.NearbyPlacesOfWorship(context.Background(), -33.8151, 151.0011, 2000)
	if err != nil {
		t.Fatalf("NearbyPlacesOfWorship error: %v", err)
	}
	if len(elements) != 2 {
		t.Fatalf("got %d elements; want 2", len(elements))
	}
	if elements[0].Name() != "St. Joseph's Church" {
		t.Errorf("first element name = %q", elements[0].Name())
	}
	if lat, lon := elements[1].Position(); lat != -33.82 || lon != 151.01 {
		t.Errorf("way position = %v,%v; want center coordinates", lat, lon)
	}
}

func TestNearbyPlacesOfWorship_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "too busy", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.NearbyPlacesOfWorship(context.Background(), 0, 0, 1000); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

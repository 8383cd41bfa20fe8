package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"metrodir-backend/internal/geo"
)

const defaultBaseURL = "https://api.mapbox.com"

// Result is a normalized geocoding outcome: the top-ranked candidate's
// coordinates plus a display address.
type Result struct {
	Longitude        float64 `json:"longitude"`
	Latitude         float64 `json:"latitude"`
	FormattedAddress string  `json:"formatted_address"`
}

// Client resolves a free-text address to coordinates within the service
// region.
type Client interface {
	Geocode(ctx context.Context, address string) (*Result, error)
}

// MapboxClient is a Client backed by the Mapbox geocoding v6 forward API.
// Requests are biased toward the region center and limited to one candidate.
type MapboxClient struct {
	Token      string
	BaseURL    string // override for tests; defaults to the Mapbox API
	HTTPClient *http.Client
	Cache      *Cache // optional; identical addresses are served from cache
}

type mapboxResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
		Properties struct {
			FullAddress string `json:"full_address"`
			Name        string `json:"name"`
		} `json:"properties"`
	} `json:"features"`
}

// Geocode resolves address to a region-validated coordinate pair. Exactly one
// outbound call per invocation, subject to the cache. The resolved display
// address prefers the provider's full_address, then its name, then the
// original input.
func (c *MapboxClient) Geocode(ctx context.Context, address string) (*Result, error) {
	if c.Token == "" {
		return nil, ErrNotConfigured
	}
	if cached, ok := c.Cache.Get(ctx, address); ok {
		return cached, nil
	}

	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	q := url.Values{}
	q.Set("q", address)
	q.Set("proximity", fmt.Sprintf("%g,%g", geo.CenterLon, geo.CenterLat))
	q.Set("limit", "1")
	q.Set("country", "us")
	q.Set("access_token", c.Token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/search/geocode/v6/forward?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ErrUnavailable
	}

	var payload mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, ErrUnavailable
	}
	if len(payload.Features) == 0 {
		return nil, ErrNotFound
	}

	feature := payload.Features[0]
	if len(feature.Geometry.Coordinates) < 2 {
		return nil, ErrNotFound
	}
	lon, lat := feature.Geometry.Coordinates[0], feature.Geometry.Coordinates[1]

	// Hard rejection, not a warning: every directory geography assumption
	// depends on listings being inside the metro box.
	if !geo.IsWithinRegion(lon, lat) {
		return nil, ErrOutOfRegion
	}

	formatted := feature.Properties.FullAddress
	if formatted == "" {
		formatted = feature.Properties.Name
	}
	if formatted == "" {
		formatted = address
	}

	result := &Result{Longitude: lon, Latitude: lat, FormattedAddress: formatted}
	c.Cache.Put(ctx, address, result)
	return result, nil
}

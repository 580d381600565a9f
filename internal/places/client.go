package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/tripscout/trip-scout/internal/model"
)

const (
	placesAPI  = "https://api.geoapify.com/v2/places"
	reverseAPI = "https://api.geoapify.com/v1/geocode/reverse"
)

// Client calls the Geoapify places and reverse-geocoding APIs.
type Client struct {
	APIKey     string
	HTTPClient *http.Client

	limiter    *rate.Limiter
	placesURL  string
	reverseURL string
}

// NewClient creates a Client using the GEOAPIFY_API_KEY env var. All
// outgoing requests share a token-bucket limiter of rps requests per
// second (the free tier allows 5).
func NewClient(rps float64) (*Client, error) {
	key := os.Getenv("GEOAPIFY_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("GEOAPIFY_API_KEY environment variable not set")
	}
	return &Client{
		APIKey:     key,
		HTTPClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		placesURL:  placesAPI,
		reverseURL: reverseAPI,
	}, nil
}

// featureCollection covers the subset of GeoJSON properties both Geoapify
// endpoints return.
type featureCollection struct {
	Features []struct {
		Properties struct {
			Name       string   `json:"name"`
			Formatted  string   `json:"formatted"`
			Categories []string `json:"categories"`
			City       string   `json:"city"`
			Country    string   `json:"country"`
		} `json:"properties"`
	} `json:"features"`
}

// Nearby returns up to limit places within radius meters of the
// coordinate. An empty result list is a valid response, not an error.
// Places with no name or no address get the "Unnamed location" /
// "Address not available" placeholders.
func (c *Client) Nearby(ctx context.Context, coord model.Coordinate, radius int, categories string, limit int) ([]model.Place, error) {
	q := url.Values{}
	q.Set("categories", categories)
	q.Set("filter", fmt.Sprintf("circle:%v,%v,%d", coord.Lon, coord.Lat, radius))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("apiKey", c.APIKey)

	var fc featureCollection
	if err := c.get(ctx, c.placesURL, q, &fc); err != nil {
		return nil, fmt.Errorf("places lookup: %w", err)
	}

	out := make([]model.Place, 0, len(fc.Features))
	for _, f := range fc.Features {
		p := model.Place{
			Name:       f.Properties.Name,
			Address:    f.Properties.Formatted,
			Categories: f.Properties.Categories,
		}
		if p.Name == "" {
			p.Name = "Unnamed location"
		}
		if p.Address == "" {
			p.Address = "Address not available"
		}
		out = append(out, p)
	}
	return out, nil
}

// ReverseGeocode names the coordinate as "City, Country", or just
// "Country" when no city is known. It never fails: any error or empty
// result degrades to the raw "lat,lon" string so callers always get a
// usable destination label.
func (c *Client) ReverseGeocode(ctx context.Context, coord model.Coordinate) string {
	fallback := fmt.Sprintf("%v,%v", coord.Lat, coord.Lon)

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	q.Set("apiKey", c.APIKey)

	var fc featureCollection
	if err := c.get(ctx, c.reverseURL, q, &fc); err != nil || len(fc.Features) == 0 {
		return fallback
	}

	props := fc.Features[0].Properties
	switch {
	case props.City != "" && props.Country != "":
		return props.City + ", " + props.Country
	case props.Country != "":
		return props.Country
	default:
		return fallback
	}
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != 200 {
		return fmt.Errorf("API returned status %d: %.200s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	return nil
}

package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hrsuite/attendance-backend-go/internal/pkg/metrics"
	"golang.org/x/time/rate"
)

// PlaceholderAddress is substituted when reverse geocoding is unavailable.
// Lookup failures never block a check-in.
const PlaceholderAddress = "Address not available"

// Place is a resolved reverse-geocode result.
type Place struct {
	Address   string `json:"address"`
	PlaceName string `json:"place_name"`
}

// Resolver turns a coordinate into a human-readable place, best effort.
type Resolver interface {
	Resolve(ctx context.Context, lat, lon float64) (Place, error)
}

type Config struct {
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	CacheTTL       time.Duration
	RequestsPerSec float64
}

// Client is a Nominatim reverse-geocoding client with a TTL result cache and
// a rate limiter (the public Nominatim instance allows 1 request/second).
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *placeCache
}

func NewClient(cfg Config) *Client {
	if cfg.RequestsPerSec <= 0 {
		cfg.RequestsPerSec = 1
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		cache:      newPlaceCache(cfg.CacheTTL),
	}
}

// nominatimResponse is the subset of the reverse endpoint's JSON we consume.
type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Error       string `json:"error"`
}

// Resolve returns the address for a coordinate, consulting the cache first.
// Errors are returned so the caller can decide; callers in this codebase
// substitute PlaceholderAddress and continue.
func (c *Client) Resolve(ctx context.Context, lat, lon float64) (Place, error) {
	key := cacheKey(lat, lon)
	if place, ok := c.cache.get(key); ok {
		metrics.GeocodeCacheHits.Inc()
		return place, nil
	}
	metrics.GeocodeCacheMisses.Inc()

	if err := c.limiter.Wait(ctx); err != nil {
		return Place{}, fmt.Errorf("geocoder rate limiter: %w", err)
	}

	reqURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, url.Values{
		"lat":    []string{fmt.Sprintf("%f", lat)},
		"lon":    []string{fmt.Sprintf("%f", lon)},
		"format": []string{"jsonv2"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Place{}, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("reverse geocode: unexpected status %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Place{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if body.Error != "" {
		return Place{}, fmt.Errorf("reverse geocode: %s", body.Error)
	}

	place := Place{
		Address:   body.DisplayName,
		PlaceName: placeNameFrom(body),
	}
	c.cache.set(key, place)

	slog.Debug("Resolved coordinate", "lat", lat, "lon", lon, "place", place.PlaceName)
	return place, nil
}

// EvictExpired drops stale cache entries and returns how many were removed.
func (c *Client) EvictExpired() int {
	return c.cache.Evict()
}

func placeNameFrom(body nominatimResponse) string {
	if body.Name != "" {
		return body.Name
	}
	if idx := strings.Index(body.DisplayName, ","); idx > 0 {
		return body.DisplayName[:idx]
	}
	return body.DisplayName
}

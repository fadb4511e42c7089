// Package catalog fetches read-only reference data (destinations, hotels,
// cars, attractions) from the external catalog service and normalizes the
// drifting upstream record shapes into the canonical domain types.
// Catalog failures surface as domain.ErrCatalogUnavailable and degrade only
// the affected listing and never block planning operations.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sethvargo/go-retry"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
)

// Client is an HTTP client for the catalog service. Successful responses
// are cached for the configured TTL; transient upstream failures (5xx,
// network errors) are retried with fibonacci backoff before giving up.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *gocache.Cache
	log     *slog.Logger
}

// NewClient constructs a catalog Client. baseURL must not end with a slash.
// A cacheTTL of zero or below disables response caching.
func NewClient(baseURL string, timeout, cacheTTL time.Duration, log *slog.Logger) *Client {
	var c *gocache.Cache
	if cacheTTL > 0 {
		c = gocache.New(cacheTTL, 10*time.Minute)
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		cache:   c,
		log:     log,
	}
}

// Destinations returns all catalog destinations.
func (c *Client) Destinations(ctx context.Context) ([]domain.Destination, error) {
	var raw []rawDestination
	if err := c.getJSON(ctx, "/destinations", "destinations", &raw); err != nil {
		return nil, fmt.Errorf("catalog.Client.Destinations: %w", err)
	}
	out := make([]domain.Destination, len(raw))
	for i, r := range raw {
		out[i] = r.normalize()
	}
	return out, nil
}

// Destination returns a single destination by id.
// Returns domain.ErrNotFound when the catalog has no such record.
func (c *Client) Destination(ctx context.Context, id string) (domain.Destination, error) {
	var raw rawDestination
	err := c.getJSON(ctx, "/destinations/"+url.PathEscape(id), "destination:"+id, &raw)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("catalog.Client.Destination: %w", err)
	}
	return raw.normalize(), nil
}

// Hotels returns all catalog hotels.
func (c *Client) Hotels(ctx context.Context) ([]domain.Hotel, error) {
	var raw []rawHotel
	if err := c.getJSON(ctx, "/hotels", "hotels", &raw); err != nil {
		return nil, fmt.Errorf("catalog.Client.Hotels: %w", err)
	}
	out := make([]domain.Hotel, len(raw))
	for i, r := range raw {
		out[i] = r.normalize()
	}
	return out, nil
}

// Cars returns all catalog rental cars.
func (c *Client) Cars(ctx context.Context) ([]domain.Car, error) {
	var raw []rawCar
	if err := c.getJSON(ctx, "/carrentals", "cars", &raw); err != nil {
		return nil, fmt.Errorf("catalog.Client.Cars: %w", err)
	}
	out := make([]domain.Car, len(raw))
	for i, r := range raw {
		out[i] = r.normalize()
	}
	return out, nil
}

// Places returns the attractions for one destination.
func (c *Client) Places(ctx context.Context, destinationID string) ([]domain.Activity, error) {
	var raw []rawPlace
	path := "/places?destination=" + url.QueryEscape(destinationID)
	if err := c.getJSON(ctx, path, "places:"+destinationID, &raw); err != nil {
		return nil, fmt.Errorf("catalog.Client.Places: %w", err)
	}
	out := make([]domain.Activity, len(raw))
	for i, r := range raw {
		out[i] = r.normalize()
	}
	return out, nil
}

// getJSON performs a GET against the catalog, with caching and retries.
// cacheKey is the cache entry name; dst must be a pointer.
func (c *Client) getJSON(ctx context.Context, path, cacheKey string, dst any) error {
	if c.cache != nil {
		if cached, ok := c.cache.Get(cacheKey); ok {
			return json.Unmarshal(cached.([]byte), dst)
		}
	}

	var body []byte
	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(100*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			// Network errors are usually transient.
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			body, err = io.ReadAll(resp.Body)
			return err
		case resp.StatusCode == http.StatusNotFound:
			return domain.ErrNotFound
		case resp.StatusCode >= 500:
			c.log.WarnContext(ctx, "catalog upstream error, retrying",
				"path", path, "status", resp.StatusCode)
			return retry.RetryableError(fmt.Errorf("upstream status %d", resp.StatusCode))
		default:
			return fmt.Errorf("upstream status %d", resp.StatusCode)
		}
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: decode: %v", domain.ErrCatalogUnavailable, err)
	}
	if c.cache != nil {
		c.cache.Set(cacheKey, body, gocache.DefaultExpiration)
	}
	return nil
}

package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/THIRUSELVAN-V/travellaV2/internal/domain"
)

// ErrStale is returned by PlaceLoader.Load when a newer load for the same
// destination started before this one finished. The stale result is dropped,
// never published.
var ErrStale = errors.New("stale catalog response discarded")

// PlacesFetcher is the single catalog operation the loader depends on.
// *Client satisfies it.
type PlacesFetcher interface {
	Places(ctx context.Context, destinationID string) ([]domain.Activity, error)
}

// PlaceLoader serializes attraction fetches per destination with a
// latest-request-wins discipline: every Load bumps a per-destination
// generation counter, and a response is published only if its generation is
// still the newest when it arrives. This stops a slow fetch for a
// previously-viewed destination from overwriting the result the user is
// actually looking at when they switch destinations quickly.
type PlaceLoader struct {
	fetch PlacesFetcher

	mu     sync.Mutex
	gen    map[string]uint64
	latest map[string][]domain.Activity
}

// NewPlaceLoader constructs a PlaceLoader over the given fetcher.
func NewPlaceLoader(fetch PlacesFetcher) *PlaceLoader {
	return &PlaceLoader{
		fetch:  fetch,
		gen:    make(map[string]uint64),
		latest: make(map[string][]domain.Activity),
	}
}

// Load fetches the attractions for destinationID and publishes them as the
// destination's snapshot. If a newer Load for the same destination started
// while this one was in flight, the result is discarded and ErrStale is
// returned; the caller's response is obsolete by definition.
func (l *PlaceLoader) Load(ctx context.Context, destinationID string) ([]domain.Activity, error) {
	l.mu.Lock()
	l.gen[destinationID]++
	mine := l.gen[destinationID]
	l.mu.Unlock()

	places, err := l.fetch.Places(ctx, destinationID)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gen[destinationID] != mine {
		return nil, ErrStale
	}
	if err != nil {
		return nil, err
	}
	l.latest[destinationID] = places
	return places, nil
}

// Snapshot returns the most recently published attraction list for a
// destination, if any. It never triggers a fetch.
func (l *PlaceLoader) Snapshot(destinationID string) ([]domain.Activity, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	places, ok := l.latest[destinationID]
	return places, ok
}

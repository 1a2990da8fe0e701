package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"chatorder/internal/domain/entities"
	"chatorder/internal/usecase/interfaces"

	"golang.org/x/sync/singleflight"
)

var ErrCatalogUnavailable = errors.New("catalog unavailable")

// CatalogCache holds the current menu snapshot and refreshes it from the
// provider once the freshness window elapses. Refreshes swap the whole
// snapshot atomically; readers never see a half-updated list. Concurrent
// refresh attempts collapse into one in-flight provider call.
//
// On provider failure the cache fails open and serves the stale snapshot,
// unless nothing has ever been loaded.

type CatalogCache struct {
	provider  interfaces.ICatalogProvider
	placeID   string
	freshness time.Duration

	mu              sync.RWMutex
	items           []entities.CatalogItem
	lastRefreshedAt time.Time
	loaded          bool

	group singleflight.Group
}

func NewCatalogCache(provider interfaces.ICatalogProvider, placeID string, freshness time.Duration) *CatalogCache {
	return &CatalogCache{provider: provider, placeID: placeID, freshness: freshness}
}

// AvailableItems returns the current snapshot, refreshing it first when the
// freshness window has elapsed.
func (c *CatalogCache) AvailableItems(ctx context.Context) ([]entities.CatalogItem, error) {
	c.mu.RLock()
	fresh := c.loaded && time.Since(c.lastRefreshedAt) <= c.freshness
	items := c.items
	c.mu.RUnlock()

	if fresh {
		return items, nil
	}
	return c.refresh(ctx)
}

func (c *CatalogCache) refresh(ctx context.Context) ([]entities.CatalogItem, error) {
	v, err, _ := c.group.Do("refresh", func() (interface{}, error) {
		// Another caller may have completed a refresh while this one waited
		// on the flight group.
		c.mu.RLock()
		if c.loaded && time.Since(c.lastRefreshedAt) <= c.freshness {
			items := c.items
			c.mu.RUnlock()
			return items, nil
		}
		c.mu.RUnlock()

		fetched, err := c.provider.FetchAvailableItems(ctx, c.placeID)
		if err != nil {
			c.mu.RLock()
			loaded := c.loaded
			stale := c.items
			c.mu.RUnlock()
			if loaded {
				log.Printf("[catalog][cache] refresh failed, serving stale snapshot place_id=%s err=%v", c.placeID, err)
				return stale, nil
			}
			log.Printf("[catalog][cache] refresh failed with no prior snapshot place_id=%s err=%v", c.placeID, err)
			return nil, ErrCatalogUnavailable
		}

		c.mu.Lock()
		c.items = fetched
		c.lastRefreshedAt = time.Now()
		c.loaded = true
		c.mu.Unlock()

		log.Printf("[catalog][cache] refresh success place_id=%s items=%d", c.placeID, len(fetched))
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entities.CatalogItem), nil
}

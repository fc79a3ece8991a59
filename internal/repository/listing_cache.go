package repository

import (
	"context"

	lru "github.com/hashicorp/golang-lru"

	"marketbids/internal/models"
)

// CachedListingStore wraps a ListingStore with an LRU cache over single-
// listing lookups. Listing rows are read-only from the bid lifecycle's side,
// but they can change outside it (sellers edit prices), so Invalidate is
// exposed for callers that learn of an external change.
type CachedListingStore struct {
	inner ListingStore
	cache *lru.Cache
}

// NewCachedListingStore creates a caching decorator holding at most size
// listings.
func NewCachedListingStore(inner ListingStore, size int) (*CachedListingStore, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &CachedListingStore{inner: inner, cache: cache}, nil
}

// GetListing returns the cached listing when present, falling through to the
// inner store otherwise.
func (c *CachedListingStore) GetListing(ctx context.Context, listingID string) (models.Listing, error) {
	if v, ok := c.cache.Get(listingID); ok {
		return v.(models.Listing), nil
	}
	listing, err := c.inner.GetListing(ctx, listingID)
	if err != nil {
		return models.Listing{}, err
	}
	c.cache.Add(listingID, listing)
	return listing, nil
}

// ListListingsBySeller is not cached; it feeds the seller filter dropdowns
// which must reflect the seller's current listings.
func (c *CachedListingStore) ListListingsBySeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	return c.inner.ListListingsBySeller(ctx, sellerID)
}

// Invalidate drops a listing from the cache.
func (c *CachedListingStore) Invalidate(listingID string) {
	c.cache.Remove(listingID)
}

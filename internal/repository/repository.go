package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"marketbids/internal/biderrors"
	"marketbids/internal/models"
)

// BidPatch is the mutable slice of a bid applied by a guarded update. The
// counter fields are only set on the counter-offer transition.
type BidPatch struct {
	Status         models.Status
	CounterAmount  *float64
	CounterMessage *string
}

// BidStore defines durable storage for bids. UpdateBid is the compare-and-
// swap primitive: the write only lands if the bid's current status equals
// expected, so a transition that lost a race fails instead of overwriting.
type BidStore interface {
	InsertBid(ctx context.Context, bid models.Bid) error
	GetBid(ctx context.Context, bidID string) (models.Bid, error)
	UpdateBid(ctx context.Context, bidID string, expected models.Status, patch BidPatch) (models.Bid, error)
	ListBidsByBidder(ctx context.Context, bidderID string) ([]models.BidWithListing, error)
	ListBidsBySeller(ctx context.Context, sellerID string) ([]models.BidWithListing, error)
}

// ListingStore provides read access to listing context. The bid lifecycle
// never writes listings.
type ListingStore interface {
	GetListing(ctx context.Context, listingID string) (models.Listing, error)
	ListListingsBySeller(ctx context.Context, sellerID string) ([]models.Listing, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of BidStore and
// ListingStore.
type MemoryStore struct {
	mu       sync.RWMutex
	bids     map[string]models.Bid     // key: bidID
	listings map[string]models.Listing // key: listingID
}

// NewMemoryStore creates a new in-memory store instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bids:     make(map[string]models.Bid),
		listings: make(map[string]models.Listing),
	}
}

// InsertBid records a new bid. The referenced listing must exist.
func (s *MemoryStore) InsertBid(ctx context.Context, bid models.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[bid.ListingID]; !ok {
		return fmt.Errorf("insert bid for listing %s: %w", bid.ListingID, biderrors.ErrListingNotFound)
	}
	s.bids[bid.BidID] = bid
	return nil
}

// GetBid returns a bid by identity.
func (s *MemoryStore) GetBid(ctx context.Context, bidID string) (models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bid, ok := s.bids[bidID]
	if !ok {
		return models.Bid{}, fmt.Errorf("get bid %s: %w", bidID, biderrors.ErrBidNotFound)
	}
	return bid, nil
}

// UpdateBid applies patch to a bid if and only if its current status equals
// expected. A status mismatch means another transition landed first and is
// reported as ErrInvalidTransition; the record is left untouched.
func (s *MemoryStore) UpdateBid(ctx context.Context, bidID string, expected models.Status, patch BidPatch) (models.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bid, ok := s.bids[bidID]
	if !ok {
		return models.Bid{}, fmt.Errorf("update bid %s: %w", bidID, biderrors.ErrBidNotFound)
	}
	if bid.Status != expected {
		return models.Bid{}, fmt.Errorf("update bid %s: status is %q, expected %q: %w",
			bidID, bid.Status, expected, biderrors.ErrInvalidTransition)
	}

	bid.Status = patch.Status
	if patch.CounterAmount != nil {
		bid.CounterAmount = *patch.CounterAmount
	}
	if patch.CounterMessage != nil {
		bid.CounterMessage = *patch.CounterMessage
	}
	s.bids[bidID] = bid
	return bid, nil
}

// ListBidsByBidder returns all bids placed by a buyer, joined with listing
// context, newest first.
func (s *MemoryStore) ListBidsByBidder(ctx context.Context, bidderID string) ([]models.BidWithListing, error) {
	return s.listBids(func(b models.Bid) bool { return b.BidderID == bidderID })
}

// ListBidsBySeller returns all bids received on a seller's listings, joined
// with listing context, newest first.
func (s *MemoryStore) ListBidsBySeller(ctx context.Context, sellerID string) ([]models.BidWithListing, error) {
	return s.listBids(func(b models.Bid) bool { return b.SellerID == sellerID })
}

func (s *MemoryStore) listBids(match func(models.Bid) bool) ([]models.BidWithListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.BidWithListing, 0)
	for _, bid := range s.bids {
		if !match(bid) {
			continue
		}
		listing, ok := s.listings[bid.ListingID]
		if !ok {
			return nil, fmt.Errorf("list bids: listing %s: %w", bid.ListingID, biderrors.ErrListingNotFound)
		}
		rows = append(rows, models.BidWithListing{Bid: bid, Listing: listing})
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].BidID < rows[j].BidID
	})
	return rows, nil
}

// GetListing returns a listing by identity.
func (s *MemoryStore) GetListing(ctx context.Context, listingID string) (models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[listingID]
	if !ok {
		return models.Listing{}, fmt.Errorf("get listing %s: %w", listingID, biderrors.ErrListingNotFound)
	}
	return listing, nil
}

// ListListingsBySeller returns a seller's listings, used to build the
// filter options on the seller view.
func (s *MemoryStore) ListListingsBySeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listings := make([]models.Listing, 0)
	for _, l := range s.listings {
		if l.SellerID == sellerID {
			listings = append(listings, l)
		}
	}
	sort.Slice(listings, func(i, j int) bool { return listings[i].ListingID < listings[j].ListingID })
	return listings, nil
}

// AddListing seeds a listing into the store.
func (s *MemoryStore) AddListing(listing models.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[listing.ListingID] = listing
}

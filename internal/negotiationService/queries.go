package negotiation

import (
	"context"
	"fmt"
	"sort"

	"marketbids/internal/biderrors"
	"marketbids/internal/models"
)

// FilterAll is the sentinel value that disables a seller-side filter.
const FilterAll = "all"

// GroupedBids buckets bids by derived status group. The four slices
// partition the input exactly.
type GroupedBids struct {
	Pending        []models.BidWithListing `json:"pending"`
	CounterOffered []models.BidWithListing `json:"counter_offered"`
	Accepted       []models.BidWithListing `json:"accepted"`
	Rejected       []models.BidWithListing `json:"rejected"`
}

// SellerBids is the seller view: the filtered bid rows plus their grouping.
type SellerBids struct {
	Bids   []models.BidWithListing `json:"bids"`
	Groups GroupedBids             `json:"groups"`
}

// ListingOption is one entry of the seller's listing filter dropdown.
type ListingOption struct {
	ListingID string `json:"listing_id"`
	Title     string `json:"title"`
}

// SellerFilters holds the filter options available to a seller: the distinct
// category names of their listings, and the listings themselves.
type SellerFilters struct {
	Categories []string        `json:"categories"`
	Listings   []ListingOption `json:"listings"`
}

// ListBidsForBuyer returns the bids a buyer has placed, with listing
// context, newest first.
func (s *Service) ListBidsForBuyer(ctx context.Context, buyerID string) ([]models.BidWithListing, error) {
	if buyerID == "" {
		return nil, fmt.Errorf("service: list buyer bids: %w", biderrors.ErrUnauthenticated)
	}

	bids, err := s.bids.ListBidsByBidder(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("service: list bids for buyer %s: %w", buyerID, err)
	}
	return bids, nil
}

// ListBidsForSeller returns the bids received on a seller's listings, newest
// first, filtered by listing category name and/or listing identity, plus the
// derived status groups. FilterAll (or empty) disables a filter. A filter
// matching nothing yields empty slices, not an error.
func (s *Service) ListBidsForSeller(ctx context.Context, sellerID, categoryFilter, listingFilter string) (SellerBids, error) {
	if sellerID == "" {
		return SellerBids{}, fmt.Errorf("service: list seller bids: %w", biderrors.ErrUnauthenticated)
	}

	bids, err := s.bids.ListBidsBySeller(ctx, sellerID)
	if err != nil {
		return SellerBids{}, fmt.Errorf("service: list bids for seller %s: %w", sellerID, err)
	}

	filtered := make([]models.BidWithListing, 0, len(bids))
	for _, bid := range bids {
		if filterActive(categoryFilter) && bid.Listing.CategoryName != categoryFilter {
			continue
		}
		if filterActive(listingFilter) && bid.ListingID != listingFilter {
			continue
		}
		filtered = append(filtered, bid)
	}

	return SellerBids{Bids: filtered, Groups: GroupBids(filtered)}, nil
}

// ListSellerFilters returns the filter options for a seller's bid view.
func (s *Service) ListSellerFilters(ctx context.Context, sellerID string) (SellerFilters, error) {
	if sellerID == "" {
		return SellerFilters{}, fmt.Errorf("service: list seller filters: %w", biderrors.ErrUnauthenticated)
	}

	listings, err := s.listings.ListListingsBySeller(ctx, sellerID)
	if err != nil {
		return SellerFilters{}, fmt.Errorf("service: list filters for seller %s: %w", sellerID, err)
	}

	seen := make(map[string]bool)
	filters := SellerFilters{Categories: make([]string, 0), Listings: make([]ListingOption, 0, len(listings))}
	for _, l := range listings {
		filters.Listings = append(filters.Listings, ListingOption{ListingID: l.ListingID, Title: l.Title})
		if l.CategoryName != "" && !seen[l.CategoryName] {
			seen[l.CategoryName] = true
			filters.Categories = append(filters.Categories, l.CategoryName)
		}
	}
	sort.Strings(filters.Categories)
	return filters, nil
}

// GroupBids buckets bids by the derived group of their status. Grouping is
// recomputed on every read and never stored.
func GroupBids(bids []models.BidWithListing) GroupedBids {
	groups := GroupedBids{
		Pending:        make([]models.BidWithListing, 0),
		CounterOffered: make([]models.BidWithListing, 0),
		Accepted:       make([]models.BidWithListing, 0),
		Rejected:       make([]models.BidWithListing, 0),
	}
	for _, bid := range bids {
		switch bid.Status.Group() {
		case models.GroupPending:
			groups.Pending = append(groups.Pending, bid)
		case models.GroupCounterOffered:
			groups.CounterOffered = append(groups.CounterOffered, bid)
		case models.GroupAccepted:
			groups.Accepted = append(groups.Accepted, bid)
		case models.GroupRejected:
			groups.Rejected = append(groups.Rejected, bid)
		}
	}
	return groups
}

func filterActive(filter string) bool {
	return filter != "" && filter != FilterAll
}

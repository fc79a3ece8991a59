// Package negotiation implements the bid lifecycle: authenticated command
// handlers that drive the state machine against the bid store, and the
// read-side projections consumed by the buyer and seller views.
package negotiation

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"marketbids/internal/biderrors"
	"marketbids/internal/lifecycle"
	"marketbids/internal/models"
	"marketbids/internal/repository"
	"marketbids/utils"
)

// Service carries the bid negotiation business logic over the external
// stores. Caller identity is an explicit argument on every method.
type Service struct {
	bids     repository.BidStore
	listings repository.ListingStore
}

// NewService creates a new negotiation Service instance.
func NewService(bids repository.BidStore, listings repository.ListingStore) *Service {
	return &Service{bids: bids, listings: listings}
}

// PlaceBid validates and records a buyer's offer on a listing. The amount
// arrives as entered by the buyer and is parsed here; a bid starts pending.
func (s *Service) PlaceBid(ctx context.Context, listingID, buyerID, amount, message string) (models.Bid, error) {
	if buyerID == "" {
		return models.Bid{}, fmt.Errorf("service: place bid: %w", biderrors.ErrUnauthenticated)
	}

	parsed, err := parseAmount(amount)
	if err != nil {
		return models.Bid{}, err
	}

	listing, err := s.listings.GetListing(ctx, listingID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: place bid on listing %s: %w", listingID, err)
	}
	if listing.SellerID == buyerID {
		return models.Bid{}, fmt.Errorf("service: place bid on listing %s: %w", listingID, biderrors.ErrSelfBidForbidden)
	}

	bid := models.Bid{
		BidID:     utils.NewID(),
		ListingID: listingID,
		BidderID:  buyerID,
		SellerID:  listing.SellerID,
		Amount:    parsed,
		Message:   strings.TrimSpace(message),
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.bids.InsertBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on listing %s by %s: %w", listingID, buyerID, err)
	}
	return bid, nil
}

// AcceptBid transitions a pending bid to accepted. Only the bid's seller may
// accept.
func (s *Service) AcceptBid(ctx context.Context, bidID, sellerID string) (models.Bid, error) {
	return s.transition(ctx, bidID, sellerID, lifecycle.ActionAccept, lifecycle.RoleSeller, repository.BidPatch{})
}

// RejectBid transitions a pending bid to rejected. Only the bid's seller may
// reject.
func (s *Service) RejectBid(ctx context.Context, bidID, sellerID string) (models.Bid, error) {
	return s.transition(ctx, bidID, sellerID, lifecycle.ActionReject, lifecycle.RoleSeller, repository.BidPatch{})
}

// CounterOffer transitions a pending bid to counter_offered, recording the
// seller's alternative amount and optional message. A counter-offer cannot
// be revised once made.
func (s *Service) CounterOffer(ctx context.Context, bidID, sellerID, counterAmount, counterMessage string) (models.Bid, error) {
	parsed, err := parseAmount(counterAmount)
	if err != nil {
		return models.Bid{}, err
	}

	msg := strings.TrimSpace(counterMessage)
	patch := repository.BidPatch{CounterAmount: &parsed, CounterMessage: &msg}
	return s.transition(ctx, bidID, sellerID, lifecycle.ActionCounter, lifecycle.RoleSeller, patch)
}

// AcceptCounterOffer transitions a counter_offered bid to counter_accepted.
// Only the bid's buyer may accept the counter-offer.
func (s *Service) AcceptCounterOffer(ctx context.Context, bidID, buyerID string) (models.Bid, error) {
	return s.transition(ctx, bidID, buyerID, lifecycle.ActionAccept, lifecycle.RoleBuyer, repository.BidPatch{})
}

// RejectCounterOffer transitions a counter_offered bid to counter_rejected.
func (s *Service) RejectCounterOffer(ctx context.Context, bidID, buyerID string) (models.Bid, error) {
	return s.transition(ctx, bidID, buyerID, lifecycle.ActionReject, lifecycle.RoleBuyer, repository.BidPatch{})
}

// transition loads the bid, checks the caller is the party the role names,
// asks the state machine for the target status, and applies it with a
// guarded update conditioned on the status just read. A concurrent
// transition that lands in between makes the update fail with
// ErrInvalidTransition; nothing is retried.
func (s *Service) transition(ctx context.Context, bidID, callerID string, action lifecycle.Action, role lifecycle.Role, patch repository.BidPatch) (models.Bid, error) {
	if callerID == "" {
		return models.Bid{}, fmt.Errorf("service: %s bid: %w", action, biderrors.ErrUnauthenticated)
	}

	bid, err := s.bids.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %s bid %s: %w", action, bidID, err)
	}

	party := bid.SellerID
	if role == lifecycle.RoleBuyer {
		party = bid.BidderID
	}
	if callerID != party {
		return models.Bid{}, fmt.Errorf("service: %s bid %s: caller is not the %s: %w", action, bidID, role, biderrors.ErrUnauthorized)
	}

	next, err := lifecycle.Next(bid.Status, action, role)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %s bid %s: %w", action, bidID, err)
	}

	patch.Status = next
	updated, err := s.bids.UpdateBid(ctx, bidID, bid.Status, patch)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: %s bid %s: %w", action, bidID, err)
	}
	return updated, nil
}

// parseAmount converts a user-entered amount to a positive finite number.
func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("service: %w - amount %q is not a number", biderrors.ErrInvalidOffer, raw)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, fmt.Errorf("service: %w - amount must be positive", biderrors.ErrInvalidOffer)
	}
	return amount, nil
}

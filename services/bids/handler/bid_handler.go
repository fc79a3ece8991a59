package handler

import (
	"context"
	"fmt"
	"net/http"

	"marketbids/internal/models"
	negotiation "marketbids/internal/negotiationService"
	"marketbids/services/bids/helpers"
	"marketbids/utils"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key the auth middleware stores the resolved
// caller identity under.
const IdentityKey = "user_id"

type NegotiationServiceInterface interface {
	PlaceBid(ctx context.Context, listingID, buyerID, amount, message string) (models.Bid, error)
	AcceptBid(ctx context.Context, bidID, sellerID string) (models.Bid, error)
	RejectBid(ctx context.Context, bidID, sellerID string) (models.Bid, error)
	CounterOffer(ctx context.Context, bidID, sellerID, counterAmount, counterMessage string) (models.Bid, error)
	AcceptCounterOffer(ctx context.Context, bidID, buyerID string) (models.Bid, error)
	RejectCounterOffer(ctx context.Context, bidID, buyerID string) (models.Bid, error)
	ListBidsForBuyer(ctx context.Context, buyerID string) ([]models.BidWithListing, error)
	ListBidsForSeller(ctx context.Context, sellerID, categoryFilter, listingFilter string) (negotiation.SellerBids, error)
	ListSellerFilters(ctx context.Context, sellerID string) (negotiation.SellerFilters, error)
}

type BidHandler struct {
	service NegotiationServiceInterface
}

func NewBidHandler(service NegotiationServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	buyerID := c.GetString(IdentityKey)
	bid, err := h.service.PlaceBid(c.Request.Context(), req.ListingID, buyerID, req.Amount, req.Message)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"listing_id": req.ListingID,
			"buyer_id":   buyerID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": bid.ListingID,
		"buyer_id":   buyerID,
		"amount":     bid.Amount,
	})
}

// AcceptBidHandler handles POST /bids/:bid_id/accept
func (h *BidHandler) AcceptBidHandler(c *gin.Context) {
	h.transition(c, "AcceptBidHandler", "bid accepted", h.service.AcceptBid)
}

// RejectBidHandler handles POST /bids/:bid_id/reject
func (h *BidHandler) RejectBidHandler(c *gin.Context) {
	h.transition(c, "RejectBidHandler", "bid rejected", h.service.RejectBid)
}

// AcceptCounterOfferHandler handles POST /bids/:bid_id/counter/accept
func (h *BidHandler) AcceptCounterOfferHandler(c *gin.Context) {
	h.transition(c, "AcceptCounterOfferHandler", "counter-offer accepted", h.service.AcceptCounterOffer)
}

// RejectCounterOfferHandler handles POST /bids/:bid_id/counter/reject
func (h *BidHandler) RejectCounterOfferHandler(c *gin.Context) {
	h.transition(c, "RejectCounterOfferHandler", "counter-offer rejected", h.service.RejectCounterOffer)
}

// transition runs the shared flow of the four message-less transitions: the
// bid id comes from the path, the caller identity from the auth middleware.
func (h *BidHandler) transition(c *gin.Context, handlerName, successMsg string, op func(ctx context.Context, bidID, callerID string) (models.Bid, error)) {
	bidID := c.Param("bid_id")
	callerID := c.GetString(IdentityKey)

	bid, err := op(c.Request.Context(), bidID, callerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn(handlerName+": transition failed", map[string]any{
			"bid_id":    bidID,
			"caller_id": callerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), successMsg)
	helpers.LogSuccess(handlerName, successMsg, map[string]any{
		"bid_id": bid.BidID,
		"status": string(bid.Status),
	})
}

// CounterOfferHandler handles POST /bids/:bid_id/counter
func (h *BidHandler) CounterOfferHandler(c *gin.Context) {
	var req helpers.CounterOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CounterOfferHandler", err)
		return
	}

	bidID := c.Param("bid_id")
	sellerID := c.GetString(IdentityKey)
	bid, err := h.service.CounterOffer(c.Request.Context(), bidID, sellerID, req.Amount, req.Message)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CounterOfferHandler: counter-offer failed", map[string]any{
			"bid_id":    bidID,
			"seller_id": sellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "counter-offer sent")
	helpers.LogSuccess("CounterOfferHandler", "counter-offer sent", map[string]any{
		"bid_id":         bid.BidID,
		"counter_amount": bid.CounterAmount,
	})
}

// ListMyBidsHandler handles GET /bids/mine
func (h *BidHandler) ListMyBidsHandler(c *gin.Context) {
	buyerID := c.GetString(IdentityKey)
	bids, err := h.service.ListBidsForBuyer(c.Request.Context(), buyerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListMyBidsHandler: error retrieving bids", map[string]any{"buyer_id": buyerID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []models.BidWithListing{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("ListMyBidsHandler", "bids retrieved successfully", map[string]any{
		"buyer_id": buyerID,
		"count":    len(bids),
	})
}

// ListReceivedBidsHandler handles GET /bids/received?category=&listing=
func (h *BidHandler) ListReceivedBidsHandler(c *gin.Context) {
	sellerID := c.GetString(IdentityKey)
	categoryFilter := c.DefaultQuery("category", negotiation.FilterAll)
	listingFilter := c.DefaultQuery("listing", negotiation.FilterAll)

	result, err := h.service.ListBidsForSeller(c.Request.Context(), sellerID, categoryFilter, listingFilter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListReceivedBidsHandler: error retrieving bids", map[string]any{"seller_id": sellerID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "bids retrieved successfully")
	helpers.LogSuccess("ListReceivedBidsHandler", "bids retrieved successfully", map[string]any{
		"seller_id": sellerID,
		"count":     len(result.Bids),
	})
}

// ListSellerFiltersHandler handles GET /bids/filters
func (h *BidHandler) ListSellerFiltersHandler(c *gin.Context) {
	sellerID := c.GetString(IdentityKey)
	filters, err := h.service.ListSellerFilters(c.Request.Context(), sellerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListSellerFiltersHandler: error retrieving filters", map[string]any{"seller_id": sellerID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, filters, "filters retrieved successfully")
	helpers.LogSuccess("ListSellerFiltersHandler", "filters retrieved successfully", map[string]any{
		"seller_id":  sellerID,
		"categories": len(filters.Categories),
		"listings":   len(filters.Listings),
	})
}

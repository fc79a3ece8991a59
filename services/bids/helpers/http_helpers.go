package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"marketbids/internal/biderrors"
	"marketbids/internal/models"
	"marketbids/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biderrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, biderrors.ErrUnauthorized):
		return http.StatusForbidden, "you may not perform this action on this bid"
	case errors.Is(err, biderrors.ErrSelfBidForbidden):
		return http.StatusForbidden, "you cannot bid on your own listing"
	case errors.Is(err, biderrors.ErrInvalidOffer):
		return http.StatusBadRequest, "invalid offer amount"
	case errors.Is(err, biderrors.ErrInvalidTransition):
		return http.StatusConflict, "bid status no longer allows this action"
	case errors.Is(err, biderrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, biderrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, biderrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "store unavailable, try again"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ToBidResponse converts a domain bid to its HTTP representation.
func ToBidResponse(bid models.Bid) BidResponse {
	return BidResponse{
		BidID:          bid.BidID,
		ListingID:      bid.ListingID,
		BidderID:       bid.BidderID,
		SellerID:       bid.SellerID,
		Amount:         bid.Amount,
		Message:        bid.Message,
		Status:         string(bid.Status),
		CounterAmount:  bid.CounterAmount,
		CounterMessage: bid.CounterMessage,
		CreatedAt:      bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

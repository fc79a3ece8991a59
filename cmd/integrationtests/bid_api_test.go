package integrationtests

import (
	"fmt"
	"net/http"
	"testing"

	"marketbids/internal/models"

	"github.com/stretchr/testify/require"
)

func bikeListing() models.Listing {
	return models.Listing{
		ListingID:    "l1",
		Title:        "Vintage road bike",
		Price:        500,
		SellerID:     "seller1",
		CategoryName: "Sports",
	}
}

// Tests that every bid route requires a session
func TestAuthRequired(t *testing.T) {
	env := SetupTestEnv(bikeListing())

	routes := []struct {
		method string
		url    string
	}{
		{http.MethodPost, "/bids"},
		{http.MethodPost, "/bids/b1/accept"},
		{http.MethodPost, "/bids/b1/reject"},
		{http.MethodPost, "/bids/b1/counter"},
		{http.MethodPost, "/bids/b1/counter/accept"},
		{http.MethodPost, "/bids/b1/counter/reject"},
		{http.MethodGet, "/bids/mine"},
		{http.MethodGet, "/bids/received"},
		{http.MethodGet, "/bids/filters"},
	}

	for _, r := range routes {
		_, w := env.ExecuteRequest(t, r.method, r.url, "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", r.method, r.url)
	}

	_, w := env.ExecuteRequest(t, http.MethodGet, "/bids/mine", "bogus-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// Tests the full negotiation over HTTP: place, counter, accept counter
func TestCounterOfferFlow(t *testing.T) {
	env := SetupTestEnv(bikeListing())
	buyerToken := env.Sessions.CreateSession("buyer1")
	sellerToken := env.Sessions.CreateSession("seller1")

	resp, w := env.ExecuteRequest(t, http.MethodPost, "/bids", buyerToken, map[string]any{
		"listing_id": "l1",
		"amount":     "450.00",
		"message":    "would you take 450?",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	bidID := Data(t, resp)["bid_id"].(string)
	require.NotEmpty(t, bidID)
	require.Equal(t, "pending", Data(t, resp)["status"])

	resp, w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/bids/%s/counter", bidID), sellerToken, map[string]any{
		"amount":  "400.00",
		"message": "meet me at 400",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "counter_offered", Data(t, resp)["status"])
	require.Equal(t, 400.0, Data(t, resp)["counter_amount"])

	resp, w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/bids/%s/counter/accept", bidID), buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "counter_accepted", Data(t, resp)["status"])

	// the negotiation is settled, rejecting now conflicts
	_, w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/bids/%s/counter/reject", bidID), buyerToken, nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

// Tests authorization and validation failures over HTTP
func TestBidValidation(t *testing.T) {
	env := SetupTestEnv(bikeListing())
	buyerToken := env.Sessions.CreateSession("buyer1")
	sellerToken := env.Sessions.CreateSession("seller1")

	t.Run("self_bid_forbidden", func(t *testing.T) {
		_, w := env.ExecuteRequest(t, http.MethodPost, "/bids", sellerToken, map[string]any{
			"listing_id": "l1",
			"amount":     "450.00",
		})
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unparseable_amount", func(t *testing.T) {
		_, w := env.ExecuteRequest(t, http.MethodPost, "/bids", buyerToken, map[string]any{
			"listing_id": "l1",
			"amount":     "abc",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown_listing", func(t *testing.T) {
		_, w := env.ExecuteRequest(t, http.MethodPost, "/bids", buyerToken, map[string]any{
			"listing_id": "missing",
			"amount":     "450.00",
		})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("buyer_cannot_accept_own_bid", func(t *testing.T) {
		resp, w := env.ExecuteRequest(t, http.MethodPost, "/bids", buyerToken, map[string]any{
			"listing_id": "l1",
			"amount":     "300",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		bidID := Data(t, resp)["bid_id"].(string)

		_, w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/bids/%s/accept", bidID), buyerToken, nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("double_accept_conflicts", func(t *testing.T) {
		resp, w := env.ExecuteRequest(t, http.MethodPost, "/bids", buyerToken, map[string]any{
			"listing_id": "l1",
			"amount":     "310",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		bidID := Data(t, resp)["bid_id"].(string)

		_, w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/bids/%s/accept", bidID), sellerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		_, w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/bids/%s/accept", bidID), sellerToken, nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("seller_accept_after_counter_conflicts", func(t *testing.T) {
		resp, w := env.ExecuteRequest(t, http.MethodPost, "/bids", buyerToken, map[string]any{
			"listing_id": "l1",
			"amount":     "450",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		bidID := Data(t, resp)["bid_id"].(string)

		_, w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/bids/%s/counter", bidID), sellerToken, map[string]any{
			"amount": "400",
		})
		require.Equal(t, http.StatusOK, w.Code)

		// the seller already answered; accepting now is a stale move, not
		// an authorization problem
		_, w = env.ExecuteRequest(t, http.MethodPost, fmt.Sprintf("/bids/%s/accept", bidID), sellerToken, nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

// Tests the read-side endpoints
func TestBidListViews(t *testing.T) {
	env := SetupTestEnv(
		bikeListing(),
		models.Listing{ListingID: "l2", Title: "Smartphone", Price: 220, SellerID: "seller1", CategoryName: "Electronics"},
	)
	buyerToken := env.Sessions.CreateSession("buyer1")
	sellerToken := env.Sessions.CreateSession("seller1")

	for _, body := range []map[string]any{
		{"listing_id": "l1", "amount": "450"},
		{"listing_id": "l2", "amount": "200"},
	} {
		_, w := env.ExecuteRequest(t, http.MethodPost, "/bids", buyerToken, body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("buyer_view", func(t *testing.T) {
		resp, w := env.ExecuteRequest(t, http.MethodGet, "/bids/mine", buyerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		bids := resp["data"].([]any)
		require.Len(t, bids, 2)
	})

	t.Run("seller_view_with_groups", func(t *testing.T) {
		resp, w := env.ExecuteRequest(t, http.MethodGet, "/bids/received", sellerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := Data(t, resp)
		require.Len(t, data["bids"].([]any), 2)
		groups := data["groups"].(map[string]any)
		require.Len(t, groups["pending"].([]any), 2)
		require.Empty(t, groups["accepted"].([]any))
	})

	t.Run("seller_view_category_filter", func(t *testing.T) {
		resp, w := env.ExecuteRequest(t, http.MethodGet, "/bids/received?category=Electronics", sellerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, Data(t, resp)["bids"].([]any), 1)

		resp, w = env.ExecuteRequest(t, http.MethodGet, "/bids/received?category=Garden", sellerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, Data(t, resp)["bids"].([]any))
	})

	t.Run("seller_filter_options", func(t *testing.T) {
		resp, w := env.ExecuteRequest(t, http.MethodGet, "/bids/filters", sellerToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := Data(t, resp)
		require.ElementsMatch(t, []any{"Sports", "Electronics"}, data["categories"].([]any))
		require.Len(t, data["listings"].([]any), 2)
	})
}

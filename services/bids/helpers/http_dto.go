package helpers

// Request/Response DTOs. Amounts travel as strings because they arrive as
// user input; parsing and validation happen in the service.
type PlaceBidRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	Message   string `json:"message"`
}

type CounterOfferRequest struct {
	Amount  string `json:"amount" binding:"required"`
	Message string `json:"message"`
}

type BidResponse struct {
	BidID          string  `json:"bid_id"`
	ListingID      string  `json:"listing_id"`
	BidderID       string  `json:"bidder_id"`
	SellerID       string  `json:"seller_id"`
	Amount         float64 `json:"amount"`
	Message        string  `json:"message,omitempty"`
	Status         string  `json:"status"`
	CounterAmount  float64 `json:"counter_amount,omitempty"`
	CounterMessage string  `json:"counter_message,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

package models

import "time"

// Listing represents a marketplace listing a bid is negotiated against.
// The bid lifecycle only ever reads listing fields; it never writes them.
type Listing struct {
	ListingID    string  `json:"listing_id"`
	Title        string  `json:"title"`
	Price        float64 `json:"price"`
	SellerID     string  `json:"seller_id"`
	CategoryName string  `json:"category_name"`
}

// Bid represents one negotiation between a buyer and a listing's seller.
// Identity, references and amount are immutable after creation; only the
// status and the counter fields change, and only through the state machine.
type Bid struct {
	BidID          string    `json:"bid_id"`
	ListingID      string    `json:"listing_id"`
	BidderID       string    `json:"bidder_id"`
	SellerID       string    `json:"seller_id"`
	Amount         float64   `json:"amount"`
	Message        string    `json:"message,omitempty"`
	Status         Status    `json:"status"`
	CounterAmount  float64   `json:"counter_amount,omitempty"`
	CounterMessage string    `json:"counter_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// BidWithListing is the read-model row: a bid joined with its listing context.
type BidWithListing struct {
	Bid
	Listing Listing `json:"listing"`
}

// FinalPrice returns the amount checkout should charge for this bid: the
// counter amount once a counter-offer was accepted, the original offer once
// the bid was accepted, and the current listing price otherwise. The listing
// price is not snapshotted at offer time, so the fallback tracks whatever
// the listing costs now.
func (b Bid) FinalPrice(listing Listing) float64 {
	switch b.Status {
	case StatusCounterAccepted:
		return b.CounterAmount
	case StatusAccepted:
		return b.Amount
	default:
		return listing.Price
	}
}

// Package seed loads demo listings and sessions from a TOML file, used to
// bring a fresh store to a usable state for local development.
package seed

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"marketbids/internal/models"
)

// Data is the parsed seed file.
type Data struct {
	Listings []Listing `toml:"listings"`
	Sessions []Session `toml:"sessions"`
}

// Listing is a seeded listing row.
type Listing struct {
	ListingID    string  `toml:"listing_id"`
	Title        string  `toml:"title"`
	Price        float64 `toml:"price"`
	SellerID     string  `toml:"seller_id"`
	CategoryName string  `toml:"category_name"`
}

// Session pairs a fixed token with a user, so seeded users can be acted as
// without an auth provider.
type Session struct {
	Token  string `toml:"token"`
	UserID string `toml:"user_id"`
}

// Model converts a seeded listing to the domain model.
func (l Listing) Model() models.Listing {
	return models.Listing{
		ListingID:    l.ListingID,
		Title:        l.Title,
		Price:        l.Price,
		SellerID:     l.SellerID,
		CategoryName: l.CategoryName,
	}
}

// Load reads and parses a seed file.
func Load(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var data Data
	if err := toml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return data, nil
}

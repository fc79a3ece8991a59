package main

import (
	"fmt"
	"os"

	"marketbids/internal/auth"
	"marketbids/internal/config"
	negotiation "marketbids/internal/negotiationService"
	"marketbids/internal/repository"
	"marketbids/internal/seed"
	"marketbids/internal/server"
	"marketbids/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLogLevel(cfg.LogLevel)

	var seedData seed.Data
	if cfg.SeedFile != "" {
		if seedData, err = seed.Load(cfg.SeedFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load seed file: %v\n", err)
			os.Exit(1)
		}
	}

	bids, listings, closeStore, err := openStores(cfg, seedData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	sessions := auth.NewMemorySessionStore()
	for _, s := range seedData.Sessions {
		sessions.AddSession(s.Token, s.UserID)
	}

	cachedListings, err := repository.NewCachedListingStore(listings, cfg.ListingCacheSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build listing cache: %v\n", err)
		os.Exit(1)
	}

	service := negotiation.NewService(bids, cachedListings)
	router := server.SetupRouter(service, sessions, cfg.StoreTimeout)

	addr := ":" + cfg.Port
	fmt.Printf("Starting bid negotiation server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openStores selects the SQLite store when a path is configured, falling
// back to the in-memory store, and seeds any demo listings.
func openStores(cfg config.Config, seedData seed.Data) (repository.BidStore, repository.ListingStore, func(), error) {
	if cfg.SQLitePath != "" {
		store, err := repository.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		for _, l := range seedData.Listings {
			if err := store.AddListing(l.Model()); err != nil {
				_ = store.Close()
				return nil, nil, nil, err
			}
		}
		return store, store, func() { _ = store.Close() }, nil
	}

	store := repository.NewMemoryStore()
	for _, l := range seedData.Listings {
		store.AddListing(l.Model())
	}
	return store, store, func() {}, nil
}

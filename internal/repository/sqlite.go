package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"marketbids/internal/biderrors"
	"marketbids/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS listings (
	listing_id    TEXT PRIMARY KEY,
	title         TEXT NOT NULL,
	price         REAL NOT NULL,
	seller_id     TEXT NOT NULL,
	category_name TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS bids (
	bid_id          TEXT PRIMARY KEY,
	listing_id      TEXT NOT NULL REFERENCES listings(listing_id),
	bidder_id       TEXT NOT NULL,
	seller_id       TEXT NOT NULL,
	amount          REAL NOT NULL,
	message         TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL,
	counter_amount  REAL,
	counter_message TEXT,
	created_at      INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bids_bidder ON bids(bidder_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_bids_seller ON bids(seller_id, created_at DESC);
`

// SQLiteStore implements BidStore and ListingStore over a SQLite database.
// The conditional update is a guarded UPDATE (WHERE status = expected), so
// concurrent transitions on the same bid resolve to exactly one winner.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) a SQLite store at path. Use
// ":memory:" for an ephemeral store in tests.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	dsn := path + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// storeErr wraps driver failures as ErrStoreUnavailable so callers can tell
// an unreachable store from a validation failure.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, biderrors.ErrStoreUnavailable, err)
}

// InsertBid records a new bid. The referenced listing must exist.
func (s *SQLiteStore) InsertBid(ctx context.Context, bid models.Bid) error {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM listings WHERE listing_id = ?`, bid.ListingID).Scan(&exists)
	if err != nil {
		return storeErr("insert bid", err)
	}
	if exists == 0 {
		return fmt.Errorf("insert bid for listing %s: %w", bid.ListingID, biderrors.ErrListingNotFound)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO bids (bid_id, listing_id, bidder_id, seller_id, amount, message, status, counter_amount, counter_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NULL, NULL, ?)`,
		bid.BidID, bid.ListingID, bid.BidderID, bid.SellerID, bid.Amount, bid.Message, string(bid.Status),
		bid.CreatedAt.UTC().UnixMilli())
	if err != nil {
		return storeErr("insert bid", err)
	}
	return nil
}

// GetBid returns a bid by identity.
func (s *SQLiteStore) GetBid(ctx context.Context, bidID string) (models.Bid, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT bid_id, listing_id, bidder_id, seller_id, amount, message, status, counter_amount, counter_message, created_at
		FROM bids WHERE bid_id = ?`, bidID)

	bid, err := scanBid(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bid{}, fmt.Errorf("get bid %s: %w", bidID, biderrors.ErrBidNotFound)
	}
	if err != nil {
		return models.Bid{}, storeErr("get bid", err)
	}
	return bid, nil
}

// UpdateBid applies patch to a bid only while its status equals expected.
// Zero rows affected means either the bid is gone or another transition won
// the race; the two cases are distinguished with a follow-up read.
func (s *SQLiteStore) UpdateBid(ctx context.Context, bidID string, expected models.Status, patch BidPatch) (models.Bid, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE bids
		SET status = ?,
		    counter_amount = COALESCE(?, counter_amount),
		    counter_message = COALESCE(?, counter_message)
		WHERE bid_id = ? AND status = ?`,
		string(patch.Status), patch.CounterAmount, patch.CounterMessage, bidID, string(expected))
	if err != nil {
		return models.Bid{}, storeErr("update bid", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return models.Bid{}, storeErr("update bid", err)
	}
	if n == 0 {
		current, getErr := s.GetBid(ctx, bidID)
		if getErr != nil {
			return models.Bid{}, fmt.Errorf("update bid %s: %w", bidID, biderrors.ErrBidNotFound)
		}
		return models.Bid{}, fmt.Errorf("update bid %s: status is %q, expected %q: %w",
			bidID, current.Status, expected, biderrors.ErrInvalidTransition)
	}

	return s.GetBid(ctx, bidID)
}

const bidListingColumns = `
	b.bid_id, b.listing_id, b.bidder_id, b.seller_id, b.amount, b.message, b.status,
	b.counter_amount, b.counter_message, b.created_at,
	l.listing_id, l.title, l.price, l.seller_id, l.category_name`

// ListBidsByBidder returns all bids placed by a buyer, newest first.
func (s *SQLiteStore) ListBidsByBidder(ctx context.Context, bidderID string) ([]models.BidWithListing, error) {
	return s.listBids(ctx, "b.bidder_id", bidderID)
}

// ListBidsBySeller returns all bids received on a seller's listings, newest
// first.
func (s *SQLiteStore) ListBidsBySeller(ctx context.Context, sellerID string) ([]models.BidWithListing, error) {
	return s.listBids(ctx, "b.seller_id", sellerID)
}

func (s *SQLiteStore) listBids(ctx context.Context, column, userID string) ([]models.BidWithListing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+bidListingColumns+`
		FROM bids b
		JOIN listings l ON l.listing_id = b.listing_id
		WHERE `+column+` = ?
		ORDER BY b.created_at DESC, b.bid_id ASC`, userID)
	if err != nil {
		return nil, storeErr("list bids", err)
	}
	defer rows.Close()

	out := make([]models.BidWithListing, 0)
	for rows.Next() {
		var row models.BidWithListing
		bid, err := scanBid(func(dest ...any) error {
			dest = append(dest,
				&row.Listing.ListingID, &row.Listing.Title, &row.Listing.Price,
				&row.Listing.SellerID, &row.Listing.CategoryName)
			return rows.Scan(dest...)
		})
		if err != nil {
			return nil, storeErr("list bids", err)
		}
		row.Bid = bid
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list bids", err)
	}
	return out, nil
}

// GetListing returns a listing by identity.
func (s *SQLiteStore) GetListing(ctx context.Context, listingID string) (models.Listing, error) {
	var l models.Listing
	err := s.db.QueryRowContext(ctx, `
		SELECT listing_id, title, price, seller_id, category_name
		FROM listings WHERE listing_id = ?`, listingID).
		Scan(&l.ListingID, &l.Title, &l.Price, &l.SellerID, &l.CategoryName)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Listing{}, fmt.Errorf("get listing %s: %w", listingID, biderrors.ErrListingNotFound)
	}
	if err != nil {
		return models.Listing{}, storeErr("get listing", err)
	}
	return l, nil
}

// ListListingsBySeller returns a seller's listings ordered by identity.
func (s *SQLiteStore) ListListingsBySeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT listing_id, title, price, seller_id, category_name
		FROM listings WHERE seller_id = ? ORDER BY listing_id`, sellerID)
	if err != nil {
		return nil, storeErr("list listings", err)
	}
	defer rows.Close()

	out := make([]models.Listing, 0)
	for rows.Next() {
		var l models.Listing
		if err := rows.Scan(&l.ListingID, &l.Title, &l.Price, &l.SellerID, &l.CategoryName); err != nil {
			return nil, storeErr("list listings", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list listings", err)
	}
	return out, nil
}

// AddListing seeds a listing, replacing any previous row with the same id.
func (s *SQLiteStore) AddListing(listing models.Listing) error {
	_, err := s.db.Exec(`
		INSERT INTO listings (listing_id, title, price, seller_id, category_name)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(listing_id) DO UPDATE SET
			title = excluded.title, price = excluded.price,
			seller_id = excluded.seller_id, category_name = excluded.category_name`,
		listing.ListingID, listing.Title, listing.Price, listing.SellerID, listing.CategoryName)
	if err != nil {
		return storeErr("add listing", err)
	}
	return nil
}

// scanBid reads one bid row via the supplied scan function, converting the
// nullable counter columns and the millisecond timestamp.
func scanBid(scan func(dest ...any) error) (models.Bid, error) {
	var (
		bid            models.Bid
		status         string
		counterAmount  sql.NullFloat64
		counterMessage sql.NullString
		createdAt      int64
	)
	err := scan(&bid.BidID, &bid.ListingID, &bid.BidderID, &bid.SellerID, &bid.Amount,
		&bid.Message, &status, &counterAmount, &counterMessage, &createdAt)
	if err != nil {
		return models.Bid{}, err
	}
	bid.Status = models.Status(status)
	if counterAmount.Valid {
		bid.CounterAmount = counterAmount.Float64
	}
	if counterMessage.Valid {
		bid.CounterMessage = counterMessage.String
	}
	bid.CreatedAt = time.UnixMilli(createdAt).UTC()
	return bid, nil
}

package auction

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"turuplats-client/internal/logger"
	"turuplats-client/internal/session"

	"go.uber.org/zap"
)

// Flow drives bidding for the listings a user is looking at. It caches
// the bid list per product and replaces it wholesale after every fetch;
// it never appends a just-submitted bid optimistically.
type Flow struct {
	mu       sync.RWMutex
	gw       Gateway
	sessions *session.Store
	now      func() time.Time
	bids     map[int][]Bid
}

func NewFlow(gw Gateway, sessions *session.Store) *Flow {
	return &Flow{
		gw:       gw,
		sessions: sessions,
		now:      time.Now,
		bids:     make(map[int][]Bid),
	}
}

// Load fetches the full bid list for a product and replaces the cached one.
func (f *Flow) Load(ctx context.Context, productID int) ([]Bid, error) {
	bids, err := f.gw.Bids(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("auction: failed to load bids for product %d: %w", productID, err)
	}

	f.mu.Lock()
	f.bids[productID] = bids
	f.mu.Unlock()

	return f.BidsFor(productID), nil
}

// BidsFor returns a copy of the cached bid list for a product.
func (f *Flow) BidsFor(productID int) []Bid {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]Bid(nil), f.bids[productID]...)
}

// Leading returns the amount a new bid on the listing has to beat.
func (f *Flow) Leading(l Listing) float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return LeadingBid(f.bids[l.ProductID], l.MinBid)
}

// PlaceBid validates the raw input locally and only then talks to the
// backend. Every local rejection happens before any network call. On
// success the bid list is re-fetched wholesale, so a concurrent bid from
// another user that landed first is picked up immediately.
func (f *Flow) PlaceBid(ctx context.Context, l Listing, amountInput string) error {
	user := f.sessions.Current()
	if user == nil {
		return ErrNotSignedIn
	}
	if user.ID == l.SellerID {
		return ErrOwnListing
	}

	switch PhaseAt(f.now(), l.IsAuction, l.EndsAt) {
	case PhaseNotAuction:
		return ErrNotAuction
	case PhaseClosed:
		return ErrAuctionClosed
	}

	amount, err := strconv.ParseFloat(amountInput, 64)
	if err != nil {
		return ErrInvalidAmount
	}

	leading := f.Leading(l)
	if amount <= leading {
		return fmt.Errorf("%w: leading bid is %.2f", ErrBidTooLow, leading)
	}

	if err := f.gw.PlaceBid(ctx, l.ProductID, amount); err != nil {
		// Another bid may have landed first; the backend's rejection is
		// surfaced to the caller as-is.
		return err
	}

	logger.FromCtx(ctx).Info("bid placed",
		zap.Int("product_id", l.ProductID),
		zap.Float64("amount", amount),
	)

	if _, err := f.Load(ctx, l.ProductID); err != nil {
		return err
	}
	return nil
}

package cart

import (
	"context"
	"fmt"
	"sync"

	"turuplats-client/internal/logger"
	"turuplats-client/internal/payment"
	"turuplats-client/internal/rest"
	"turuplats-client/internal/session"

	"go.uber.org/zap"
)

// Synchronizer keeps the local cart count and item list consistent with
// the backend. The count is never derived from local arithmetic; every
// mutation is followed by a reconciling re-fetch.
type Synchronizer struct {
	mu       sync.RWMutex
	gw       Gateway
	payments payment.Gateway
	sessions *session.Store
	count    int
	items    []Item
}

func NewSynchronizer(gw Gateway, payments payment.Gateway, sessions *session.Store) *Synchronizer {
	return &Synchronizer{gw: gw, payments: payments, sessions: sessions}
}

// Count returns the cached cart badge value.
func (s *Synchronizer) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// Items returns a copy of the last fetched item list.
func (s *Synchronizer) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Item(nil), s.items...)
}

// RefreshCount reconciles the count against the backend. Anonymous users
// get a hard zero with no network call; a failed fetch also falls back
// to zero rather than showing a stale badge.
func (s *Synchronizer) RefreshCount(ctx context.Context) {
	if !s.sessions.Authenticated() {
		s.setCount(0)
		return
	}

	count, err := s.gw.Count(ctx)
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to refresh cart count", zap.Error(err))
		s.setCount(0)
		return
	}
	s.setCount(count)
}

func (s *Synchronizer) setCount(count int) {
	s.mu.Lock()
	s.count = count
	s.mu.Unlock()
}

// RefreshItems re-fetches the full cart.
func (s *Synchronizer) RefreshItems(ctx context.Context) ([]Item, error) {
	items, err := s.gw.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("cart: failed to load cart: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return s.Items(), nil
}

// Add puts a product in the cart. The backend call comes first; local
// state only changes once it succeeds.
func (s *Synchronizer) Add(ctx context.Context, productID int) error {
	if !s.sessions.Authenticated() {
		return ErrNotSignedIn
	}

	if err := s.gw.Add(ctx, productID); err != nil {
		return err
	}

	s.RefreshCount(ctx)
	return nil
}

// Remove deletes one cart line and reconciles.
func (s *Synchronizer) Remove(ctx context.Context, itemID int) error {
	if err := s.gw.Remove(ctx, itemID); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()

	s.RefreshCount(ctx)
	return nil
}

// Checkout runs the full payment flow: fresh cart read, payment intent,
// explicit user confirmation, provider confirmation, and only on a
// terminal succeeded status the backend finalize call. Any earlier exit
// leaves the cart untouched.
func (s *Synchronizer) Checkout(ctx context.Context, confirm func(total float64) bool) error {
	if !s.sessions.Authenticated() {
		return ErrNotSignedIn
	}

	items, err := s.RefreshItems(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return ErrCartEmpty
	}

	intent, err := s.payments.CreateIntent(ctx, TotalMinor(items), "usd")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPaymentNotReady, rest.UserMessage(err, "try again later"))
	}

	if confirm != nil && !confirm(Total(items)) {
		return ErrCheckoutCanceled
	}

	result, err := s.payments.Confirm(ctx, intent.ClientSecret)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPaymentDeclined, rest.UserMessage(err, "something went wrong during payment"))
	}
	if !result.Succeeded() {
		if result.Message != "" {
			return fmt.Errorf("%w: %s", ErrPaymentDeclined, result.Message)
		}
		return ErrPaymentDeclined
	}

	if err := s.gw.Checkout(ctx); err != nil {
		// Payment went through but the finalize call failed; the next
		// cart read will show whatever the backend actually did.
		logger.FromCtx(ctx).Error("checkout finalize failed after successful payment", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.RefreshCount(ctx)

	logger.FromCtx(ctx).Info("checkout completed", zap.Int("items", len(items)))
	return nil
}

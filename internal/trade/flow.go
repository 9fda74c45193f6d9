package trade

import (
	"context"
	"fmt"
	"sync"

	"turuplats-client/internal/catalog"
	"turuplats-client/internal/logger"
	"turuplats-client/internal/session"

	"go.uber.org/zap"
)

// Flow manages the pending incoming proposals and the propose/accept/
// reject round-trips. Accepting applies an optimistic Sold transition to
// the local product cache; the backend remains the authority and a later
// full reload corrects any disagreement.
type Flow struct {
	mu       sync.RWMutex
	gw       Gateway
	sessions *session.Store
	products *catalog.Store
	pending  []Proposal
}

func NewFlow(gw Gateway, sessions *session.Store, products *catalog.Store) *Flow {
	return &Flow{gw: gw, sessions: sessions, products: products}
}

// Propose offers one of the caller's products for the target. All
// business rules that can be checked locally run before any network
// call: the caller must be signed in, must not own the target, and the
// target must still be available.
func (f *Flow) Propose(ctx context.Context, target catalog.Product, offeredProductID int) error {
	user := f.sessions.Current()
	if user == nil {
		return ErrNotSignedIn
	}
	if user.ID == target.SellerID {
		return ErrOwnProduct
	}
	if target.Status != catalog.StatusAvailable {
		return ErrTargetUnavailable
	}
	if offeredProductID == 0 {
		return ErrNoOfferedProduct
	}

	if err := f.gw.Propose(ctx, target.ID, offeredProductID); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("trade proposed",
		zap.Int("target_product_id", target.ID),
		zap.Int("offered_product_id", offeredProductID),
	)
	return nil
}

// RefreshIncoming replaces the pending list with the backend's view.
func (f *Flow) RefreshIncoming(ctx context.Context) ([]Proposal, error) {
	proposals, err := f.gw.Incoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("trade: failed to load incoming proposals: %w", err)
	}

	f.mu.Lock()
	f.pending = proposals
	f.mu.Unlock()
	return f.Incoming(), nil
}

// Incoming returns a copy of the pending proposals.
func (f *Flow) Incoming() []Proposal {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]Proposal(nil), f.pending...)
}

// Accept posts the acceptance, drops the proposal locally and marks the
// target product Sold pending reconciliation.
func (f *Flow) Accept(ctx context.Context, proposalID int) error {
	proposal, ok := f.find(proposalID)
	if !ok {
		return ErrProposalNotFound
	}

	if err := f.gw.Accept(ctx, proposalID); err != nil {
		return err
	}

	f.remove(proposalID)
	f.products.MarkSoldPending(proposal.TargetProductID)

	logger.FromCtx(ctx).Info("trade accepted", zap.Int("proposal_id", proposalID))
	return nil
}

// Reject posts the rejection and drops the proposal locally. Product
// state does not change.
func (f *Flow) Reject(ctx context.Context, proposalID int) error {
	if _, ok := f.find(proposalID); !ok {
		return ErrProposalNotFound
	}

	if err := f.gw.Reject(ctx, proposalID); err != nil {
		return err
	}

	f.remove(proposalID)

	logger.FromCtx(ctx).Info("trade rejected", zap.Int("proposal_id", proposalID))
	return nil
}

func (f *Flow) find(proposalID int) (Proposal, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, p := range f.pending {
		if p.ID == proposalID {
			return p, true
		}
	}
	return Proposal{}, false
}

func (f *Flow) remove(proposalID int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.pending[:0]
	for _, p := range f.pending {
		if p.ID != proposalID {
			kept = append(kept, p)
		}
	}
	f.pending = kept
}

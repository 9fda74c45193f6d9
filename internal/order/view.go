package order

import (
	"context"
	"fmt"
	"sync"

	"turuplats-client/internal/logger"

	"go.uber.org/zap"
)

// View holds the buyer's and seller's order lists and drives the status
// transitions. Transitions only move forward:
//
//	PendingAddress -> AwaitingShipment -> Shipped -> Delivered
//
// and each step belongs to one role. After every action both lists are
// re-fetched in full, never patched, because the counterpart's list has
// to reflect the new status too.
type View struct {
	mu        sync.RWMutex
	gw        Gateway
	purchases []Order
	sales     []Order
}

func NewView(gw Gateway) *View {
	return &View{gw: gw}
}

// Refresh replaces both lists with the backend's view.
func (v *View) Refresh(ctx context.Context) error {
	purchases, err := v.gw.Purchases(ctx)
	if err != nil {
		return fmt.Errorf("order: failed to load purchases: %w", err)
	}
	sales, err := v.gw.Sales(ctx)
	if err != nil {
		return fmt.Errorf("order: failed to load sales: %w", err)
	}

	v.mu.Lock()
	v.purchases = purchases
	v.sales = sales
	v.mu.Unlock()
	return nil
}

func (v *View) Purchases() []Order {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]Order(nil), v.purchases...)
}

func (v *View) Sales() []Order {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]Order(nil), v.sales...)
}

// AddAddress is the buyer's first step. It only reaches the network when
// the order is still waiting for an address.
func (v *View) AddAddress(ctx context.Context, orderID int, address string) error {
	if address == "" {
		return ErrMissingAddress
	}
	if err := v.requireStatus(v.Purchases(), orderID, StatusPendingAddress); err != nil {
		return err
	}

	if err := v.gw.AddAddress(ctx, orderID, address); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("shipping address added", zap.Int("order_id", orderID))
	return v.Refresh(ctx)
}

// MarkShipped is the seller's step; rejected locally unless the order is
// awaiting shipment.
func (v *View) MarkShipped(ctx context.Context, orderID int) error {
	if err := v.requireStatus(v.Sales(), orderID, StatusAwaitingShipment); err != nil {
		return err
	}

	if err := v.gw.MarkShipped(ctx, orderID); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("order marked shipped", zap.Int("order_id", orderID))
	return v.Refresh(ctx)
}

// ConfirmReceived is the buyer's final step, closing the order.
func (v *View) ConfirmReceived(ctx context.Context, orderID int) error {
	if err := v.requireStatus(v.Purchases(), orderID, StatusShipped); err != nil {
		return err
	}

	if err := v.gw.MarkDelivered(ctx, orderID); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("order delivery confirmed", zap.Int("order_id", orderID))
	return v.Refresh(ctx)
}

func (v *View) requireStatus(orders []Order, orderID int, want Status) error {
	for _, o := range orders {
		if o.ID == orderID {
			if o.Status != want {
				return fmt.Errorf("%w: have %s, need %s", ErrInvalidTransition, o.Status, want)
			}
			return nil
		}
	}
	return ErrOrderNotFound
}

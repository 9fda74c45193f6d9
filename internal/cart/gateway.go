package cart

import (
	"context"
	"fmt"

	"turuplats-client/internal/rest"
)

type Gateway interface {
	Items(ctx context.Context) ([]Item, error)
	Count(ctx context.Context) (int, error)
	Add(ctx context.Context, productID int) error
	Remove(ctx context.Context, itemID int) error
	Checkout(ctx context.Context) error
}

type restGateway struct {
	client *rest.Client
}

func NewGateway(client *rest.Client) Gateway {
	return &restGateway{client: client}
}

func (g *restGateway) Items(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := g.client.Get(ctx, "/api/cart", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (g *restGateway) Count(ctx context.Context) (int, error) {
	var res struct {
		Count int `json:"count"`
	}
	if err := g.client.Get(ctx, "/api/cart/count", nil, &res); err != nil {
		return 0, err
	}
	return res.Count, nil
}

func (g *restGateway) Add(ctx context.Context, productID int) error {
	return g.client.Post(ctx, fmt.Sprintf("/api/cart/add/%d", productID), struct{}{}, nil)
}

func (g *restGateway) Remove(ctx context.Context, itemID int) error {
	return g.client.Delete(ctx, fmt.Sprintf("/api/cart/%d", itemID))
}

func (g *restGateway) Checkout(ctx context.Context) error {
	return g.client.Post(ctx, "/api/cart/checkout", struct{}{}, nil)
}

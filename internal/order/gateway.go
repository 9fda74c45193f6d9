package order

import (
	"context"
	"fmt"

	"turuplats-client/internal/rest"
)

type Gateway interface {
	Purchases(ctx context.Context) ([]Order, error)
	Sales(ctx context.Context) ([]Order, error)
	AddAddress(ctx context.Context, orderID int, address string) error
	MarkShipped(ctx context.Context, orderID int) error
	MarkDelivered(ctx context.Context, orderID int) error
}

type restGateway struct {
	client *rest.Client
}

func NewGateway(client *rest.Client) Gateway {
	return &restGateway{client: client}
}

func (g *restGateway) Purchases(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := g.client.Get(ctx, "/api/orders/my-purchases", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *restGateway) Sales(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := g.client.Get(ctx, "/api/orders/my-sales", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (g *restGateway) AddAddress(ctx context.Context, orderID int, address string) error {
	body := struct {
		ShippingAddress string `json:"shippingAddress"`
	}{ShippingAddress: address}

	return g.client.Put(ctx, fmt.Sprintf("/api/orders/%d/address", orderID), body, nil)
}

func (g *restGateway) MarkShipped(ctx context.Context, orderID int) error {
	return g.client.Put(ctx, fmt.Sprintf("/api/orders/%d/ship", orderID), struct{}{}, nil)
}

func (g *restGateway) MarkDelivered(ctx context.Context, orderID int) error {
	return g.client.Put(ctx, fmt.Sprintf("/api/orders/%d/deliver", orderID), struct{}{}, nil)
}

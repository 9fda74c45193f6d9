package auction

import (
	"context"
	"net/url"
	"strconv"

	"turuplats-client/internal/rest"
)

type Gateway interface {
	Bids(ctx context.Context, productID int) ([]Bid, error)
	PlaceBid(ctx context.Context, productID int, amount float64) error
}

type restGateway struct {
	client *rest.Client
}

func NewGateway(client *rest.Client) Gateway {
	return &restGateway{client: client}
}

func (g *restGateway) Bids(ctx context.Context, productID int) ([]Bid, error) {
	query := url.Values{"productId": {strconv.Itoa(productID)}}

	var bids []Bid
	if err := g.client.Get(ctx, "/api/bids", query, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

func (g *restGateway) PlaceBid(ctx context.Context, productID int, amount float64) error {
	body := struct {
		ProductID int     `json:"productId"`
		Amount    float64 `json:"amount"`
	}{ProductID: productID, Amount: amount}

	return g.client.Post(ctx, "/api/bids", body, nil)
}

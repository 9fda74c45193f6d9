package trade

import (
	"context"
	"fmt"

	"turuplats-client/internal/rest"
)

type Gateway interface {
	Propose(ctx context.Context, targetProductID, offeredProductID int) error
	Accept(ctx context.Context, proposalID int) error
	Reject(ctx context.Context, proposalID int) error
	Incoming(ctx context.Context) ([]Proposal, error)
}

type restGateway struct {
	client *rest.Client
}

func NewGateway(client *rest.Client) Gateway {
	return &restGateway{client: client}
}

func (g *restGateway) Propose(ctx context.Context, targetProductID, offeredProductID int) error {
	body := struct {
		TargetProductID  int `json:"targetProductId"`
		OfferedProductID int `json:"offeredProductId"`
	}{TargetProductID: targetProductID, OfferedProductID: offeredProductID}

	return g.client.Post(ctx, "/api/trades", body, nil)
}

func (g *restGateway) Accept(ctx context.Context, proposalID int) error {
	return g.client.Post(ctx, fmt.Sprintf("/api/trades/%d/accept", proposalID), struct{}{}, nil)
}

func (g *restGateway) Reject(ctx context.Context, proposalID int) error {
	return g.client.Post(ctx, fmt.Sprintf("/api/trades/%d/reject", proposalID), struct{}{}, nil)
}

func (g *restGateway) Incoming(ctx context.Context) ([]Proposal, error) {
	var proposals []Proposal
	if err := g.client.Get(ctx, "/api/trades/incoming", nil, &proposals); err != nil {
		return nil, err
	}
	return proposals, nil
}

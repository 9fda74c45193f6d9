package chat

import (
	"context"
	"fmt"

	"turuplats-client/internal/rest"
)

type Gateway interface {
	Chats(ctx context.Context) ([]Chat, error)
	Messages(ctx context.Context, chatID int) ([]Message, error)
	Send(ctx context.Context, chatID int, text string) error
	OpenForProduct(ctx context.Context, productID int) (*Chat, error)
}

type restGateway struct {
	client *rest.Client
}

func NewGateway(client *rest.Client) Gateway {
	return &restGateway{client: client}
}

func (g *restGateway) Chats(ctx context.Context) ([]Chat, error) {
	var chats []Chat
	if err := g.client.Get(ctx, "/api/chats", nil, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (g *restGateway) Messages(ctx context.Context, chatID int) ([]Message, error) {
	var messages []Message
	if err := g.client.Get(ctx, fmt.Sprintf("/api/chats/%d/messages", chatID), nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (g *restGateway) Send(ctx context.Context, chatID int, text string) error {
	body := struct {
		Text string `json:"text"`
	}{Text: text}

	return g.client.Post(ctx, fmt.Sprintf("/api/chats/%d/messages", chatID), body, nil)
}

func (g *restGateway) OpenForProduct(ctx context.Context, productID int) (*Chat, error) {
	var chat Chat
	if err := g.client.Post(ctx, fmt.Sprintf("/api/chats/product/%d", productID), struct{}{}, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

package session

import (
	"context"

	"turuplats-client/internal/rest"
)

// Gateway is the slice of the backend the session store talks to.
type Gateway interface {
	Me(ctx context.Context) (*User, error)
	Login(ctx context.Context, creds Credentials) error
	Logout(ctx context.Context) error
	Register(ctx context.Context, input RegisterInput) error
}

type restGateway struct {
	client *rest.Client
}

func NewGateway(client *rest.Client) Gateway {
	return &restGateway{client: client}
}

func (g *restGateway) Me(ctx context.Context) (*User, error) {
	var user User
	if err := g.client.Get(ctx, "/api/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *restGateway) Login(ctx context.Context, creds Credentials) error {
	return g.client.Post(ctx, "/api/auth/login", creds, nil)
}

func (g *restGateway) Logout(ctx context.Context) error {
	return g.client.Post(ctx, "/api/auth/logout", struct{}{}, nil)
}

func (g *restGateway) Register(ctx context.Context, input RegisterInput) error {
	return g.client.Post(ctx, "/api/auth/register", input, nil)
}

package catalog

import (
	"context"
	"fmt"

	"turuplats-client/internal/rest"
)

type Gateway interface {
	Feed(ctx context.Context) ([]Product, error)
	Product(ctx context.Context, id int) (*Product, error)
	MyProducts(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, input NewProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id int) error
	Categories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, name string) (*Category, error)
	DeleteCategory(ctx context.Context, id int) error
	Tags(ctx context.Context) ([]Tag, error)
}

type restGateway struct {
	client *rest.Client
}

func NewGateway(client *rest.Client) Gateway {
	return &restGateway{client: client}
}

func (g *restGateway) Feed(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := g.client.Get(ctx, "/api/products/feed", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (g *restGateway) Product(ctx context.Context, id int) (*Product, error) {
	var product Product
	if err := g.client.Get(ctx, fmt.Sprintf("/api/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (g *restGateway) MyProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := g.client.Get(ctx, "/api/products/my-products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (g *restGateway) CreateProduct(ctx context.Context, input NewProductInput) (*Product, error) {
	var product Product
	if err := g.client.Post(ctx, "/api/products", input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (g *restGateway) DeleteProduct(ctx context.Context, id int) error {
	return g.client.Delete(ctx, fmt.Sprintf("/api/products/%d", id))
}

func (g *restGateway) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := g.client.Get(ctx, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (g *restGateway) CreateCategory(ctx context.Context, name string) (*Category, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: name}

	var category Category
	if err := g.client.Post(ctx, "/api/categories", body, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (g *restGateway) DeleteCategory(ctx context.Context, id int) error {
	return g.client.Delete(ctx, fmt.Sprintf("/api/categories/%d", id))
}

func (g *restGateway) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := g.client.Get(ctx, "/api/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

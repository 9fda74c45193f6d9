package catalog

import (
	"context"
	"fmt"
	"sync"

	"turuplats-client/internal/logger"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

// Store caches the feed, taxonomy and product details. Every fetch is a
// wholesale replacement; nothing here is a source of truth.
type Store struct {
	mu         sync.RWMutex
	gw         Gateway
	products   []Product
	categories []Category
	tags       []Tag

	// feedGen guards against a stale feed response landing after a newer
	// one: a fetch only applies if no later fetch has started since.
	feedGen uint64

	cache *lru.Cache
}

func NewStore(gw Gateway, cacheSize int) *Store {
	cache, _ := lru.New(cacheSize)
	return &Store{gw: gw, cache: cache}
}

// RefreshFeed re-fetches the product feed. A response belonging to a
// superseded request is dropped instead of overwriting newer state.
func (s *Store) RefreshFeed(ctx context.Context) error {
	s.mu.Lock()
	s.feedGen++
	gen := s.feedGen
	s.mu.Unlock()

	products, err := s.gw.Feed(ctx)
	if err != nil {
		return fmt.Errorf("catalog: failed to refresh feed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.feedGen {
		logger.FromCtx(ctx).Debug("dropping stale feed response", zap.Uint64("gen", gen))
		return nil
	}
	s.products = products
	return nil
}

// RefreshTaxonomy re-fetches categories and tags.
func (s *Store) RefreshTaxonomy(ctx context.Context) error {
	categories, err := s.gw.Categories(ctx)
	if err != nil {
		return fmt.Errorf("catalog: failed to fetch categories: %w", err)
	}
	tags, err := s.gw.Tags(ctx)
	if err != nil {
		return fmt.Errorf("catalog: failed to fetch tags: %w", err)
	}

	s.mu.Lock()
	s.categories = categories
	s.tags = tags
	s.mu.Unlock()
	return nil
}

// Products returns a copy of the cached feed.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.products...)
}

func (s *Store) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Category(nil), s.categories...)
}

func (s *Store) Tags() []Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Tag(nil), s.tags...)
}

// Product returns a single product, from the detail cache when possible.
func (s *Store) Product(ctx context.Context, id int) (*Product, error) {
	if v, ok := s.cache.Get(id); ok {
		p := v.(Product)
		return &p, nil
	}

	product, err := s.gw.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	s.cache.Add(id, *product)
	return product, nil
}

// MarkSoldPending applies the trade flow's optimistic transition: the
// product shows as Sold locally, tagged as unconfirmed so the next
// authoritative read can correct it.
func (s *Store) MarkSoldPending(id int) {
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Status = StatusSold
			s.products[i].PendingReconciliation = true
		}
	}
	s.mu.Unlock()

	s.cache.Remove(id)
}

// CreateProduct publishes a listing and refreshes the feed so the new
// product shows up where the backend decided to place it.
func (s *Store) CreateProduct(ctx context.Context, input NewProductInput) (*Product, error) {
	if input.Name == "" || input.Price <= 0 || input.CategoryID == 0 {
		return nil, ErrMissingFields
	}

	product, err := s.gw.CreateProduct(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.RefreshFeed(ctx); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id int) error {
	if err := s.gw.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.cache.Remove(id)
	return s.RefreshFeed(ctx)
}

func (s *Store) MyProducts(ctx context.Context) ([]Product, error) {
	return s.gw.MyProducts(ctx)
}

func (s *Store) CreateCategory(ctx context.Context, name string) (*Category, error) {
	if name == "" {
		return nil, ErrMissingCategoryName
	}

	category, err := s.gw.CreateCategory(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.RefreshTaxonomy(ctx); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id int) error {
	if err := s.gw.DeleteCategory(ctx, id); err != nil {
		return err
	}
	return s.RefreshTaxonomy(ctx)
}

package catalog

import (
	"time"

	"turuplats-client/internal/auction"
)

type ProductStatus string

const (
	StatusAvailable ProductStatus = "Available"
	StatusSold      ProductStatus = "Sold"
)

// Product is a read-only snapshot owned by the backend, plus the
// locally-derived reconciliation flag set by the trade flow.
type Product struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	CategoryID  int           `json:"categoryId"`
	TagIDs      []int         `json:"tagIds,omitempty"`
	SellerID    int           `json:"sellerId"`
	Status      ProductStatus `json:"status"`
	ImageURLs   []string      `json:"imageUrls,omitempty"`

	IsAuction bool       `json:"isAuction"`
	MinBid    float64    `json:"minBid"`
	EndsAt    *time.Time `json:"endsAt,omitempty"`

	// PendingReconciliation marks a locally applied status change the
	// backend has not confirmed yet. The next authoritative read for
	// this product clears it.
	PendingReconciliation bool `json:"-"`
}

// Listing adapts the product for the bid flow.
func (p Product) Listing() auction.Listing {
	return auction.Listing{
		ProductID: p.ID,
		SellerID:  p.SellerID,
		IsAuction: p.IsAuction,
		MinBid:    p.MinBid,
		EndsAt:    p.EndsAt,
	}
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type NewProductInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	CategoryID  int        `json:"categoryId"`
	TagIDs      []int      `json:"tagIds,omitempty"`
	IsAuction   bool       `json:"isAuction,omitempty"`
	MinBid      float64    `json:"minBid,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
}

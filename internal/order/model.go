package order

import "time"

type Status string

const (
	StatusPendingAddress   Status = "PendingAddress"
	StatusAwaitingShipment Status = "AwaitingShipment"
	StatusShipped          Status = "Shipped"
	StatusDelivered        Status = "Delivered"
)

// ProductRef is the denormalized product slice an order row displays.
type ProductRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Order struct {
	ID              int        `json:"id"`
	Product         ProductRef `json:"product"`
	BuyerID         int        `json:"buyerId"`
	SellerID        int        `json:"sellerId"`
	ShippingAddress string     `json:"shippingAddress,omitempty"`
	Status          Status     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
}

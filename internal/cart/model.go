package cart

// Item is one cart line, with the price and name denormalized for
// display so the cart page does not re-fetch every product.
type Item struct {
	ID          int     `json:"id"`
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Total sums the cart in major currency units.
func Total(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// TotalMinor converts the cart total to minor units for the payment
// intent, rounding to the nearest cent the way the backend expects.
func TotalMinor(items []Item) int64 {
	return int64(Total(items)*100 + 0.5)
}

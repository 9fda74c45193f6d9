package auction

import "time"

// Bid is one standing offer on an auction listing. Bids are append-only
// from this client's point of view; the whole list is re-fetched after
// every successful submission.
type Bid struct {
	ID        int       `json:"id"`
	ProductID int       `json:"productId"`
	BidderID  int       `json:"bidderId"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// Listing carries the auction-relevant slice of a product, so the bid
// flow does not depend on the full catalog model.
type Listing struct {
	ProductID int
	SellerID  int
	IsAuction bool
	MinBid    float64
	EndsAt    *time.Time
}

// Phase classifies a listing at a point in time.
type Phase int

const (
	PhaseNotAuction Phase = iota
	PhaseActive
	PhaseClosed
)

// PhaseAt is the single classification rule shared by everything that
// needs to know whether bidding is open: no end time means the auction
// runs until further notice.
func PhaseAt(now time.Time, isAuction bool, endsAt *time.Time) Phase {
	if !isAuction {
		return PhaseNotAuction
	}
	if endsAt != nil && !now.Before(*endsAt) {
		return PhaseClosed
	}
	return PhaseActive
}

// LeadingBid returns the amount a new bid has to beat: the highest
// standing bid, or the configured minimum when nobody has bid yet.
func LeadingBid(bids []Bid, minBid float64) float64 {
	if len(bids) == 0 {
		return minBid
	}
	leading := bids[0].Amount
	for _, b := range bids[1:] {
		if b.Amount > leading {
			leading = b.Amount
		}
	}
	return leading
}

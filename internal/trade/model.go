package trade

import "time"

// Proposal is an offer to swap one of the proposer's products for the
// target product, no cash involved. A proposal is pending until the
// recipient accepts or rejects it.
type Proposal struct {
	ID                 int       `json:"id"`
	ProposerID         int       `json:"proposerId"`
	ProposerName       string    `json:"proposerName"`
	OfferedProductID   int       `json:"offeredProductId"`
	OfferedProductName string    `json:"offeredProductName"`
	TargetProductID    int       `json:"targetProductId"`
	TargetProductName  string    `json:"targetProductName"`
	CreatedAt          time.Time `json:"createdAt"`
}

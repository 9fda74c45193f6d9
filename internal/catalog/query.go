package catalog

import (
	"sort"
	"strings"
	"time"

	"turuplats-client/internal/auction"

	"github.com/sahilm/fuzzy"
)

type SortOrder int

const (
	SortNone SortOrder = iota
	SortPriceAsc
	SortPriceDesc
)

// Filter is the full client-side filter state. Empty selections mean
// "no constraint", never "match nothing".
type Filter struct {
	Search     string
	Fuzzy      bool
	Categories map[int]struct{}
	Tags       map[int]struct{}
	MinPrice   *float64
	MaxPrice   *float64
	Sort       SortOrder
}

// EffectivePrice is the price a product competes with in range filters
// and sorting: the leading bid for auctions, the sticker price otherwise.
func EffectivePrice(p Product, bids map[int][]auction.Bid) float64 {
	if p.IsAuction {
		return auction.LeadingBid(bids[p.ID], p.MinBid)
	}
	return p.Price
}

// Visible derives the displayed list from the raw feed: closed auctions
// are dropped entirely, all active predicates are ANDed, and sorting
// operates on a copy so the source feed keeps its order.
func Visible(products []Product, bids map[int][]auction.Bid, now time.Time, f Filter) []Product {
	matched := make([]Product, 0, len(products))

	candidates := products
	if f.Fuzzy && f.Search != "" {
		candidates = fuzzyMatch(products, f.Search)
	}

	for _, p := range candidates {
		if auction.PhaseAt(now, p.IsAuction, p.EndsAt) == auction.PhaseClosed {
			continue
		}
		if !f.Fuzzy && !matchesSearch(p, f.Search) {
			continue
		}
		if !matchesCategories(p, f.Categories) {
			continue
		}
		if !matchesTags(p, f.Tags) {
			continue
		}
		price := EffectivePrice(p, bids)
		if f.MinPrice != nil && price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && price > *f.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool {
			return EffectivePrice(matched[i], bids) < EffectivePrice(matched[j], bids)
		})
	case SortPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool {
			return EffectivePrice(matched[i], bids) > EffectivePrice(matched[j], bids)
		})
	}

	return matched
}

func matchesSearch(p Product, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(search))
}

func matchesCategories(p Product, categories map[int]struct{}) bool {
	if len(categories) == 0 {
		return true
	}
	_, ok := categories[p.CategoryID]
	return ok
}

func matchesTags(p Product, tags map[int]struct{}) bool {
	if len(tags) == 0 {
		return true
	}
	for _, id := range p.TagIDs {
		if _, ok := tags[id]; ok {
			return true
		}
	}
	return false
}

// productNames implements fuzzy.Source over the feed.
type productNames []Product

func (p productNames) String(i int) string { return p[i].Name }
func (p productNames) Len() int            { return len(p) }

// fuzzyMatch returns the products whose names fuzzy-match the query, in
// match-rank order.
func fuzzyMatch(products []Product, query string) []Product {
	matches := fuzzy.FindFrom(strings.ToLower(query), productNames(products))

	out := make([]Product, 0, len(matches))
	for _, m := range matches {
		out = append(out, products[m.Index])
	}
	return out
}

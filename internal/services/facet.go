// internal/services/facet.go
package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ffbazaar/ffbazaar-backend/internal/models"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortLevelHigh SortKey = "level-high"
)

// PlatformAll is the sentinel facet value that disables platform filtering.
const PlatformAll = "all"

// FeaturedFilter is the three-state featured facet used by the admin surface.
type FeaturedFilter string

const (
	FeaturedAll  FeaturedFilter = "all"
	FeaturedOnly FeaturedFilter = "featured"
	FeaturedNone FeaturedFilter = "not-featured"
)

// Range is an inclusive [Min, Max] bound. When Min > Max nothing can satisfy
// it, so the filter legitimately yields zero results; that is not an error.
type Range struct {
	Min int
	Max int
}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// ListingFacets are the storefront browse facets. All facets are independent
// and combine with logical AND.
type ListingFacets struct {
	Search   string
	Price    Range
	Level    Range
	Platform string
	SortBy   SortKey
}

// DefaultListingFacets returns wide-open facets: match everything, newest
// first.
func DefaultListingFacets() ListingFacets {
	return ListingFacets{
		Price:    Range{Min: 0, Max: math.MaxInt32},
		Level:    Range{Min: 0, Max: math.MaxInt32},
		Platform: PlatformAll,
		SortBy:   SortNewest,
	}
}

// AdminListingFacets are the back-office listing facets. SellerID and
// Featured use "all" sentinels.
type AdminListingFacets struct {
	Search   string
	SellerID string
	Featured FeaturedFilter
}

// FilterAndSortListings is the faceted filter/sort engine: a pure function
// from a working collection plus facet values to an ordered, filtered view.
// The input slice is never mutated.
func FilterAndSortListings(records []models.Listing, facets ListingFacets) []models.Listing {
	out := make([]models.Listing, 0, len(records))

	term := strings.ToLower(facets.Search)
	for _, l := range records {
		if !matchesSearch(&l, term) {
			continue
		}
		if !facets.Price.Contains(l.Price) {
			continue
		}
		if !facets.Level.Contains(l.Level) {
			continue
		}
		if facets.Platform != "" && facets.Platform != PlatformAll && l.Platform != facets.Platform {
			continue
		}
		out = append(out, l)
	}

	SortListings(out, facets.SortBy)
	return out
}

// matchesSearch reports whether a listing matches the search facet: a
// case-insensitive substring match against the details text OR against the
// literal "level {N}" string. An empty term matches everything.
func matchesSearch(l *models.Listing, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(l.Details), term) {
		return true
	}
	return strings.Contains(fmt.Sprintf("level %d", l.Level), term)
}

// SortListings orders records in place by the given key. The sort is stable,
// so ties keep their incoming relative order.
func SortListings(records []models.Listing, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Price < records[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Price > records[j].Price
		})
	case SortLevelHigh:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Level > records[j].Level
		})
	default:
		// SortNewest, and any unrecognized key
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		})
	}
}

// FilterAdminListings applies the back-office facets. No client re-sort: the
// admin view keeps the store-requested created-descending order.
func FilterAdminListings(records []models.Listing, facets AdminListingFacets) []models.Listing {
	out := make([]models.Listing, 0, len(records))

	term := strings.ToLower(facets.Search)
	for _, l := range records {
		if !matchesSearch(&l, term) {
			continue
		}
		if facets.SellerID != "" && facets.SellerID != "all" && l.SellerID != facets.SellerID {
			continue
		}
		if facets.Featured == FeaturedOnly && !l.Featured {
			continue
		}
		if facets.Featured == FeaturedNone && l.Featured {
			continue
		}
		out = append(out, l)
	}

	return out
}

// FilterSellers is the reduced seller engine: a case-insensitive substring
// match on the name only. Ordering is whatever the store returned (rating
// descending); there is no client re-sort.
func FilterSellers(records []models.Seller, search string) []models.Seller {
	out := make([]models.Seller, 0, len(records))

	term := strings.ToLower(search)
	for _, s := range records {
		if term != "" && !strings.Contains(strings.ToLower(s.Name), term) {
			continue
		}
		out = append(out, s)
	}

	return out
}

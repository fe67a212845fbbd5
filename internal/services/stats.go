// internal/services/stats.go
package services

import (
	"math"
	"sort"

	"github.com/ffbazaar/ffbazaar-backend/internal/models"
)

// DashboardStats are the derived counts and sums shown on the admin
// dashboard. They are recomputed from the working collections on every
// request and never cached.
type DashboardStats struct {
	TotalListings    int `json:"total_listings"`
	FeaturedListings int `json:"featured_listings"`
	TotalValue       int `json:"total_value"`
	TotalSellers     int `json:"total_sellers"`
	VerifiedSellers  int `json:"verified_sellers"`
	VerificationRate int `json:"verification_rate"`
}

func ComputeDashboardStats(listings []models.Listing, sellers []models.Seller) DashboardStats {
	stats := DashboardStats{
		TotalListings: len(listings),
		TotalSellers:  len(sellers),
	}

	for _, l := range listings {
		if l.Featured {
			stats.FeaturedListings++
		}
		stats.TotalValue += l.Price
	}

	for _, s := range sellers {
		if s.Verified {
			stats.VerifiedSellers++
		}
	}

	stats.VerificationRate = Percentage(stats.VerifiedSellers, stats.TotalSellers)
	return stats
}

// Percentage returns round(100 * n / d), and 0 when d is 0.
func Percentage(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(math.Round(100 * float64(n) / float64(d)))
}

// RecentListings returns the n most recently created listings, newest first.
// The input slice is not mutated.
func RecentListings(listings []models.Listing, n int) []models.Listing {
	sorted := make([]models.Listing, len(listings))
	copy(sorted, listings)
	SortListings(sorted, SortNewest)

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// TopSellersByAccountCount returns the n sellers with the highest account
// counters, descending. The input slice is not mutated.
func TopSellersByAccountCount(sellers []models.Seller, n int) []models.Seller {
	sorted := make([]models.Seller, len(sellers))
	copy(sorted, sellers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AccountCount > sorted[j].AccountCount
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

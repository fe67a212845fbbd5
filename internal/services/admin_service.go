// internal/services/admin_service.go
package services

import (
	"context"

	"github.com/ffbazaar/ffbazaar-backend/internal/models"
	"github.com/ffbazaar/ffbazaar-backend/internal/store"
)

// AdminService composes the back-office dashboard from the listing and seller
// working collections. Everything here is derived per request; nothing is
// cached or stored.
type AdminService struct {
	listings *ListingService
	sellers  *SellerService
}

// DashboardReport is the full dashboard payload: aggregate stats plus the two
// highlight panels. Sources records which branch each collection came from.
type DashboardReport struct {
	Stats          DashboardStats          `json:"stats"`
	RecentListings []models.Listing        `json:"recent_listings"`
	TopSellers     []models.Seller         `json:"top_sellers"`
	Sources        map[string]store.Source `json:"sources"`
}

const dashboardPanelSize = 5

func NewAdminService(listings *ListingService, sellers *SellerService) *AdminService {
	return &AdminService{listings: listings, sellers: sellers}
}

func (s *AdminService) Dashboard(ctx context.Context) DashboardReport {
	listingSet := s.listings.AdminList(ctx, AdminListingFacets{})
	sellerSet := s.sellers.AdminList(ctx)

	return DashboardReport{
		Stats:          ComputeDashboardStats(listingSet.Listings, sellerSet.Sellers),
		RecentListings: RecentListings(listingSet.Listings, dashboardPanelSize),
		TopSellers:     TopSellersByAccountCount(sellerSet.Sellers, dashboardPanelSize),
		Sources: map[string]store.Source{
			"listings": listingSet.Source,
			"sellers":  sellerSet.Source,
		},
	}
}

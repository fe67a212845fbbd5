// internal/services/listing_service.go
package services

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/ffbazaar/ffbazaar-backend/internal/models"
	"github.com/ffbazaar/ffbazaar-backend/internal/store"
	"github.com/ffbazaar/ffbazaar-backend/internal/utils"
)

type ListingService struct {
	store store.RecordStore
}

// ListingSet is a working collection of listings together with the branch it
// came from. Cause holds the swallowed acquisition error when Source is
// fallback; it is logged, never surfaced.
type ListingSet struct {
	Listings []models.Listing
	Source   store.Source
	Cause    error
}

type CreateListingRequest struct {
	Level       int      `json:"level" validate:"min=0"`
	Likes       int      `json:"likes" validate:"min=0"`
	Platform    string   `json:"platform" validate:"required"`
	Price       int      `json:"price" validate:"min=0"`
	Details     string   `json:"details" validate:"required"`
	SellerID    string   `json:"seller_id" validate:"required,uuid"`
	Outfits     []string `json:"outfits,omitempty"`
	OutfitCount int      `json:"outfit_count" validate:"min=0"`
	Diamonds    int      `json:"diamonds" validate:"min=0"`
	Featured    bool     `json:"featured"`
	Images      []string `json:"images" validate:"required,min=1"`
	Sold        bool     `json:"sold"`
}

// UpdateListingRequest carries the full edit form; every field is written
// back, matching the admin form's whole-record update.
type UpdateListingRequest CreateListingRequest

func NewListingService(recordStore store.RecordStore) *ListingService {
	return &ListingService{store: recordStore}
}

// Browse acquires the full listing collection and applies the faceted
// filter/sort engine to it.
func (s *ListingService) Browse(ctx context.Context, facets ListingFacets) ListingSet {
	set := s.acquireAll(ctx)
	set.Listings = FilterAndSortListings(set.Listings, facets)
	return set
}

// Featured acquires up to limit featured listings.
func (s *ListingService) Featured(ctx context.Context, limit int) ListingSet {
	rows, err := s.store.ListFeaturedListings(ctx, limit)
	if err != nil || len(rows) == 0 {
		logAcquisitionFallback("accounts", "featured = true", err)
		fallback := FilterAdminListings(store.FallbackListings(), AdminListingFacets{Featured: FeaturedOnly})
		if limit > 0 && len(fallback) > limit {
			fallback = fallback[:limit]
		}
		return ListingSet{Listings: fallback, Source: store.SourceFallback, Cause: err}
	}
	return ListingSet{Listings: rows, Source: store.SourceRemote}
}

// BySeller acquires one seller's listings. The fallback branch applies the
// same seller_id predicate client-side.
func (s *ListingService) BySeller(ctx context.Context, sellerID string) ListingSet {
	rows, err := s.store.ListListingsBySeller(ctx, sellerID)
	if err != nil || len(rows) == 0 {
		logAcquisitionFallback("accounts", "seller_id = "+sellerID, err)
		fallback := FilterAdminListings(store.FallbackListings(), AdminListingFacets{SellerID: sellerID})
		return ListingSet{Listings: fallback, Source: store.SourceFallback, Cause: err}
	}
	return ListingSet{Listings: rows, Source: store.SourceRemote}
}

// Get resolves a single listing: the remote row when it exists, otherwise the
// fallback dataset. A miss in both is a navigation failure for the caller.
func (s *ListingService) Get(ctx context.Context, id string) (*models.Listing, store.Source, error) {
	listing, err := s.store.GetListing(ctx, id)
	if err == nil {
		return listing, store.SourceRemote, nil
	}

	logAcquisitionFallback("accounts", "id = "+id, err)
	for _, l := range store.FallbackListings() {
		if l.ID == id {
			return &l, store.SourceFallback, nil
		}
	}
	return nil, store.SourceFallback, store.ErrNotFound
}

// AdminList acquires the full collection newest-first and applies the
// back-office facets.
func (s *ListingService) AdminList(ctx context.Context, facets AdminListingFacets) ListingSet {
	set := s.acquireAll(ctx)
	SortListings(set.Listings, SortNewest)
	set.Listings = FilterAdminListings(set.Listings, facets)
	return set
}

// Create inserts a listing and then bumps the seller's account counter. The
// counter is a manually maintained value, not recomputed from listing rows,
// so it can drift; that matches the storefront's historical behavior.
func (s *ListingService) Create(ctx context.Context, req *CreateListingRequest) (*models.Listing, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	listing := &models.Listing{
		Level:       req.Level,
		Likes:       req.Likes,
		Platform:    req.Platform,
		Price:       req.Price,
		Details:     req.Details,
		SellerID:    req.SellerID,
		Outfits:     pq.StringArray(req.Outfits),
		OutfitCount: req.OutfitCount,
		Diamonds:    req.Diamonds,
		Featured:    req.Featured,
		Images:      pq.StringArray(req.Images),
		Sold:        req.Sold,
	}

	if err := s.store.CreateListing(ctx, listing); err != nil {
		return nil, err
	}

	if err := s.bumpSellerAccountCount(ctx, req.SellerID); err != nil {
		return nil, fmt.Errorf("listing created but seller counter update failed: %w", err)
	}

	return listing, nil
}

func (s *ListingService) bumpSellerAccountCount(ctx context.Context, sellerID string) error {
	seller, err := s.store.GetSeller(ctx, sellerID)
	if err != nil {
		return err
	}

	seller.AccountCount++
	return s.store.UpdateSeller(ctx, seller)
}

// Update overwrites every editable field of an existing listing.
func (s *ListingService) Update(ctx context.Context, id string, req *UpdateListingRequest) (*models.Listing, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	listing, err := s.store.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	listing.Level = req.Level
	listing.Likes = req.Likes
	listing.Platform = req.Platform
	listing.Price = req.Price
	listing.Details = req.Details
	listing.SellerID = req.SellerID
	listing.Outfits = pq.StringArray(req.Outfits)
	listing.OutfitCount = req.OutfitCount
	listing.Diamonds = req.Diamonds
	listing.Featured = req.Featured
	listing.Images = pq.StringArray(req.Images)
	listing.Sold = req.Sold

	if err := s.store.UpdateListing(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Delete is physical and immediate; there is no soft delete and no
// referential check against the seller.
func (s *ListingService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.GetListing(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteListing(ctx, id)
}

func (s *ListingService) acquireAll(ctx context.Context) ListingSet {
	rows, err := s.store.ListListings(ctx)
	if err != nil || len(rows) == 0 {
		logAcquisitionFallback("accounts", "", err)
		return ListingSet{Listings: store.FallbackListings(), Source: store.SourceFallback, Cause: err}
	}
	return ListingSet{Listings: rows, Source: store.SourceRemote}
}

// logAcquisitionFallback records the swallowed branch. Acquisition errors are
// diagnostics only; the caller always receives a usable collection.
func logAcquisitionFallback(table, predicate string, cause error) {
	fields := logrus.Fields{"table": table}
	if predicate != "" {
		fields["predicate"] = predicate
	}
	if cause != nil {
		logrus.WithFields(fields).WithError(cause).Warn("Remote read failed, serving fallback data")
		return
	}
	logrus.WithFields(fields).Info("Remote read returned no rows, serving fallback data")
}

// internal/services/seller_service.go
package services

import (
	"context"
	"fmt"

	"github.com/ffbazaar/ffbazaar-backend/internal/models"
	"github.com/ffbazaar/ffbazaar-backend/internal/store"
	"github.com/ffbazaar/ffbazaar-backend/internal/utils"
)

type SellerService struct {
	store store.RecordStore
}

// SellerSet is a working collection of sellers plus its acquisition branch.
type SellerSet struct {
	Sellers []models.Seller
	Source  store.Source
	Cause   error
}

type CreateSellerRequest struct {
	Name         string  `json:"name" validate:"required"`
	Rating       float64 `json:"rating"`
	Verified     bool    `json:"verified"`
	AccountCount int     `json:"account_count" validate:"min=0"`
	Image        string  `json:"image"`
}

// UpdateSellerRequest carries the full edit form, like the listing one.
type UpdateSellerRequest CreateSellerRequest

func NewSellerService(recordStore store.RecordStore) *SellerService {
	return &SellerService{store: recordStore}
}

// Browse acquires the seller collection in rating-descending order and
// applies the name search facet. No client re-sort happens here; the
// ordering is the one requested from the store, and the fallback dataset is
// authored in the same order.
func (s *SellerService) Browse(ctx context.Context, search string) SellerSet {
	set := s.acquireByRating(ctx)
	set.Sellers = FilterSellers(set.Sellers, search)
	return set
}

// AdminList acquires the plain (unordered) seller collection for the
// back-office table and seller filter dropdown.
func (s *SellerService) AdminList(ctx context.Context) SellerSet {
	rows, err := s.store.ListSellers(ctx)
	if err != nil || len(rows) == 0 {
		logAcquisitionFallback("sellers", "", err)
		return SellerSet{Sellers: store.FallbackSellers(), Source: store.SourceFallback, Cause: err}
	}
	return SellerSet{Sellers: rows, Source: store.SourceRemote}
}

// Get resolves one seller, falling back to the local dataset. A miss in both
// is a navigation failure for the caller.
func (s *SellerService) Get(ctx context.Context, id string) (*models.Seller, store.Source, error) {
	seller, err := s.store.GetSeller(ctx, id)
	if err == nil {
		return seller, store.SourceRemote, nil
	}

	logAcquisitionFallback("sellers", "id = "+id, err)
	for _, row := range store.FallbackSellers() {
		if row.ID == id {
			return &row, store.SourceFallback, nil
		}
	}
	return nil, store.SourceFallback, store.ErrNotFound
}

// Resolve is Get with the miss collapsed to nil: listing views silently omit
// the seller when the reference does not resolve.
func (s *SellerService) Resolve(ctx context.Context, id string) *models.Seller {
	if id == "" {
		return nil
	}
	seller, _, err := s.Get(ctx, id)
	if err != nil {
		return nil
	}
	return seller
}

func (s *SellerService) Create(ctx context.Context, req *CreateSellerRequest) (*models.Seller, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	seller := &models.Seller{
		Name:         req.Name,
		Rating:       req.Rating,
		Verified:     req.Verified,
		AccountCount: req.AccountCount,
		Image:        req.Image,
	}

	if err := s.store.CreateSeller(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

func (s *SellerService) Update(ctx context.Context, id string, req *UpdateSellerRequest) (*models.Seller, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	seller, err := s.store.GetSeller(ctx, id)
	if err != nil {
		return nil, err
	}

	seller.Name = req.Name
	seller.Rating = req.Rating
	seller.Verified = req.Verified
	seller.AccountCount = req.AccountCount
	seller.Image = req.Image

	if err := s.store.UpdateSeller(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

// Delete removes the seller row only. Listings referencing the seller are
// neither removed nor blocked from later deletion; they render without
// seller details.
func (s *SellerService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.GetSeller(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteSeller(ctx, id)
}

func (s *SellerService) acquireByRating(ctx context.Context) SellerSet {
	rows, err := s.store.ListSellersByRating(ctx)
	if err != nil || len(rows) == 0 {
		logAcquisitionFallback("sellers", "", err)
		return SellerSet{Sellers: store.FallbackSellers(), Source: store.SourceFallback, Cause: err}
	}
	return SellerSet{Sellers: rows, Source: store.SourceRemote}
}

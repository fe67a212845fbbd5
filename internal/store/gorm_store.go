// internal/store/gorm_store.go
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ffbazaar/ffbazaar-backend/internal/models"
)

// GormStore is the record store client backed by the hosted provider's
// Postgres endpoint. A nil db is legal: every call then fails with
// ErrUnavailable and the acquisition layer serves fallback data.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListListings(ctx context.Context) ([]models.Listing, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	var listings []models.Listing
	if err := s.db.WithContext(ctx).Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return listings, nil
}

func (s *GormStore) ListListingsBySeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	var listings []models.Listing
	if err := s.db.WithContext(ctx).Where("seller_id = ?", sellerID).Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch seller listings: %w", err)
	}
	return listings, nil
}

func (s *GormStore) ListFeaturedListings(ctx context.Context, limit int) ([]models.Listing, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	var listings []models.Listing
	if err := s.db.WithContext(ctx).Where("featured = ?", true).Limit(limit).Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch featured listings: %w", err)
	}
	return listings, nil
}

func (s *GormStore) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	var listing models.Listing
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}
	return &listing, nil
}

func (s *GormStore) CreateListing(ctx context.Context, listing *models.Listing) error {
	if s.db == nil {
		return ErrUnavailable
	}

	if err := s.db.WithContext(ctx).Create(listing).Error; err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateListing(ctx context.Context, listing *models.Listing) error {
	if s.db == nil {
		return ErrUnavailable
	}

	if err := s.db.WithContext(ctx).Save(listing).Error; err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	return nil
}

func (s *GormStore) DeleteListing(ctx context.Context, id string) error {
	if s.db == nil {
		return ErrUnavailable
	}

	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Listing{}).Error; err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	return nil
}

func (s *GormStore) ListSellers(ctx context.Context) ([]models.Seller, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	var sellers []models.Seller
	if err := s.db.WithContext(ctx).Find(&sellers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sellers: %w", err)
	}
	return sellers, nil
}

func (s *GormStore) ListSellersByRating(ctx context.Context) ([]models.Seller, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	var sellers []models.Seller
	if err := s.db.WithContext(ctx).Order("rating DESC").Find(&sellers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sellers: %w", err)
	}
	return sellers, nil
}

func (s *GormStore) GetSeller(ctx context.Context, id string) (*models.Seller, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	var seller models.Seller
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&seller).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch seller: %w", err)
	}
	return &seller, nil
}

func (s *GormStore) CreateSeller(ctx context.Context, seller *models.Seller) error {
	if s.db == nil {
		return ErrUnavailable
	}

	if err := s.db.WithContext(ctx).Create(seller).Error; err != nil {
		return fmt.Errorf("failed to create seller: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateSeller(ctx context.Context, seller *models.Seller) error {
	if s.db == nil {
		return ErrUnavailable
	}

	if err := s.db.WithContext(ctx).Save(seller).Error; err != nil {
		return fmt.Errorf("failed to update seller: %w", err)
	}
	return nil
}

func (s *GormStore) DeleteSeller(ctx context.Context, id string) error {
	if s.db == nil {
		return ErrUnavailable
	}

	// Deliberately no cascade: listings referencing this seller are left in
	// place and render without seller details.
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Seller{}).Error; err != nil {
		return fmt.Errorf("failed to delete seller: %w", err)
	}
	return nil
}

func (s *GormStore) ListReviews(ctx context.Context, limit int) ([]models.Review, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	var reviews []models.Review
	query := s.db.WithContext(ctx)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}

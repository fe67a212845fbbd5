// internal/store/store.go
package store

import (
	"context"
	"errors"

	"github.com/ffbazaar/ffbazaar-backend/internal/models"
)

var (
	// ErrNotFound is returned when a select-by-id matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrUnavailable is returned when no record store endpoint is configured.
	ErrUnavailable = errors.New("record store unavailable")
)

// Source tells a caller whether a working collection came from the remote
// record store or from the local fallback dataset. The user-facing behavior
// collapses both branches to "show data", but keeping the branch explicit
// keeps the swallowed-error path testable.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// RecordStore is the read/write interface over the hosted provider's three
// tables. Every operation returns either rows or an error; the acquisition
// layer above treats any error as equivalent to "no data".
type RecordStore interface {
	ListListings(ctx context.Context) ([]models.Listing, error)
	ListListingsBySeller(ctx context.Context, sellerID string) ([]models.Listing, error)
	ListFeaturedListings(ctx context.Context, limit int) ([]models.Listing, error)
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	CreateListing(ctx context.Context, listing *models.Listing) error
	UpdateListing(ctx context.Context, listing *models.Listing) error
	DeleteListing(ctx context.Context, id string) error

	ListSellers(ctx context.Context) ([]models.Seller, error)
	ListSellersByRating(ctx context.Context) ([]models.Seller, error)
	GetSeller(ctx context.Context, id string) (*models.Seller, error)
	CreateSeller(ctx context.Context, seller *models.Seller) error
	UpdateSeller(ctx context.Context, seller *models.Seller) error
	DeleteSeller(ctx context.Context, id string) error

	ListReviews(ctx context.Context, limit int) ([]models.Review, error)
}

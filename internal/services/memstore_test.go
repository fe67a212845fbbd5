// internal/services/memstore_test.go
package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/ffbazaar/ffbazaar-backend/internal/models"
	"github.com/ffbazaar/ffbazaar-backend/internal/store"
)

// memStore is an in-memory RecordStore for service tests. Setting fail makes
// every call return that error, which is how the fallback branches are
// exercised.
type memStore struct {
	fail error

	listingOrder []string
	listings     map[string]models.Listing
	sellerOrder  []string
	sellers      map[string]models.Seller
	reviews      []models.Review
}

func newMemStore() *memStore {
	return &memStore{
		listings: make(map[string]models.Listing),
		sellers:  make(map[string]models.Seller),
	}
}

func (m *memStore) addListing(l models.Listing) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	m.listings[l.ID] = l
	m.listingOrder = append(m.listingOrder, l.ID)
}

func (m *memStore) addSeller(s models.Seller) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	m.sellers[s.ID] = s
	m.sellerOrder = append(m.sellerOrder, s.ID)
}

func (m *memStore) ListListings(ctx context.Context) ([]models.Listing, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	out := make([]models.Listing, 0, len(m.listingOrder))
	for _, id := range m.listingOrder {
		out = append(out, m.listings[id])
	}
	return out, nil
}

func (m *memStore) ListListingsBySeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	rows, err := m.ListListings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Listing, 0, len(rows))
	for _, l := range rows {
		if l.SellerID == sellerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memStore) ListFeaturedListings(ctx context.Context, limit int) ([]models.Listing, error) {
	rows, err := m.ListListings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Listing, 0, len(rows))
	for _, l := range rows {
		if l.Featured {
			out = append(out, l)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	l, ok := m.listings[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &l, nil
}

func (m *memStore) CreateListing(ctx context.Context, listing *models.Listing) error {
	if m.fail != nil {
		return m.fail
	}
	m.addListing(*listing)
	if listing.ID == "" {
		listing.ID = m.listingOrder[len(m.listingOrder)-1]
	}
	return nil
}

func (m *memStore) UpdateListing(ctx context.Context, listing *models.Listing) error {
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.listings[listing.ID]; !ok {
		return store.ErrNotFound
	}
	m.listings[listing.ID] = *listing
	return nil
}

func (m *memStore) DeleteListing(ctx context.Context, id string) error {
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.listings[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.listings, id)
	for i, lid := range m.listingOrder {
		if lid == id {
			m.listingOrder = append(m.listingOrder[:i], m.listingOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memStore) ListSellers(ctx context.Context) ([]models.Seller, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	out := make([]models.Seller, 0, len(m.sellerOrder))
	for _, id := range m.sellerOrder {
		out = append(out, m.sellers[id])
	}
	return out, nil
}

func (m *memStore) ListSellersByRating(ctx context.Context) ([]models.Seller, error) {
	rows, err := m.ListSellers(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Rating > rows[j].Rating
	})
	return rows, nil
}

func (m *memStore) GetSeller(ctx context.Context, id string) (*models.Seller, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	s, ok := m.sellers[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &s, nil
}

func (m *memStore) CreateSeller(ctx context.Context, seller *models.Seller) error {
	if m.fail != nil {
		return m.fail
	}
	m.addSeller(*seller)
	if seller.ID == "" {
		seller.ID = m.sellerOrder[len(m.sellerOrder)-1]
	}
	return nil
}

func (m *memStore) UpdateSeller(ctx context.Context, seller *models.Seller) error {
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.sellers[seller.ID]; !ok {
		return store.ErrNotFound
	}
	m.sellers[seller.ID] = *seller
	return nil
}

func (m *memStore) DeleteSeller(ctx context.Context, id string) error {
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.sellers[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.sellers, id)
	for i, sid := range m.sellerOrder {
		if sid == id {
			m.sellerOrder = append(m.sellerOrder[:i], m.sellerOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memStore) ListReviews(ctx context.Context, limit int) ([]models.Review, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	out := m.reviews
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

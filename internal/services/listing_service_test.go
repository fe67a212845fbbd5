// internal/services/listing_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffbazaar/ffbazaar-backend/internal/models"
	"github.com/ffbazaar/ffbazaar-backend/internal/store"
)

func TestBrowseServesFallbackOnStoreError(t *testing.T) {
	ms := newMemStore()
	ms.fail = errors.New("connection refused")
	svc := NewListingService(ms)

	set := svc.Browse(context.Background(), DefaultListingFacets())

	assert.Equal(t, store.SourceFallback, set.Source)
	assert.Error(t, set.Cause)
	assert.Equal(t, store.FallbackListings(), set.Listings)
}

func TestBrowseServesFallbackOnEmptyRemote(t *testing.T) {
	svc := NewListingService(newMemStore())

	set := svc.Browse(context.Background(), DefaultListingFacets())

	assert.Equal(t, store.SourceFallback, set.Source)
	assert.NoError(t, set.Cause)
	assert.Equal(t, store.FallbackListings(), set.Listings)
}

func TestBrowseUsesRemoteWhenAvailable(t *testing.T) {
	ms := newMemStore()
	ms.addListing(models.Listing{ID: uuid.New().String(), Details: "Remote row", Price: 100})
	svc := NewListingService(ms)

	set := svc.Browse(context.Background(), DefaultListingFacets())

	assert.Equal(t, store.SourceRemote, set.Source)
	assert.Len(t, set.Listings, 1)
	assert.Equal(t, "Remote row", set.Listings[0].Details)
}

func TestBrowseAppliesFacetsToFallback(t *testing.T) {
	ms := newMemStore()
	ms.fail = errors.New("down")
	svc := NewListingService(ms)

	facets := DefaultListingFacets()
	facets.Platform = "Facebook"
	set := svc.Browse(context.Background(), facets)

	require.NotEmpty(t, set.Listings)
	for _, l := range set.Listings {
		assert.Equal(t, "Facebook", l.Platform)
	}
}

func TestFeaturedFallbackIsScoped(t *testing.T) {
	ms := newMemStore()
	ms.fail = errors.New("down")
	svc := NewListingService(ms)

	set := svc.Featured(context.Background(), 4)

	assert.Equal(t, store.SourceFallback, set.Source)
	require.NotEmpty(t, set.Listings)
	for _, l := range set.Listings {
		assert.True(t, l.Featured)
	}
}

func TestBySellerFallbackIsScoped(t *testing.T) {
	ms := newMemStore()
	ms.fail = errors.New("down")
	svc := NewListingService(ms)

	sellerID := store.FallbackSellers()[0].ID
	set := svc.BySeller(context.Background(), sellerID)

	assert.Equal(t, store.SourceFallback, set.Source)
	require.NotEmpty(t, set.Listings)
	for _, l := range set.Listings {
		assert.Equal(t, sellerID, l.SellerID)
	}
}

func TestGetFallsBackToLocalDataset(t *testing.T) {
	ms := newMemStore()
	ms.fail = errors.New("down")
	svc := NewListingService(ms)

	want := store.FallbackListings()[0]
	got, source, err := svc.Get(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, store.SourceFallback, source)
	assert.Equal(t, want.ID, got.ID)
}

func TestGetMissEverywhereIsNotFound(t *testing.T) {
	ms := newMemStore()
	ms.fail = errors.New("down")
	svc := NewListingService(ms)

	_, _, err := svc.Get(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAdminListSortsNewestAndFilters(t *testing.T) {
	ms := newMemStore()
	for _, l := range listingFixture() {
		ms.addListing(l)
	}
	svc := NewListingService(ms)

	set := svc.AdminList(context.Background(), AdminListingFacets{Featured: FeaturedNone})

	require.Len(t, set.Listings, 3)
	assert.Equal(t, "d", set.Listings[0].ID)
	assert.Equal(t, "c", set.Listings[1].ID)
	assert.Equal(t, "b", set.Listings[2].ID)
}

func TestCreateBumpsSellerAccountCounter(t *testing.T) {
	ms := newMemStore()
	sellerID := uuid.New().String()
	ms.addSeller(models.Seller{ID: sellerID, Name: "Elite", AccountCount: 5})
	svc := NewListingService(ms)

	req := &CreateListingRequest{
		Level:    60,
		Platform: "gmail",
		Price:    9000,
		Details:  "Fresh stock",
		SellerID: sellerID,
		Images:   []string{"https://img.example/1.png"},
	}

	listing, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, listing)

	seller, err := ms.GetSeller(context.Background(), sellerID)
	require.NoError(t, err)
	assert.Equal(t, 6, seller.AccountCount)
}

func TestCreateRejectsInvalidRequest(t *testing.T) {
	svc := NewListingService(newMemStore())

	_, err := svc.Create(context.Background(), &CreateListingRequest{
		Platform: "gmail",
		SellerID: "not-a-uuid",
		Details:  "x",
		Images:   []string{"a"},
	})

	assert.Error(t, err)
}

func TestCreateSurfacesStoreError(t *testing.T) {
	ms := newMemStore()
	ms.fail = store.ErrUnavailable
	svc := NewListingService(ms)

	_, err := svc.Create(context.Background(), &CreateListingRequest{
		Level:    1,
		Platform: "vk",
		Price:    1,
		Details:  "x",
		SellerID: uuid.New().String(),
		Images:   []string{"a"},
	})

	assert.ErrorIs(t, err, store.ErrUnavailable)
}

func TestUpdateOverwritesEveryField(t *testing.T) {
	ms := newMemStore()
	id := uuid.New().String()
	ms.addListing(models.Listing{ID: id, Details: "Old", Price: 100, Featured: true})
	svc := NewListingService(ms)

	req := &UpdateListingRequest{
		Level:    20,
		Platform: "vk",
		Price:    200,
		Details:  "New",
		SellerID: uuid.New().String(),
		Images:   []string{"b"},
	}

	got, err := svc.Update(context.Background(), id, req)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Details)
	assert.Equal(t, 200, got.Price)
	assert.False(t, got.Featured)

	stored, err := ms.GetListing(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "New", stored.Details)
}

func TestDeleteMissingListing(t *testing.T) {
	svc := NewListingService(newMemStore())

	err := svc.Delete(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, store.ErrNotFound)
}

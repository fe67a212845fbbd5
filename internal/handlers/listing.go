// internal/handlers/listing.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ffbazaar/ffbazaar-backend/internal/services"
	"github.com/ffbazaar/ffbazaar-backend/internal/store"
	"github.com/ffbazaar/ffbazaar-backend/internal/utils"
)

type ListingHandler struct {
	listingService *services.ListingService
	sellerService  *services.SellerService
}

func NewListingHandler(listingService *services.ListingService, sellerService *services.SellerService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		sellerService:  sellerService,
	}
}

// GET /v1/listings
func (h *ListingHandler) GetListings(c *gin.Context) {
	facets := parseListingFacets(c)
	set := h.listingService.Browse(c.Request.Context(), facets)
	utils.SuccessResponseWithMeta(c, set.Listings, sourceMeta(set.Source))
}

// GET /v1/listings/featured
func (h *ListingHandler) GetFeaturedListings(c *gin.Context) {
	limit := 6
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	set := h.listingService.Featured(c.Request.Context(), limit)
	utils.SuccessResponseWithMeta(c, set.Listings, sourceMeta(set.Source))
}

// GET /v1/listings/:id
func (h *ListingHandler) GetListing(c *gin.Context) {
	id := c.Param("id")

	listing, source, err := h.listingService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "Listing")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	// The seller block is omitted when the reference does not resolve.
	seller := h.sellerService.Resolve(c.Request.Context(), listing.SellerID)

	utils.SuccessResponseWithMeta(c, gin.H{
		"listing": listing,
		"seller":  seller,
	}, sourceMeta(source))
}

// parseListingFacets reads the browse facets off the query string. Absent or
// malformed values fall back to the wide-open defaults; facet parsing never
// fails a request.
func parseListingFacets(c *gin.Context) services.ListingFacets {
	facets := services.DefaultListingFacets()

	facets.Search = c.Query("search")

	if v := c.Query("price_min"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			facets.Price.Min = n
		}
	}
	if v := c.Query("price_max"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			facets.Price.Max = n
		}
	}
	if v := c.Query("level_min"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			facets.Level.Min = n
		}
	}
	if v := c.Query("level_max"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			facets.Level.Max = n
		}
	}
	if v := c.Query("platform"); v != "" {
		facets.Platform = v
	}
	if v := c.Query("sort"); v != "" {
		facets.SortBy = services.SortKey(v)
	}

	return facets
}

func sourceMeta(source store.Source) gin.H {
	return gin.H{"source": source}
}

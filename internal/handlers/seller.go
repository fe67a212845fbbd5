// internal/handlers/seller.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ffbazaar/ffbazaar-backend/internal/services"
	"github.com/ffbazaar/ffbazaar-backend/internal/store"
	"github.com/ffbazaar/ffbazaar-backend/internal/utils"
)

type SellerHandler struct {
	sellerService  *services.SellerService
	listingService *services.ListingService
}

func NewSellerHandler(sellerService *services.SellerService, listingService *services.ListingService) *SellerHandler {
	return &SellerHandler{
		sellerService:  sellerService,
		listingService: listingService,
	}
}

// GET /v1/sellers
func (h *SellerHandler) GetSellers(c *gin.Context) {
	set := h.sellerService.Browse(c.Request.Context(), c.Query("search"))
	utils.SuccessResponseWithMeta(c, set.Sellers, sourceMeta(set.Source))
}

// GET /v1/sellers/:id
func (h *SellerHandler) GetSeller(c *gin.Context) {
	id := c.Param("id")

	seller, source, err := h.sellerService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "Seller")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	listings := h.listingService.BySeller(c.Request.Context(), id)

	utils.SuccessResponseWithMeta(c, gin.H{
		"seller":   seller,
		"listings": listings.Listings,
	}, sourceMeta(source))
}

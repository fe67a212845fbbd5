// internal/handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ffbazaar/ffbazaar-backend/internal/services"
	"github.com/ffbazaar/ffbazaar-backend/internal/store"
	"github.com/ffbazaar/ffbazaar-backend/internal/utils"
)

// AdminHandler serves the back-office: dashboard, listing and seller CRUD,
// and image uploads. Every route behind it requires a verified session.
type AdminHandler struct {
	adminService   *services.AdminService
	listingService *services.ListingService
	sellerService  *services.SellerService
	storageService *services.StorageService
}

func NewAdminHandler(
	adminService *services.AdminService,
	listingService *services.ListingService,
	sellerService *services.SellerService,
	storageService *services.StorageService,
) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		listingService: listingService,
		sellerService:  sellerService,
		storageService: storageService,
	}
}

// GET /v1/admin/dashboard
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	report := h.adminService.Dashboard(c.Request.Context())
	utils.SuccessResponse(c, report)
}

// GET /v1/admin/listings
func (h *AdminHandler) GetListings(c *gin.Context) {
	facets := services.AdminListingFacets{
		Search:   c.Query("search"),
		SellerID: c.Query("seller_id"),
		Featured: services.FeaturedFilter(c.DefaultQuery("featured", string(services.FeaturedAll))),
	}

	set := h.listingService.AdminList(c.Request.Context(), facets)
	utils.SuccessResponseWithMeta(c, set.Listings, sourceMeta(set.Source))
}

// POST /v1/admin/listings
func (h *AdminHandler) CreateListing(c *gin.Context) {
	var req services.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", nil)
		return
	}

	listing, err := h.listingService.Create(c.Request.Context(), &req)
	if err != nil {
		h.mutationError(c, err, "Listing")
		return
	}
	utils.CreatedResponse(c, listing)
}

// PUT /v1/admin/listings/:id
func (h *AdminHandler) UpdateListing(c *gin.Context) {
	var req services.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", nil)
		return
	}

	listing, err := h.listingService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.mutationError(c, err, "Listing")
		return
	}
	utils.SuccessResponse(c, listing)
}

// DELETE /v1/admin/listings/:id
func (h *AdminHandler) DeleteListing(c *gin.Context) {
	if err := h.listingService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.mutationError(c, err, "Listing")
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// GET /v1/admin/sellers
func (h *AdminHandler) GetSellers(c *gin.Context) {
	set := h.sellerService.AdminList(c.Request.Context())
	utils.SuccessResponseWithMeta(c, set.Sellers, sourceMeta(set.Source))
}

// POST /v1/admin/sellers
func (h *AdminHandler) CreateSeller(c *gin.Context) {
	var req services.CreateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", nil)
		return
	}

	seller, err := h.sellerService.Create(c.Request.Context(), &req)
	if err != nil {
		h.mutationError(c, err, "Seller")
		return
	}
	utils.CreatedResponse(c, seller)
}

// PUT /v1/admin/sellers/:id
func (h *AdminHandler) UpdateSeller(c *gin.Context) {
	var req services.UpdateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", nil)
		return
	}

	seller, err := h.sellerService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.mutationError(c, err, "Seller")
		return
	}
	utils.SuccessResponse(c, seller)
}

// DELETE /v1/admin/sellers/:id
// Listings referencing the seller are left in place; they render without
// seller details afterwards.
func (h *AdminHandler) DeleteSeller(c *gin.Context) {
	if err := h.sellerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.mutationError(c, err, "Seller")
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// POST /v1/admin/uploads
func (h *AdminHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "No file provided", nil)
		return
	}
	defer file.Close()

	category := c.DefaultPostForm("category", "listings")
	options := h.storageService.ImageUploadOptions(category)

	result, err := h.storageService.UploadImage(file, header, options)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	utils.CreatedResponse(c, result)
}

// mutationError maps service errors to HTTP. Unlike reads, mutations never
// fall back; the failure is surfaced to the operator.
func (h *AdminHandler) mutationError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, store.ErrUnavailable):
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Record store is not reachable", nil)
	default:
		if validationErrs := utils.GetValidationErrors(err); len(validationErrs) > 0 {
			utils.ValidationErrorResponse(c, validationErrs)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
	}
}

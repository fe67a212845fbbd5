// internal/handlers/review.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ffbazaar/ffbazaar-backend/internal/services"
	"github.com/ffbazaar/ffbazaar-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// GET /v1/reviews
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	limit := 3
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	set := h.reviewService.List(c.Request.Context(), limit)
	utils.SuccessResponseWithMeta(c, set.Reviews, sourceMeta(set.Source))
}

// internal/services/review_service.go
package services

import (
	"context"

	"github.com/ffbazaar/ffbazaar-backend/internal/models"
	"github.com/ffbazaar/ffbazaar-backend/internal/store"
)

// ReviewService serves the read-only testimonial collection.
type ReviewService struct {
	store store.RecordStore
}

type ReviewSet struct {
	Reviews []models.Review
	Source  store.Source
	Cause   error
}

func NewReviewService(recordStore store.RecordStore) *ReviewService {
	return &ReviewService{store: recordStore}
}

func (s *ReviewService) List(ctx context.Context, limit int) ReviewSet {
	rows, err := s.store.ListReviews(ctx, limit)
	if err != nil || len(rows) == 0 {
		logAcquisitionFallback("reviews", "", err)
		fallback := store.FallbackReviews()
		if limit > 0 && len(fallback) > limit {
			fallback = fallback[:limit]
		}
		return ReviewSet{Reviews: fallback, Source: store.SourceFallback, Cause: err}
	}
	return ReviewSet{Reviews: rows, Source: store.SourceRemote}
}

// internal/services/review_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ffbazaar/ffbazaar-backend/internal/models"
	"github.com/ffbazaar/ffbazaar-backend/internal/store"
)

func TestReviewListFallbackOnError(t *testing.T) {
	ms := newMemStore()
	ms.fail = errors.New("down")
	svc := NewReviewService(ms)

	set := svc.List(context.Background(), 0)

	assert.Equal(t, store.SourceFallback, set.Source)
	assert.Equal(t, store.FallbackReviews(), set.Reviews)
}

func TestReviewListTruncatesFallback(t *testing.T) {
	svc := NewReviewService(newMemStore())

	set := svc.List(context.Background(), 1)

	assert.Equal(t, store.SourceFallback, set.Source)
	assert.Len(t, set.Reviews, 1)
}

func TestReviewListRemote(t *testing.T) {
	ms := newMemStore()
	ms.reviews = []models.Review{{ID: "r1", Name: "Buyer", Rating: 5}}
	svc := NewReviewService(ms)

	set := svc.List(context.Background(), 10)

	assert.Equal(t, store.SourceRemote, set.Source)
	assert.Len(t, set.Reviews, 1)
}
